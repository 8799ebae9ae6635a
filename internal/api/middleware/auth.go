package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/UKC-FacilityService/internal/api/handlers"
)

// HeaderUserID заголовок с ID аутентифицированного пользователя.
// Аутентификацию выполняет API gateway, сервис доверяет заголовку.
const HeaderUserID = "X-User-ID"

const msgUnauthorized = "требуется аутентификация"

type userIDKey struct{}

// Auth проверяет наличие корректного X-User-ID и кладет его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID возвращает ID пользователя из контекста запроса
func UserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
