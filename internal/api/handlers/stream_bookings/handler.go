package stream_bookings

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/UKC-FacilityService/internal/api/handlers"
)

const (
	msgStreamingUnsupported = "потоковая передача не поддерживается"
	msgSubscribeFailed      = "не удалось оформить подписку на события"
)

// Интервал keep-alive комментариев, чтобы прокси не рвали простаивающий стрим
const keepAliveInterval = 30 * time.Second

type Handler struct {
	source EventSource
	logger Logger
}

func NewHandler(source EventSource, logger Logger) *Handler {
	return &Handler{
		source: source,
		logger: logger,
	}
}

// Handle GET /api/v1/events/bookings
//
// SSE-стрим событий об изменениях бронирований. Клиент на каждое событие
// перезагружает своё окно сетки; стрим не передаёт состояние, только сигнал.
// Опциональный query-параметр facilityId фильтрует события по объекту.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /events/bookings - Response writer does not support flushing")
		handlers.RespondError(w, http.StatusInternalServerError, msgStreamingUnsupported)
		return
	}

	var facilityFilter int64
	if raw := r.URL.Query().Get("facilityId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /events/bookings - Invalid facility filter: %v", err)
			handlers.RespondBadRequest(w, "некорректный ID объекта")
			return
		}
		facilityFilter = parsed
	}

	events, err := h.source.Subscribe(r.Context())
	if err != nil {
		h.logger.Error("GET /events/bookings - Failed to subscribe: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgSubscribeFailed)
		return
	}

	clientID := uuid.NewString()
	h.logger.Info("GET /events/bookings - Client connected: client_id=%s, facility_filter=%d",
		clientID, facilityFilter)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /events/bookings - Client disconnected: client_id=%s", clientID)
			return

		case <-keepAlive.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()

		case event, ok := <-events:
			if !ok {
				h.logger.Info("GET /events/bookings - Event stream closed: client_id=%s", clientID)
				return
			}

			if facilityFilter != 0 && event.FacilityID != facilityFilter {
				continue
			}

			payload, err := json.Marshal(event)
			if err != nil {
				h.logger.Warn("GET /events/bookings - Failed to marshal event: %v", err)
				continue
			}

			fmt.Fprintf(w, "event: booking\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
