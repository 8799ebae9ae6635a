package create_invite

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
)

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req *Request, now time.Time) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.HostUserID <= 0 {
		return fmt.Errorf("%w: host user id must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.VisitorName)
	if name == "" {
		return fmt.Errorf("%w: visitor name is required", ErrInvalidInput)
	}
	if len([]rune(name)) > domain.MaxVisitorNameLength {
		return fmt.Errorf("%w: visitor name is too long (max %d)", ErrInvalidInput, domain.MaxVisitorNameLength)
	}

	if req.VisitDate.IsZero() {
		return fmt.Errorf("%w: visit date is required", ErrInvalidInput)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	d := time.Date(req.VisitDate.Year(), req.VisitDate.Month(), req.VisitDate.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return ErrDateInPast
	}

	return nil
}
