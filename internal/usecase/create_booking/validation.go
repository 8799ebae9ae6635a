package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
)

// validateRequest проверяет корректность входных данных запроса.
// Чисто локальная проверка, выполняется до обращений к хранилищу.
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facility id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: booking date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	return nil
}

// validateDateNotPast проверяет, что дата бронирования не в прошлом.
// Сравнение по календарным дням, без учета времени.
func validateDateNotPast(date, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return ErrDateInPast
	}
	return nil
}

// validateAdvance проверяет глубину бронирования по политике объекта
func validateAdvance(date, now time.Time, policy *domain.FacilityPolicy) error {
	if !policy.HasAdvanceLimit() {
		return nil
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	limit := today.AddDate(0, 0, policy.AdvanceDays)
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if d.After(limit) {
		return ErrDateTooFarInFuture
	}
	return nil
}

// validateNotice проверяет минимальное время до начала слота.
// Для будущих дат всегда проходит, для сегодняшнего дня слот должен
// начинаться не раньше чем через MinNoticeMinutes от текущего момента.
func validateNotice(req *Request, now time.Time, policy *domain.FacilityPolicy) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	d := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, now.Location())
	if d.After(today) {
		return nil
	}

	slotMinutes, err := req.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	if slotMinutes-nowMinutes < policy.MinNoticeMinutes {
		return ErrTooLateToBook
	}
	return nil
}
