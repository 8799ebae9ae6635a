package get_week_schedule

import "fmt"

// validateRequest проверяет корректность входных данных запроса
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
	return nil
}
