package create_appointment

import (
	"fmt"
	"strings"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientId must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.TimeSlotID <= 0 {
		return fmt.Errorf("%w: timeSlotId must be positive", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.ClientEmail)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: clientEmail is required", ErrInvalidInput)
	}

	return nil
}
