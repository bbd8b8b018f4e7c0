package shared

import (
	"errors"
	"net/http"

	"employeeform/internal/domain/employee"
	"employeeform/internal/transport/http/api"
)

// FailValidation writes the 422 envelope for a blocked submit. It reports
// false when err is not a validation error.
func FailValidation(w http.ResponseWriter, requestID string, err error) bool {
	var verr *employee.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	api.FailWithDetails(
		w,
		http.StatusUnprocessableEntity,
		"validation_error",
		"draft validation failed",
		map[string]any{"fields": verr.Issues},
		requestID,
	)
	return true
}
