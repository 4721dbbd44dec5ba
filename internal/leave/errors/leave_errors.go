package leaveerrors

import (
	"net/http"

	"github.com/thakursapna1996/LeaveTrack-Pro/internal/shared/apperror"
)

var (
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"End date cannot be before start date",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
)

// NewValidationError bundles the ordered list of create-rule violations.
func NewValidationError(messages []string) *apperror.AppError {
	return apperror.NewWithDetails(
		apperror.CodeValidation,
		"Leave request validation failed",
		http.StatusBadRequest,
		messages,
	)
}
