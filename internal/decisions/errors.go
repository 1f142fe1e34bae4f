package decisions

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/arbiter/internal/workflow"
)

// Domain errors for decision operations.
var (
	ErrNotFound      = errors.New("decision not found")
	ErrDuplicate     = errors.New("decision already exists")
	ErrEmptyInput    = errors.New("ai_output and task_context are required")
	ErrInvalidMode   = errors.New("policy_mode must be strict, balanced, or relaxed")
	ErrInvalidAction = errors.New("action must be APPROVED, REJECTED, or REVISION_REQUESTED")
)

// MapHTTPStatus maps decision domain errors to appropriate HTTP status codes.
// Gateway failures surface as 502 so callers can distinguish an unreachable
// model endpoint from a fault in this service.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrEmptyInput),
		errors.Is(err, ErrInvalidMode),
		errors.Is(err, ErrInvalidAction):
		return http.StatusBadRequest
	case errors.Is(err, workflow.ErrGatewayFailed):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
