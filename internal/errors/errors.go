package errors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/siteguard/siteguard-api/internal/services"
)

// Error types surfaced in the error envelope
const (
	TypeValidation   = "VALIDATION_ERROR"
	TypeUnauthorized = "UNAUTHORIZED"
	TypeNotFound     = "NOT_FOUND"
	TypeConflict     = "CONFLICT"
	TypeInternal     = "INTERNAL_ERROR"
)

// APIError represents the error envelope returned for every failed request.
type APIError struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Type    string      `json:"type"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code int, errType, message string) *APIError {
	return &APIError{
		Status:  "error",
		Code:    code,
		Type:    errType,
		Message: message,
	}
}

// RespondWithError sends an error envelope and logs it.
func RespondWithError(c *gin.Context, apiErr *APIError) {
	entry := log.WithFields(log.Fields{
		"code": apiErr.Code,
		"type": apiErr.Type,
		"path": c.FullPath(),
	})
	if apiErr.Code >= http.StatusInternalServerError {
		entry.Error(apiErr.Message)
	} else {
		entry.Debug(apiErr.Message)
	}
	c.JSON(apiErr.Code, apiErr)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, NewAPIError(http.StatusBadRequest, TypeValidation, message))
}

// BadRequestWithDetails sends a 400 response with per-field details
func BadRequestWithDetails(c *gin.Context, message string, details interface{}) {
	apiErr := NewAPIError(http.StatusBadRequest, TypeValidation, message)
	apiErr.Errors = details
	RespondWithError(c, apiErr)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, NewAPIError(http.StatusUnauthorized, TypeUnauthorized, message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, NewAPIError(http.StatusNotFound, TypeNotFound, message))
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Resource conflict"
	}
	RespondWithError(c, NewAPIError(http.StatusConflict, TypeConflict, message))
}

// InternalError sends a 500 response. The message is generic; the real
// error is only logged.
func InternalError(c *gin.Context) {
	RespondWithError(c, NewAPIError(http.StatusInternalServerError, TypeInternal, "Internal server error"))
}

// Respond is the centralized translator from service errors to the error
// envelope. Every handler funnels failures through here.
func Respond(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingSignupFields),
		errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrInvalidWorkspaceName),
		errors.Is(err, services.ErrInvalidProgress),
		errors.Is(err, services.ErrInvalidResource),
		errors.Is(err, services.ErrInvalidBulkReplace),
		errors.Is(err, services.ErrPlanSectionsRequired),
		errors.Is(err, services.ErrPlanMaterialsRequired),
		errors.Is(err, services.ErrPlanStagesRequired),
		errors.Is(err, services.ErrPlanSummaryRequired),
		errors.Is(err, services.ErrPlanStageTasksRequired),
		errors.Is(err, services.ErrInvalidRiskScore):
		BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrWorkspaceNotFound),
		errors.Is(err, services.ErrResourceNotFound),
		errors.Is(err, services.ErrPlanNotFound),
		errors.Is(err, services.ErrReportNotFound),
		errors.Is(err, services.ErrUserNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrWorkspaceConflict):
		Conflict(c, err.Error())
	default:
		log.WithError(err).Error("unhandled service error")
		InternalError(c)
	}
}
