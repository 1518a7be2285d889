package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status           string      `json:"status"`
	Code             int         `json:"code"`
	Message          string      `json:"message,omitempty"`
	Reason           string      `json:"reason,omitempty"`
	IsPremiumContent bool        `json:"isPremiumContent,omitempty"`
	TraceID          string      `json:"trace_id,omitempty"`
	Data             interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service errors to the response contract. Each
// client-facing failure carries a machine-checkable reason; premium denials
// additionally flag isPremiumContent so clients can render an upsell.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		respondReason(c, http.StatusBadRequest, "invalid_id", "Malformed identifier")
	case errors.Is(err, ErrMissingField):
		respondReason(c, http.StatusBadRequest, "missing_field", "A required field is missing")
	case errors.Is(err, ErrInvalidRole):
		respondReason(c, http.StatusBadRequest, "invalid_role", "Role must be user or admin")
	case errors.Is(err, ErrInvalidPage):
		respondReason(c, http.StatusBadRequest, "invalid_page", "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		respondReason(c, http.StatusBadRequest, "invalid_page_size", "Page size must be between 1 and 100")
	case errors.Is(err, ErrAlreadyPremium):
		respondReason(c, http.StatusBadRequest, "already_premium", "Account already has premium access")
	case errors.Is(err, ErrInvalidSignature):
		respondReason(c, http.StatusBadRequest, "invalid_signature", "Webhook signature verification failed")
	case errors.Is(err, ErrPrivateContent):
		respondReason(c, http.StatusForbidden, "private_content", "This lesson is private")
	case errors.Is(err, ErrNotOwner):
		respondReason(c, http.StatusForbidden, "not_owner", "Only the creator or an admin may do this")
	case errors.Is(err, ErrPremiumRequired):
		c.JSON(http.StatusForbidden, APIResponse{
			Status:           "error",
			Code:             http.StatusForbidden,
			Message:          "Premium access required",
			Reason:           "premium_required",
			IsPremiumContent: true,
			TraceID:          c.GetString("trace_id"),
		})
	case errors.Is(err, ErrLessonNotFound):
		respondReason(c, http.StatusNotFound, "lesson_not_found", "Lesson not found")
	case errors.Is(err, ErrAccountNotFound):
		respondReason(c, http.StatusNotFound, "account_not_found", "Account not found")
	case errors.Is(err, ErrReportNotFound):
		respondReason(c, http.StatusNotFound, "report_not_found", "Report not found")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		respondReason(c, http.StatusInternalServerError, "internal_error", "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		respondReason(c, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}

func respondReason(c *gin.Context, code int, reason, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		Reason:  reason,
		TraceID: c.GetString("trace_id"),
	})
}
