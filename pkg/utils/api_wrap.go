package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors to HTTP responses.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPOINotFound):
		RespondError(c, http.StatusNotFound, "POI not found")
	case errors.Is(err, ErrInvalidMode):
		RespondError(c, http.StatusBadRequest, "Mode must be one of food, chill, efficient")
	case errors.Is(err, ErrInvalidEvent):
		RespondError(c, http.StatusBadRequest, "Event must be one of rain, traffic, tired")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Origin or destination is required")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrBackendUnavailable):
		zap.L().Warn("backend unavailable", zap.Error(err), zap.String("trace_id", traceID(c)))
		RespondError(c, http.StatusServiceUnavailable, "Routing backend unavailable")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.Error(err), zap.String("trace_id", traceID(c)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unhandled service error", zap.Error(err), zap.String("trace_id", traceID(c)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
