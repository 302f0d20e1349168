package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDFrom(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

// RespondValidationError returns the field-name -> message map produced by
// the donor validator alongside a 400.
func RespondValidationError(c *gin.Context, fields FieldErrors) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Invalid input",
		TraceID: traceIDFrom(c),
		Data:    fields,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var badRequest *BadRequestError
	var txnFailed *TransactionFailedError
	var gatewayErr *GatewayError

	switch {
	case errors.Is(err, ErrInvalidPlan):
		RespondError(c, http.StatusBadRequest, "Invalid plan")
	case errors.As(err, &badRequest):
		RespondError(c, http.StatusBadRequest, badRequest.Message)
	case errors.As(err, &txnFailed):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Transaction was not successful",
			TraceID: traceIDFrom(c),
			Data: gin.H{
				"status":           txnFailed.Status,
				"gateway_response": txnFailed.GatewayResponse,
			},
		})
	case errors.As(err, &gatewayErr):
		// Provider detail stays server-side only.
		log.Printf("Gateway error (status=%d): %v", gatewayErr.StatusCode, gatewayErr)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
