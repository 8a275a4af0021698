package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope returned by every API endpoint
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// ErrorInfo describes a failed request
type ErrorInfo struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Meta carries collection metadata
type Meta struct {
	Total int64  `json:"total"`
	Lang  string `json:"lang,omitempty"`
}

// SuccessResponse writes a 200 response with data
func SuccessResponse(c *gin.Context, data interface{}) {
	SuccessResponseWithStatus(c, http.StatusOK, data)
}

// SuccessResponseWithStatus writes a success response with a custom status
func SuccessResponseWithStatus(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessResponseWithMeta writes a 200 response with data and metadata
func SuccessResponseWithMeta(c *gin.Context, data interface{}, meta *Meta) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// ErrorResponse writes an error response
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    status,
			Message: message,
		},
	})
}

// AppErrorResponse writes an error response from an AppError
func AppErrorResponse(c *gin.Context, err *AppError) {
	ErrorResponse(c, err.Code, err.Message)
}

// AppErrorResponseWithRequestID writes an AppError and echoes the request id
// so clients can quote it when reporting the failure
func AppErrorResponseWithRequestID(c *gin.Context, err *AppError, requestID string) {
	c.JSON(err.Code, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:      err.Code,
			Message:   err.Message,
			RequestID: requestID,
		},
	})
}
