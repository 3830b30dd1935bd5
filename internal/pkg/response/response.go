package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/dropwatch/internal/pkg/pagination"
)

// ErrorResponse represents a standard error payload returned by the API
type ErrorResponse struct {
	Error   string      `json:"error" example:"Report not found"`
	Code    string      `json:"code,omitempty" example:"REPORT_NOT_FOUND"`
	Details interface{} `json:"details,omitempty"`
}

// SuccessResponse represents a standard success payload
type SuccessResponse struct {
	Status string      `json:"status" example:"success"`
	Data   interface{} `json:"data"`
}

// PaginatedResponse represents a paginated list response
type PaginatedResponse struct {
	Status     string                 `json:"status" example:"success"`
	Data       interface{}            `json:"data"`
	Pagination *pagination.Pagination `json:"pagination"`
}

// Success sends a 200 OK response with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Status: "success",
		Data:   data,
	})
}

// Created sends a 201 Created response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Status: "success",
		Data:   data,
	})
}

// Paginated sends a page of items with its metadata
func Paginated(c *gin.Context, data interface{}, p *pagination.Pagination) {
	c.JSON(http.StatusOK, PaginatedResponse{
		Status:     "success",
		Data:       data,
		Pagination: p,
	})
}

// Error sends an error response with custom status code and message
func Error(c *gin.Context, statusCode int, message string, errorCode ...string) {
	code := ""
	if len(errorCode) > 0 {
		code = errorCode[0]
	}

	c.JSON(statusCode, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// BadRequest sends a 400 Bad Request error
func BadRequest(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusBadRequest, message, errorCode...)
}

// Unauthorized sends a 401 Unauthorized error
func Unauthorized(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusUnauthorized, message, errorCode...)
}

// Forbidden sends a 403 Forbidden error
func Forbidden(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusForbidden, message, errorCode...)
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusNotFound, message, errorCode...)
}

// Conflict sends a 409 Conflict error
func Conflict(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusConflict, message, errorCode...)
}

// TooManyRequests sends a 429 error
func TooManyRequests(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusTooManyRequests, message, errorCode...)
}

// InternalServerError sends a 500 Internal Server Error
func InternalServerError(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusInternalServerError, message, errorCode...)
}

// ServiceUnavailable sends a 503 Service Unavailable error
func ServiceUnavailable(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusServiceUnavailable, message, errorCode...)
}

// BindJSONError handles JSON decode errors in request body
func BindJSONError(c *gin.Context, err error) {
	BadRequest(c, "Invalid request format", "INVALID_JSON")
}

// ValidationFailed sends a 422 with per-field details
func ValidationFailed(c *gin.Context, message string, details interface{}) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   message,
		Code:    "VALIDATION_FAILED",
		Details: details,
	})
}

// StoreUnavailable handles backing-store outages and timeouts
func StoreUnavailable(c *gin.Context) {
	ServiceUnavailable(c, "Report store is temporarily unavailable, please try again", "STORE_UNAVAILABLE")
}

// AuthorizationError handles authorization failures
func AuthorizationError(c *gin.Context, message string) {
	Forbidden(c, message, "FORBIDDEN")
}
