package utils

import (
	"github.com/gin-gonic/gin"
)

// apiResponse is the wire shape of every successful API reply.
type apiResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// apiError is the wire shape of every failed API reply.
type apiError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, apiResponse{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, apiError{
		Status:  status,
		Message: message,
		Error:   err.Error(),
	})
}
