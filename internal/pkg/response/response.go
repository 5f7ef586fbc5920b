package response

import "github.com/gin-gonic/gin"

// Envelope is the wire shape of every API response. Data is always present
// on success so "no result" is an explicit null, never a missing key.
type Envelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// successEnvelope keeps the data key even when the payload is nil.
type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, successEnvelope{Success: true, Data: data})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, Envelope{
		Error: &APIError{Code: code, Message: message},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, Envelope{
		Error: &APIError{Code: code, Message: message, Details: details},
	})
}
