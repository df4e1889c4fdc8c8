// Package response builds the JSON envelope every API call returns.
package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// TimestampFormat is the layout used for the envelope timestamp.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Envelope is the uniform body of every API response.
type Envelope struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	Message    string `json:"message,omitempty"`
	Details    any    `json:"details,omitempty"`
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
}

// now is replaced in tests.
var now = time.Now

// Outcome selects which side of the envelope is filled.
type Outcome struct {
	StatusCode int
	Data       any
	Message    string
	Err        string
	Details    any
}

// Build shapes an envelope from an outcome. Outcomes with a status below 400 are successes.
func Build(o Outcome) Envelope {
	env := Envelope{
		Success:    o.StatusCode < 400,
		StatusCode: o.StatusCode,
		Timestamp:  now().UTC().Format(TimestampFormat),
	}
	if env.Success {
		env.Data = o.Data
		env.Message = o.Message
		return env
	}
	env.Error = o.Err
	env.Details = o.Details
	return env
}

// Success writes a success envelope.
func Success(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, Build(Outcome{StatusCode: statusCode, Data: data, Message: message}))
}

// Error writes an error envelope.
func Error(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, Build(Outcome{StatusCode: statusCode, Err: message, Details: details}))
}

// AbortWithError writes an error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, statusCode int, message string, details any) {
	c.AbortWithStatusJSON(statusCode, Build(Outcome{StatusCode: statusCode, Err: message, Details: details}))
}
