package utils

import (
	"encoding/json"
	"fmt"

	"github.com/labstack/echo/v4"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// ParseJSONResponse unmarshals a response body, unwrapping the standard
// {success, data} envelope when present
func ParseJSONResponse(body []byte, out interface{}) error {
	var envelope struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Success != nil {
		if !*envelope.Success {
			return fmt.Errorf("request failed: %s", envelope.Error)
		}
		if len(envelope.Data) > 0 {
			return json.Unmarshal(envelope.Data, out)
		}
		return nil
	}

	return json.Unmarshal(body, out)
}
