package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNoSession          = errors.New("no session token in context")
	ErrServiceUnavailable = errors.New("hr api is unavailable")
)

// APIError is a non-2xx response from the HR API. Message is the response
// body's message field, unmodified.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hr api: %d %s", e.Status, e.Message)
}

// errorBody accepts {"message": ..}, {"error": ".."} and the envelope
// {"success": false, "error": {"code": .., "message": ..}}.
type errorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

type errorDetail struct {
	Message string `json:"message"`
}

func (b errorBody) errorText() string {
	if len(b.Error) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(b.Error, &text); err == nil {
		return text
	}
	var detail errorDetail
	if err := json.Unmarshal(b.Error, &detail); err == nil {
		return detail.Message
	}
	return ""
}

// ParseAPIError builds an APIError from a failed response body
func ParseAPIError(status int, body []byte) *APIError {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return &APIError{Status: status, Message: parsed.Message}
		}
		if text := parsed.errorText(); text != "" {
			return &APIError{Status: status, Message: text}
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") && len(text) <= 200 {
		return &APIError{Status: status, Message: text}
	}

	return &APIError{Status: status, Message: http.StatusText(status)}
}

// IsStatus reports whether err is an APIError with the given status
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsSessionError reports whether err means the session is missing or was
// refused by the API.
func IsSessionError(err error) bool {
	return errors.Is(err, ErrNoSession) || IsStatus(err, http.StatusUnauthorized)
}
