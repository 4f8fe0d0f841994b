package errors

import (
	"encoding/json"
	"strings"
)

// ErrorBody is the error payload returned by the backend, e.g.
// {"statusCode":400,"message":["name should not be empty"],"error":"Bad Request"}.
type ErrorBody struct {
	StatusCode int             `json:"statusCode,omitempty"`
	Message    json.RawMessage `json:"message,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// NewErrorBody builds a payload with one or more messages.
func NewErrorBody(status int, errText string, messages ...string) *ErrorBody {
	body := &ErrorBody{StatusCode: status, Error: errText}

	switch len(messages) {
	case 0:
	case 1:
		body.Message, _ = json.Marshal(messages[0])
	default:
		body.Message, _ = json.Marshal(messages)
	}

	return body
}

// Messages returns the message field as a list, whether it was a string or an array.
func (b *ErrorBody) Messages() []string {
	if b == nil || len(b.Message) == 0 {
		return nil
	}

	var single string
	if err := json.Unmarshal(b.Message, &single); err == nil {
		if strings.TrimSpace(single) == "" {
			return nil
		}

		return []string{single}
	}

	var list []string
	if err := json.Unmarshal(b.Message, &list); err == nil {
		return list
	}

	return nil
}

// FirstMessage returns the first non-blank message, or the error text when there is none.
func (b *ErrorBody) FirstMessage() string {
	if b == nil {
		return ""
	}
	for _, msg := range b.Messages() {
		if strings.TrimSpace(msg) != "" {
			return msg
		}
	}

	return b.Error
}
