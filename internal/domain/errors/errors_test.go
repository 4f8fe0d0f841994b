package errors

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorBody_MessageShapes(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		first string
	}{
		{name: "string message", body: `{"statusCode":401,"message":"Unauthorized"}`, first: "Unauthorized"},
		{name: "array message", body: `{"statusCode":400,"message":["email must be an email","password too short"],"error":"Bad Request"}`, first: "email must be an email"},
		{name: "no message", body: `{"statusCode":500,"error":"Internal Server Error"}`, first: "Internal Server Error"},
		{name: "empty array", body: `{"message":[],"error":"Bad Request"}`, first: "Bad Request"},
		{name: "blank first element", body: `{"message":["","phone must be valid"],"error":"Bad Request"}`, first: "phone must be valid"},
		{name: "only blank elements", body: `{"message":[""," "],"error":"Bad Request"}`, first: "Bad Request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body ErrorBody
			require.NoError(t, json.Unmarshal([]byte(tt.body), &body))
			assert.Equal(t, tt.first, body.FirstMessage())
		})
	}
}

func TestNewErrorBody_RoundTripsMessages(t *testing.T) {
	single := NewErrorBody(http.StatusNotFound, "Not Found", "store not found")
	assert.Equal(t, []string{"store not found"}, single.Messages())

	multi := NewErrorBody(http.StatusBadRequest, "Bad Request", "a", "b")
	assert.Equal(t, []string{"a", "b"}, multi.Messages())

	none := NewErrorBody(http.StatusBadRequest, "Bad Request")
	assert.Equal(t, "Bad Request", none.FirstMessage())
}

func TestNewAPIError_FallsBackToStatusText(t *testing.T) {
	err := NewAPIError(http.MethodGet, "/stores/me", http.StatusInternalServerError, nil)

	assert.Equal(t, "Internal Server Error", err.Message)
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
	assert.Contains(t, err.Error(), "/stores/me")
}

func TestStatusCode_Wrapped(t *testing.T) {
	apiErr := NewAPIError(http.MethodDelete, "/stores/1", http.StatusForbidden, nil)

	assert.Equal(t, http.StatusForbidden, StatusCode(errors.Wrap(apiErr, "delete store")))
	assert.Equal(t, 0, StatusCode(errors.New("boom")))
}

func TestUserMessage(t *testing.T) {
	payload := NewErrorBody(http.StatusBadRequest, "Bad Request", "price must be positive", "name required")
	apiErr := NewAPIError(http.MethodPost, "/products/store/1", http.StatusBadRequest, payload)

	assert.Equal(t, "price must be positive", UserMessage(errors.Wrap(apiErr, "create product"), "fallback"))
	assert.Equal(t, "name is required", UserMessage(ErrValidationFailed.WithDetails("name is required"), "fallback"))
	assert.Equal(t, "invalid input", UserMessage(ErrValidationFailed, "fallback"))

	transport := &TransportError{Method: http.MethodGet, Path: "/stores", Err: context.DeadlineExceeded}
	assert.Equal(t, "fallback", UserMessage(transport, "fallback"))
	assert.Equal(t, "", UserMessage(nil, "fallback"))
}

func TestBaseError_IsMatchesByCode(t *testing.T) {
	err := errors.Wrap(ErrValidationFailed.WithDetails("price must be greater than 0"), "create product")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrNotAuthenticated))
}

func TestTransportError_Unwraps(t *testing.T) {
	err := &TransportError{Method: http.MethodGet, Path: "/stores", Err: context.DeadlineExceeded}

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
