package context

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScope_TagsRequestIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := Scope(context.Background(), base, "req-1")

	assert.Equal(t, "req-1", RequestIDFrom(ctx))
	LoggerFrom(ctx, nil).Info("hello")
	assert.Contains(t, buf.String(), "request_id=req-1")
}

func TestLoggerFrom_FallsBack(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))
	assert.Empty(t, RequestIDFrom(context.Background()))
}

func TestNewRequestID_Unique(t *testing.T) {
	assert.NotEqual(t, NewRequestID(), NewRequestID())
}
