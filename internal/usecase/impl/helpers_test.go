package impl

import (
	"io"
	"log/slog"
	"testing"

	"storefront/internal/infra/metrics"
	"storefront/internal/infra/query"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCache() *query.Client {
	return query.NewClient(query.Config{}, metrics.New(prometheus.NewRegistry()), discardLogger())
}

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v, err := NewValidator()
	require.NoError(t, err)

	return v
}

func ptr[T any](v T) *T { return &v }
