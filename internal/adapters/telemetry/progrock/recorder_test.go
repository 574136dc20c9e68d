package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/WIPACrepo/cvmfs/internal/adapters/telemetry/progrock"
	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_Record(t *testing.T) {
	recorder := progrock.New()

	ctx, vertex := recorder.Record(context.Background(), "install foo")

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("==> Installing foo\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("==> Warning: no checksum\n"))
	require.NoError(t, err)
	vertex.Log(domain.LogLevelInfo, "resolved msg")
	vertex.Log(domain.LogLevelWarn, "warn msg")
	vertex.Complete(nil)

	_, repeated := recorder.Record(context.Background(), "install foo")
	assert.NotSame(t, vertex, repeated)
	repeated.Cached()
	repeated.Complete(nil)

	_, failed := recorder.Record(context.Background(), "install bar")
	failed.Complete(errors.New("install failed"))

	require.NoError(t, recorder.Close())
}
