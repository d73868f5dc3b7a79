package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBlobStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBlobStore()

	_, ok, err := m.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "k", "v1"))
	v, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v1", v)

	// set replaces in full, matching the single-blob contract
	require.NoError(t, m.Set(ctx, "k", "v2"))
	v, _, _ = m.Get(ctx, "k")
	assert.Equal(t, "v2", v)
}
