package reqid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextRoundTrip(t *testing.T) {
	ctx, id := NewContext(context.Background())
	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok, "unexpected id in empty context")
}

func TestNestedContextsGetDistinctIDs(t *testing.T) {
	outer, first := NewContext(context.Background())
	inner, second := NewContext(outer)
	assert.NotEqual(t, first, second)

	got, _ := FromContext(inner)
	assert.Equal(t, second, got)
	got, _ = FromContext(outer)
	assert.Equal(t, first, got)
}
