package reqid

import (
	"context"
	"math/rand/v2"
)

// key is the context key for the call ID.
type key struct{}

// NewContext returns a copy of parent carrying a new random call ID, and the
// ID itself. Subscribers use it to pair start and finish events.
func NewContext(parent context.Context) (context.Context, int64) {
	id := rand.Int64()
	return context.WithValue(parent, key{}, id), id
}

// FromContext extracts the call ID from ctx.
// It returns the ID and whether it was present.
func FromContext(ctx context.Context) (int64, bool) {
	v := ctx.Value(key{})
	id, ok := v.(int64)
	return id, ok
}
