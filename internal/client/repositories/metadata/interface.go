// Package metadata is a small key-value store on top of the client's local
// SQLite database. The session keeps its bearer token here.
package metadata

import (
	"context"
)

// Repository reads and writes string values by key.
//
// Get reports ok=false (and no error) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
