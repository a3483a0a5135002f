// Package tokenstore provides durable mirrors for the gateway client's
// access token. The client keeps the authoritative copy in memory; a
// Store lets the token survive process restarts (file) or be shared by
// cooperating processes (redis).
package tokenstore

import "context"

// Store persists an access token under a configurable key.
//
// Clear takes every key the caller knows about, including legacy key
// names used by earlier client versions, so sign-out can leave no stale
// token behind.
type Store interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, token string) error
	Clear(ctx context.Context, keys ...string) error
}

type notFoundError struct{}

func (notFoundError) Error() string { return "token not found" }

// ErrNotFound is returned by Load when no token is stored under the key.
var ErrNotFound error = notFoundError{}
