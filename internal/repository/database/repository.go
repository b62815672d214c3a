package database

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("no such entry or entry expired")

// Repository is the session and cache store. Values live in named segments and expire after their ttl.
type Repository interface {
	Migrate() error
	Close() error
	CacheCRUD
}

type CacheCRUD interface {
	// Get returns ErrNotFound for missing or expired entries.
	Get(ctx context.Context, segment string, key string) ([]byte, error)
	Set(ctx context.Context, segment string, key string, value []byte, ttl time.Duration) error
	// Drop is a no-op for missing entries.
	Drop(ctx context.Context, segment string, key string) error
}
