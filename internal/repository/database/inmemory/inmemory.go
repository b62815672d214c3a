package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/database"
)

var _ database.Repository = (*inmemoryProvider)(nil)

type entry struct {
	value     []byte
	expiresAt time.Time
}

type inmemoryProvider struct {
	mu      sync.Mutex
	entries map[string]map[string]entry
	now     func() time.Time
}

func NewInMemoryProvider() database.Repository {
	return newInMemoryProvider(time.Now)
}

func newInMemoryProvider(now func() time.Time) *inmemoryProvider {
	return &inmemoryProvider{
		entries: make(map[string]map[string]entry),
		now:     now,
	}
}

func (i *inmemoryProvider) Migrate() error {
	// Nothing to do here
	return nil
}

func (i *inmemoryProvider) Close() error {
	return nil
}

func (i *inmemoryProvider) Get(_ context.Context, segment string, key string) ([]byte, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	e, ok := i.entries[segment][key]
	if !ok {
		return nil, database.ErrNotFound
	}
	if !i.now().Before(e.expiresAt) {
		delete(i.entries[segment], key)
		return nil, database.ErrNotFound
	}

	result := make([]byte, len(e.value))
	copy(result, e.value)
	return result, nil
}

func (i *inmemoryProvider) Set(_ context.Context, segment string, key string, value []byte, ttl time.Duration) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, ok := i.entries[segment]; !ok {
		i.entries[segment] = make(map[string]entry)
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	i.entries[segment][key] = entry{
		value:     stored,
		expiresAt: i.now().Add(ttl),
	}
	return nil
}

func (i *inmemoryProvider) Drop(_ context.Context, segment string, key string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	delete(i.entries[segment], key)
	return nil
}
