// Package session holds the client's session token.
//
// The Manager is the single source of truth for session identity. The HTTP
// layer reads it on every request and the auth flow writes it; both receive
// it by injection, so tests can run against a MemoryStore instead of the
// on-disk metadata table.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jiraclone/jiraclient/internal/common"
)

// Store is the persistence behind a Manager. Get returns (nil, nil) when the
// key is absent. metadata.SQLiteRepository satisfies it.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Manager is the contract consumed by the HTTP client and the auth holder.
type Manager interface {
	// Token returns the stored token or "" when there is none.
	Token(ctx context.Context) (string, error)
	SetSession(ctx context.Context, token string) error
	ClearSession(ctx context.Context) error
}

// StoreManager implements Manager on top of a Store. Writes are serialised;
// the last write wins.
type StoreManager struct {
	mu    sync.Mutex
	store Store
	key   string

	onClear []func()
}

// NewManager returns a Manager persisting the token under common.TokenStorageKey.
func NewManager(store Store) *StoreManager {
	return &StoreManager{store: store, key: common.TokenStorageKey}
}

func (m *StoreManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, err := m.store.Get(ctx, m.key)
	if err != nil {
		return "", fmt.Errorf("read session token: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// SetSession stores token. An empty token clears the session instead.
func (m *StoreManager) SetSession(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return m.ClearSession(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Set(ctx, m.key, []byte(token)); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	return nil
}

// ClearSession removes the token and then runs the OnClear hooks.
func (m *StoreManager) ClearSession(ctx context.Context) error {
	m.mu.Lock()
	err := m.store.Delete(ctx, m.key)
	hooks := append([]func(){}, m.onClear...)
	m.mu.Unlock()

	if err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	for _, fn := range hooks {
		fn()
	}
	return nil
}

// OnClear registers fn to run after every successful ClearSession. The auth
// holder uses it to drop the current user when the HTTP layer invalidates
// the session on a 401.
func (m *StoreManager) OnClear(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onClear = append(m.onClear, fn)
}
