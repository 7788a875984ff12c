package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jiraclone/jiraclient/internal/client/repositories/metadata"
	"github.com/jiraclone/jiraclient/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingStore) Set(context.Context, string, []byte) error   { return f.err }
func (f failingStore) Delete(context.Context, string) error        { return f.err }

func TestManager_EmptyByDefault(t *testing.T) {
	m := NewManager(NewMemoryStore())

	tok, err := m.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestManager_SetThenClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store)

	require.NoError(t, m.SetSession(ctx, "t1"))
	tok, err := m.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", tok)

	raw, _ := store.Get(ctx, common.TokenStorageKey)
	assert.Equal(t, []byte("t1"), raw)

	require.NoError(t, m.ClearSession(ctx))
	tok, err = m.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestManager_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())

	require.NoError(t, m.SetSession(ctx, "t1"))
	require.NoError(t, m.SetSession(ctx, "t2"))

	tok, _ := m.Token(ctx)
	assert.Equal(t, "t2", tok)
}

func TestManager_SetEmptyClears(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())
	cleared := 0
	m.OnClear(func() { cleared++ })

	require.NoError(t, m.SetSession(ctx, "t1"))
	require.NoError(t, m.SetSession(ctx, "  "))

	tok, _ := m.Token(ctx)
	assert.Empty(t, tok)
	assert.Equal(t, 1, cleared)
}

func TestManager_OnClearHooksRunAfterDelete(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())
	require.NoError(t, m.SetSession(ctx, "t1"))

	var seen string
	m.OnClear(func() {
		seen, _ = m.Token(ctx)
		seen += "|cleared"
	})
	require.NoError(t, m.ClearSession(ctx))
	assert.Equal(t, "|cleared", seen)
}

func TestManager_StoreErrorsWrapped(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk")
	m := NewManager(failingStore{err: boom})
	called := false
	m.OnClear(func() { called = true })

	_, err := m.Token(ctx)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, m.SetSession(ctx, "t"), boom)
	require.ErrorIs(t, m.ClearSession(ctx), boom)
	assert.False(t, called)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	v := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", v))
	v[0] = 'x'

	got, _ := s.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), got)
}

func TestExpiresAt(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	got, ok := ExpiresAt(signed)
	require.True(t, ok)
	assert.True(t, got.Equal(exp))

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, ok = ExpiresAt(noExp)
	assert.False(t, ok)

	_, ok = ExpiresAt("opaque-token")
	assert.False(t, ok)

	_, ok = ExpiresAt("")
	assert.False(t, ok)
}

var _ Store = (*metadata.SQLiteRepository)(nil)
