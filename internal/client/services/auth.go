// Package services contains application services for the jiraclone client.
// This file defines the authentication state holder: the session identity
// shared by the front end, with login, register, logout and the startup
// check that revalidates a persisted token.
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jiraclone/jiraclient/internal/client/api"
	"github.com/jiraclone/jiraclient/internal/client/models"
	"github.com/jiraclone/jiraclient/internal/client/session"
	"github.com/jiraclone/jiraclient/internal/logging"
)

// Fallback messages recorded when the backend supplies none.
const (
	MsgLoginFailed        = "Login failed"
	MsgRegistrationFailed = "Registration failed"
)

// State is the authentication lifecycle.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateChecking        State = "checking"
	StateAuthenticated   State = "authenticated"
)

// AuthService is the surface the front end depends on.
//
// Contract:
//   - Init: once per holder; revalidates a persisted token without
//     notifying the user, dropping it on any failure.
//   - Login: never returns an error; the outcome is the bool and Error().
//   - Register: records the failure in Error() and also returns it.
//   - Logout: local only, no network call.
type AuthService interface {
	Init(ctx context.Context)
	Login(ctx context.Context, email, password string) bool
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error

	CurrentUser() *models.User
	IsAuthenticated() bool
	Loading() bool
	Error() string
	State() State
}

// sessionClearNotifier is implemented by session managers that can report
// a cleared session, such as session.StoreManager.
type sessionClearNotifier interface {
	OnClear(fn func())
}

// AuthState is the concrete AuthService.
type AuthState struct {
	auth    api.AuthAPI
	session session.Manager
	log     logging.Logger

	initOnce sync.Once

	mu       sync.RWMutex
	user     *models.User
	loading  bool
	checking bool
	errMsg   string
}

// NewAuthState returns a holder in the loading state; call Init to resolve it.
func NewAuthState(auth api.AuthAPI, sm session.Manager, log logging.Logger) *AuthState {
	s := &AuthState{auth: auth, session: sm, log: log, loading: true}
	if n, ok := sm.(sessionClearNotifier); ok {
		n.OnClear(s.dropUser)
	}
	return s
}

func (s *AuthState) Init(ctx context.Context) {
	s.initOnce.Do(func() { s.checkAuthStatus(ctx) })
}

func (s *AuthState) checkAuthStatus(ctx context.Context) {
	defer s.setLoading(false)

	token, err := s.session.Token(ctx)
	if err != nil {
		s.log.Error(ctx, "auth check error", "error", err)
		return
	}
	if token == "" {
		return
	}

	s.setChecking(true)
	defer s.setChecking(false)

	user, err := s.auth.CurrentUser(api.Silent(ctx))
	if err != nil || user == nil {
		s.log.Warn(ctx, "stored session rejected, dropping token", "error", err)
		if cerr := s.session.ClearSession(ctx); cerr != nil {
			s.log.Error(ctx, "failed to clear session", "error", cerr)
		}
		return
	}
	s.setUser(user)
}

func (s *AuthState) Login(ctx context.Context, email, password string) bool {
	s.setError("")

	resp, err := s.auth.Login(ctx, models.Credentials{Email: strings.TrimSpace(email), Password: password})
	if err != nil {
		s.setError(api.Message(err, MsgLoginFailed))
		return false
	}
	if resp == nil || resp.Token == "" {
		s.setError(MsgLoginFailed)
		return false
	}
	if err := s.session.SetSession(ctx, resp.Token); err != nil {
		s.log.Error(ctx, "failed to persist session", "error", err)
		s.setError(MsgLoginFailed)
		return false
	}

	s.setUser(resp.User)
	return true
}

func (s *AuthState) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	s.setError("")

	user, err := s.auth.Register(ctx, req)
	if err != nil {
		s.setError(api.Message(err, MsgRegistrationFailed))
		return nil, fmt.Errorf("register: %w", err)
	}
	return user, nil
}

// Logout drops the user and the token. The user is dropped even when the
// store fails; the store error is returned.
func (s *AuthState) Logout(ctx context.Context) error {
	err := s.session.ClearSession(ctx)
	s.dropUser()
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *AuthState) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *AuthState) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

func (s *AuthState) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Error returns the message of the last failed Login or Register, or "".
func (s *AuthState) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

func (s *AuthState) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.user != nil:
		return StateAuthenticated
	case s.checking:
		return StateChecking
	default:
		return StateUnauthenticated
	}
}

func (s *AuthState) setUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

func (s *AuthState) dropUser() {
	s.setUser(nil)
}

func (s *AuthState) setError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
}

func (s *AuthState) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *AuthState) setChecking(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checking = v
}
