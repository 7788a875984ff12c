// Package notify surfaces request failures to the user and carries
// navigation requests out of the HTTP layer.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/jiraclone/jiraclient/internal/logging"
)

// RouteLogin is the route requested after the session is invalidated.
const RouteLogin = "/login"

// Notifier shows a transient, user-facing message.
type Notifier interface {
	Error(ctx context.Context, msg string)
}

// Navigator moves the front end to another route.
type Navigator interface {
	Navigate(ctx context.Context, route string)
}

var errorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("9"))

// Terminal prints notifications as single styled lines.
type Terminal struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) Error(_ context.Context, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.w, errorStyle.Render("✖ "+msg))
}

// Log forwards notifications to a logger, for non-interactive use.
type Log struct {
	log logging.Logger
}

func NewLog(l logging.Logger) *Log {
	return &Log{log: l}
}

func (l *Log) Error(ctx context.Context, msg string) {
	l.log.Warn(ctx, "notification", "message", msg)
}

func (l *Log) Navigate(ctx context.Context, route string) {
	l.log.Info(ctx, "navigation requested", "route", route)
}

// Nop discards notifications and navigation.
type Nop struct{}

func (Nop) Error(context.Context, string)    {}
func (Nop) Navigate(context.Context, string) {}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, route string)

func (f NavigatorFunc) Navigate(ctx context.Context, route string) { f(ctx, route) }
