package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/jiraclone/jiraclient/internal/client/api"
	"github.com/jiraclone/jiraclient/internal/client/notify"
	"github.com/jiraclone/jiraclient/internal/client/services"
	"github.com/jiraclone/jiraclient/internal/client/session"
	"github.com/jiraclone/jiraclient/internal/logging"
)

// LoginGate is the Navigator handed to the API client. A request for the
// login route is remembered until the REPL takes it.
type LoginGate struct {
	pending atomic.Bool
}

func NewLoginGate() *LoginGate {
	return &LoginGate{}
}

func (g *LoginGate) Navigate(_ context.Context, route string) {
	if route == notify.RouteLogin {
		g.pending.Store(true)
	}
}

// Take reports whether a login was requested and resets the request.
func (g *LoginGate) Take() bool {
	return g.pending.Swap(false)
}

// Deps are the collaborators of an App. In and Out default to the process
// stdin and stdout.
type Deps struct {
	API     *api.API
	Auth    services.AuthService
	Session session.Manager
	Gate    *LoginGate
	Logger  logging.Logger
	In      io.Reader
	Out     io.Writer
}

type App struct {
	api     *api.API
	auth    services.AuthService
	session session.Manager
	gate    *LoginGate
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(d Deps) *App {
	if d.In == nil {
		d.In = os.Stdin
	}
	if d.Out == nil {
		d.Out = os.Stdout
	}
	if d.Gate == nil {
		d.Gate = NewLoginGate()
	}
	if d.Logger == nil {
		d.Logger = logging.NewSlogLogger(nil)
	}
	return &App{
		api:     d.API,
		auth:    d.Auth,
		session: d.Session,
		gate:    d.Gate,
		log:     d.Logger,
		reader:  bufio.NewReader(d.In),
		out:     d.Out,
	}
}

// Run resolves the stored session and then blocks in the REPL until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, titleStyle.Render("jiraclone CLI")+" (type 'help' for commands)")

	a.auth.Init(ctx)
	if a.auth.IsAuthenticated() {
		fmt.Fprintf(a.out, "Welcome back, %s\n", a.auth.CurrentUser().DisplayName())
	} else {
		a.gate.Navigate(ctx, notify.RouteLogin)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) takeLoginRequest() bool {
	return a.gate.Take()
}
