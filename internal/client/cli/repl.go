package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	takeLoginRequest() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	// Exec runs a data command. handled is false for unknown commands.
	Exec(ctx context.Context, cmd string, args []string) (handled bool, err error)
}

// runREPL reads commands from r until EOF, "exit" or "quit".
//
// Before each prompt it checks whether a login was requested, either at
// startup or because the backend rejected the session, and runs the login
// flow first. Errors from handlers are printed only when they are usage or
// local problems; request failures were already shown by the notifier.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader, w io.Writer) {
	for {
		if a.takeLoginRequest() {
			fmt.Fprintln(w, "Please log in.")
			report(w, a.Login(ctx))
		}

		fmt.Fprintf(w, "jira %s> ", statusFn())
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprint(w, helpText(a.isLoggedIn()))

		case "register":
			report(w, a.Register(ctx))

		case "login":
			report(w, a.Login(ctx))

		case "logout":
			report(w, a.Logout(ctx))

		case "whoami":
			report(w, a.WhoAmI(ctx))

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			handled, err := a.Exec(ctx, cmd, args)
			if !handled {
				fmt.Fprintln(w, "Unknown command:", cmd)
				continue
			}
			report(w, err)
		}
	}
}

func report(w io.Writer, err error) {
	if err == nil {
		return
	}
	if msg, ok := visible(err); ok {
		fmt.Fprintln(w, msg)
	}
}
