package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jiraclone/jiraclient/internal/client/models"
	"github.com/jiraclone/jiraclient/internal/client/session"
	"github.com/jiraclone/jiraclient/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Register prompts for the account fields and creates the account. It does
// not log in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return inputError(err)
	}
	if email == "" {
		return userErrorf("email is required")
	}
	username, err := getSimpleText(a.reader, "Enter username (optional)", a.out)
	if err != nil {
		return inputError(err)
	}
	fullName, err := getSimpleText(a.reader, "Enter full name (optional)", a.out)
	if err != nil {
		return inputError(err)
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return inputError(err)
	}
	// Zeroes the terminal buffer only. The string copy handed to the
	// request body lives until the GC collects it.
	defer common.WipeByteArray(password)

	u, err := a.auth.Register(ctx, models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: string(password),
		FullName: fullName,
	})
	if err != nil {
		return err
	}

	success(a.out, "Account created for %s. Type 'login' to sign in.", u.DisplayName())
	return nil
}

// Login prompts for credentials. An empty email cancels. A rejected login
// has already been shown by the notifier, so it is not an error here.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email (empty to cancel)", a.out)
	if err != nil {
		return inputError(err)
	}
	if email == "" {
		fmt.Fprintln(a.out, "Login cancelled.")
		return nil
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return inputError(err)
	}
	// Zeroes the terminal buffer only. The string copy handed to the
	// request body lives until the GC collects it.
	defer common.WipeByteArray(password)

	if !a.auth.Login(ctx, email, string(password)) {
		return nil
	}
	success(a.out, "Logged in as %s", a.auth.CurrentUser().DisplayName())
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return userErrorf("logout: %v", err)
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u := a.auth.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	renderFields(a.out, u.DisplayName(), []field{
		{"ID", u.ID.String()},
		{"Username", u.Username},
		{"Email", u.Email},
		{"Role", u.Role},
		{"Session", a.sessionExpiry(ctx)},
	})
	return nil
}

// sessionExpiry describes when the stored token expires, or "" when the
// token carries no expiry.
func (a *App) sessionExpiry(ctx context.Context) string {
	token, err := a.session.Token(ctx)
	if err != nil || token == "" {
		return ""
	}
	exp, ok := session.ExpiresAt(token)
	if !ok {
		return ""
	}
	if !exp.After(time.Now()) {
		return "expired"
	}
	return "expires " + exp.Local().Format("2006-01-02 15:04")
}

// getStatus is shown in the prompt.
func (a *App) getStatus() string {
	u := a.auth.CurrentUser()
	if u == nil {
		return "(guest)"
	}
	return fmt.Sprintf("(%s)", u.DisplayName())
}
