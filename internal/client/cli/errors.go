package cli

import (
	"errors"
	"fmt"
)

var errLoginRequired = errors.New("please log in first (type 'login')")

// userError is printed by the REPL. Errors returned by the API client are
// not: the client has already shown them.
type userError struct {
	msg string
}

func (e *userError) Error() string { return e.msg }

func userErrorf(format string, args ...any) error {
	return &userError{msg: fmt.Sprintf(format, args...)}
}

func usageError(usage string) error {
	return userErrorf("Usage: %s", usage)
}

func inputError(err error) error {
	return userErrorf("input error: %v", err)
}

// visible returns the text the REPL should print for err, if any.
func visible(err error) (string, bool) {
	if errors.Is(err, errLoginRequired) {
		return err.Error(), true
	}
	var ue *userError
	if errors.As(err, &ue) {
		return ue.msg, true
	}
	return "", false
}

var errEmptyResponse = userErrorf("the server returned an empty response")
