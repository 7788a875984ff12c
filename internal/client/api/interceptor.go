package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jiraclone/jiraclient/internal/client/notify"
	"github.com/jiraclone/jiraclient/internal/common"
)

// RequestInterceptor mutates an outbound request before it is sent. Returning
// an error aborts the request.
type RequestInterceptor func(req *http.Request) error

type silentKey struct{}

// Silent marks ctx so failures of requests made with it are not shown to the
// user and do not trigger navigation. A 401 still clears the session.
func Silent(ctx context.Context) context.Context {
	return context.WithValue(ctx, silentKey{}, true)
}

func isSilent(ctx context.Context) bool {
	v, _ := ctx.Value(silentKey{}).(bool)
	return v
}

// injectToken sets the bearer header iff the session holds a token.
func (c *Client) injectToken(req *http.Request) error {
	token, err := c.session.Token(req.Context())
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	if token == "" {
		req.Header.Del(common.AuthorizationHeaderName)
		return nil
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	return nil
}

func injectRequestID(req *http.Request) error {
	if req.Header.Get(common.RequestIDHeaderName) == "" {
		req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}
	return nil
}

// handleFailure is the inbound interceptor for every failed request. It runs
// before the caller sees err.
func (c *Client) handleFailure(ctx context.Context, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	silent := isSilent(ctx)

	if errors.Is(err, ErrUnauthorized) {
		// The session is dropped even when the caller's ctx is already done.
		if cerr := c.session.ClearSession(context.WithoutCancel(ctx)); cerr != nil {
			c.log.Error(ctx, "failed to clear session", "error", cerr)
		}
		if silent {
			return
		}
		c.notifier.Error(ctx, MsgSessionExpired)
		c.navigator.Navigate(ctx, notify.RouteLogin)
		return
	}

	if !silent {
		c.notifier.Error(ctx, Message(err, MsgGenericFailure))
	}
}
