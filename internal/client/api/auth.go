package api

import (
	"context"
	"net/http"

	"github.com/jiraclone/jiraclient/internal/client/models"
)

type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

type authAPI struct{ c *Client }

func (a *authAPI) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	return call[*models.LoginResponse](ctx, a.c, http.MethodPost, "/auth/login", nil, creds)
}

func (a *authAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return call[*models.User](ctx, a.c, http.MethodPost, "/auth/register", nil, req)
}

func (a *authAPI) CurrentUser(ctx context.Context) (*models.User, error) {
	return call[*models.User](ctx, a.c, http.MethodGet, "/auth/me", nil, nil)
}
