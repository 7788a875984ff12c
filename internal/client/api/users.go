package api

import (
	"context"
	"net/http"

	"github.com/jiraclone/jiraclient/internal/client/models"
)

type UserAPI interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id models.ID) (*models.User, error)
	Update(ctx context.Context, id models.ID, user models.User) (*models.User, error)
	Delete(ctx context.Context, id models.ID) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type userAPI struct{ c *Client }

func (a *userAPI) List(ctx context.Context) ([]models.User, error) {
	return call[[]models.User](ctx, a.c, http.MethodGet, "/users", nil, nil)
}

func (a *userAPI) Get(ctx context.Context, id models.ID) (*models.User, error) {
	return call[*models.User](ctx, a.c, http.MethodGet, "/users/"+seg(id), nil, nil)
}

func (a *userAPI) Update(ctx context.Context, id models.ID, user models.User) (*models.User, error) {
	return call[*models.User](ctx, a.c, http.MethodPut, "/users/"+seg(id), nil, user)
}

func (a *userAPI) Delete(ctx context.Context, id models.ID) error {
	return a.c.Do(ctx, http.MethodDelete, "/users/"+seg(id), nil, nil, nil)
}

func (a *userAPI) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	q := Query{}.With("email", email)
	return call[*models.User](ctx, a.c, http.MethodGet, "/users/email", q, nil)
}
