package api

import (
	"context"
	"net/http"

	"github.com/jiraclone/jiraclient/internal/client/models"
)

type EpicAPI interface {
	ListByProject(ctx context.Context, projectID models.ID) ([]models.Epic, error)
	Get(ctx context.Context, id models.ID) (*models.Epic, error)
	Create(ctx context.Context, epic models.Epic, projectID models.ID) (*models.Epic, error)
	Update(ctx context.Context, id models.ID, epic models.Epic) (*models.Epic, error)
	Delete(ctx context.Context, id models.ID) error
}

type epicAPI struct{ c *Client }

func (a *epicAPI) ListByProject(ctx context.Context, projectID models.ID) ([]models.Epic, error) {
	return call[[]models.Epic](ctx, a.c, http.MethodGet, "/epics/project/"+seg(projectID), nil, nil)
}

func (a *epicAPI) Get(ctx context.Context, id models.ID) (*models.Epic, error) {
	return call[*models.Epic](ctx, a.c, http.MethodGet, "/epics/"+seg(id), nil, nil)
}

func (a *epicAPI) Create(ctx context.Context, epic models.Epic, projectID models.ID) (*models.Epic, error) {
	q := Query{}.With("projectId", projectID.String())
	return call[*models.Epic](ctx, a.c, http.MethodPost, "/epics", q, epic)
}

func (a *epicAPI) Update(ctx context.Context, id models.ID, epic models.Epic) (*models.Epic, error) {
	return call[*models.Epic](ctx, a.c, http.MethodPut, "/epics/"+seg(id), nil, epic)
}

func (a *epicAPI) Delete(ctx context.Context, id models.ID) error {
	return a.c.Do(ctx, http.MethodDelete, "/epics/"+seg(id), nil, nil, nil)
}
