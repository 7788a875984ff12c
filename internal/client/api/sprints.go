package api

import (
	"context"
	"net/http"

	"github.com/jiraclone/jiraclient/internal/client/models"
)

type SprintAPI interface {
	ListByProject(ctx context.Context, projectID models.ID) ([]models.Sprint, error)
	Get(ctx context.Context, id models.ID) (*models.Sprint, error)
	Create(ctx context.Context, sprint models.Sprint, projectID models.ID) (*models.Sprint, error)
	Update(ctx context.Context, id models.ID, sprint models.Sprint) (*models.Sprint, error)
	Delete(ctx context.Context, id models.ID) error
	Start(ctx context.Context, id models.ID) (*models.Sprint, error)
	Complete(ctx context.Context, id models.ID) (*models.Sprint, error)
}

type sprintAPI struct{ c *Client }

func (a *sprintAPI) ListByProject(ctx context.Context, projectID models.ID) ([]models.Sprint, error) {
	return call[[]models.Sprint](ctx, a.c, http.MethodGet, "/sprints/project/"+seg(projectID), nil, nil)
}

func (a *sprintAPI) Get(ctx context.Context, id models.ID) (*models.Sprint, error) {
	return call[*models.Sprint](ctx, a.c, http.MethodGet, "/sprints/"+seg(id), nil, nil)
}

func (a *sprintAPI) Create(ctx context.Context, sprint models.Sprint, projectID models.ID) (*models.Sprint, error) {
	q := Query{}.With("projectId", projectID.String())
	return call[*models.Sprint](ctx, a.c, http.MethodPost, "/sprints", q, sprint)
}

func (a *sprintAPI) Update(ctx context.Context, id models.ID, sprint models.Sprint) (*models.Sprint, error) {
	return call[*models.Sprint](ctx, a.c, http.MethodPut, "/sprints/"+seg(id), nil, sprint)
}

func (a *sprintAPI) Delete(ctx context.Context, id models.ID) error {
	return a.c.Do(ctx, http.MethodDelete, "/sprints/"+seg(id), nil, nil, nil)
}

func (a *sprintAPI) Start(ctx context.Context, id models.ID) (*models.Sprint, error) {
	return call[*models.Sprint](ctx, a.c, http.MethodPost, "/sprints/"+seg(id)+"/start", nil, nil)
}

func (a *sprintAPI) Complete(ctx context.Context, id models.ID) (*models.Sprint, error) {
	return call[*models.Sprint](ctx, a.c, http.MethodPost, "/sprints/"+seg(id)+"/complete", nil, nil)
}
