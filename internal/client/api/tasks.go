package api

import (
	"context"
	"net/http"

	"github.com/jiraclone/jiraclient/internal/client/models"
)

type TaskAPI interface {
	ListByProject(ctx context.Context, projectID models.ID) ([]models.Task, error)
	Get(ctx context.Context, id models.ID) (*models.Task, error)
	Create(ctx context.Context, task models.Task, projectID models.ID) (*models.Task, error)
	Update(ctx context.Context, id models.ID, task models.Task) (*models.Task, error)
	Delete(ctx context.Context, id models.ID) error
	UpdateStatus(ctx context.Context, id models.ID, status string) (*models.Task, error)
	Assign(ctx context.Context, taskID, assigneeID models.ID) (*models.Task, error)
	Assigned(ctx context.Context) ([]models.Task, error)
	ListBySprint(ctx context.Context, sprintID models.ID) ([]models.Task, error)
	UpdatePriority(ctx context.Context, id models.ID, priority string) (*models.Task, error)
}

type taskAPI struct{ c *Client }

func (a *taskAPI) ListByProject(ctx context.Context, projectID models.ID) ([]models.Task, error) {
	return call[[]models.Task](ctx, a.c, http.MethodGet, "/tasks/project/"+seg(projectID), nil, nil)
}

func (a *taskAPI) Get(ctx context.Context, id models.ID) (*models.Task, error) {
	return call[*models.Task](ctx, a.c, http.MethodGet, "/tasks/"+seg(id), nil, nil)
}

func (a *taskAPI) Create(ctx context.Context, task models.Task, projectID models.ID) (*models.Task, error) {
	q := Query{}.With("projectId", projectID.String())
	return call[*models.Task](ctx, a.c, http.MethodPost, "/tasks", q, task)
}

func (a *taskAPI) Update(ctx context.Context, id models.ID, task models.Task) (*models.Task, error) {
	return call[*models.Task](ctx, a.c, http.MethodPut, "/tasks/"+seg(id), nil, task)
}

func (a *taskAPI) Delete(ctx context.Context, id models.ID) error {
	return a.c.Do(ctx, http.MethodDelete, "/tasks/"+seg(id), nil, nil, nil)
}

func (a *taskAPI) UpdateStatus(ctx context.Context, id models.ID, status string) (*models.Task, error) {
	body := struct {
		Status string `json:"status"`
	}{Status: status}
	return call[*models.Task](ctx, a.c, http.MethodPatch, "/tasks/"+seg(id)+"/status", nil, body)
}

func (a *taskAPI) Assign(ctx context.Context, taskID, assigneeID models.ID) (*models.Task, error) {
	body := struct {
		AssigneeID models.ID `json:"assigneeId"`
	}{AssigneeID: assigneeID}
	return call[*models.Task](ctx, a.c, http.MethodPatch, "/tasks/"+seg(taskID)+"/assign", nil, body)
}

func (a *taskAPI) Assigned(ctx context.Context) ([]models.Task, error) {
	return call[[]models.Task](ctx, a.c, http.MethodGet, "/tasks/assigned", nil, nil)
}

func (a *taskAPI) ListBySprint(ctx context.Context, sprintID models.ID) ([]models.Task, error) {
	return call[[]models.Task](ctx, a.c, http.MethodGet, "/tasks/sprint/"+seg(sprintID), nil, nil)
}

func (a *taskAPI) UpdatePriority(ctx context.Context, id models.ID, priority string) (*models.Task, error) {
	body := struct {
		Priority string `json:"priority"`
	}{Priority: priority}
	return call[*models.Task](ctx, a.c, http.MethodPatch, "/tasks/"+seg(id)+"/priority", nil, body)
}
