package api

import (
	"context"
	"net/http"

	"github.com/jiraclone/jiraclient/internal/client/models"
)

// CommentAPI covers comments, which always belong to a task.
type CommentAPI interface {
	ListByTask(ctx context.Context, taskID models.ID) ([]models.Comment, error)
	Create(ctx context.Context, comment models.Comment, taskID models.ID) (*models.Comment, error)
	Update(ctx context.Context, id models.ID, comment models.Comment) (*models.Comment, error)
	Delete(ctx context.Context, id models.ID) error
}

type commentAPI struct{ c *Client }

func (a *commentAPI) ListByTask(ctx context.Context, taskID models.ID) ([]models.Comment, error) {
	return call[[]models.Comment](ctx, a.c, http.MethodGet, "/comments/task/"+seg(taskID), nil, nil)
}

func (a *commentAPI) Create(ctx context.Context, comment models.Comment, taskID models.ID) (*models.Comment, error) {
	q := Query{}.With("taskId", taskID.String())
	return call[*models.Comment](ctx, a.c, http.MethodPost, "/comments", q, comment)
}

func (a *commentAPI) Update(ctx context.Context, id models.ID, comment models.Comment) (*models.Comment, error) {
	return call[*models.Comment](ctx, a.c, http.MethodPut, "/comments/"+seg(id), nil, comment)
}

func (a *commentAPI) Delete(ctx context.Context, id models.ID) error {
	return a.c.Do(ctx, http.MethodDelete, "/comments/"+seg(id), nil, nil, nil)
}
