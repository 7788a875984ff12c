package api

import (
	"context"
	"net/http"

	"github.com/jiraclone/jiraclient/internal/client/models"
)

type UserStoryAPI interface {
	ListByProject(ctx context.Context, projectID models.ID) ([]models.UserStory, error)
	ListByEpic(ctx context.Context, epicID models.ID) ([]models.UserStory, error)
	Get(ctx context.Context, id models.ID) (*models.UserStory, error)
	// Create files story under projectID and, when epicID is non-empty, under
	// that epic too.
	Create(ctx context.Context, story models.UserStory, projectID, epicID models.ID) (*models.UserStory, error)
	Update(ctx context.Context, id models.ID, story models.UserStory) (*models.UserStory, error)
	Delete(ctx context.Context, id models.ID) error
}

type userStoryAPI struct{ c *Client }

func (a *userStoryAPI) ListByProject(ctx context.Context, projectID models.ID) ([]models.UserStory, error) {
	return call[[]models.UserStory](ctx, a.c, http.MethodGet, "/user-stories/project/"+seg(projectID), nil, nil)
}

func (a *userStoryAPI) ListByEpic(ctx context.Context, epicID models.ID) ([]models.UserStory, error) {
	return call[[]models.UserStory](ctx, a.c, http.MethodGet, "/user-stories/epic/"+seg(epicID), nil, nil)
}

func (a *userStoryAPI) Get(ctx context.Context, id models.ID) (*models.UserStory, error) {
	return call[*models.UserStory](ctx, a.c, http.MethodGet, "/user-stories/"+seg(id), nil, nil)
}

func (a *userStoryAPI) Create(ctx context.Context, story models.UserStory, projectID, epicID models.ID) (*models.UserStory, error) {
	q := Query{}.With("projectId", projectID.String())
	if !epicID.IsZero() {
		q = q.With("epicId", epicID.String())
	}
	return call[*models.UserStory](ctx, a.c, http.MethodPost, "/user-stories", q, story)
}

func (a *userStoryAPI) Update(ctx context.Context, id models.ID, story models.UserStory) (*models.UserStory, error) {
	return call[*models.UserStory](ctx, a.c, http.MethodPut, "/user-stories/"+seg(id), nil, story)
}

func (a *userStoryAPI) Delete(ctx context.Context, id models.ID) error {
	return a.c.Do(ctx, http.MethodDelete, "/user-stories/"+seg(id), nil, nil, nil)
}
