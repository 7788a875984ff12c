package api

import (
	"context"
	"net/http"

	"github.com/jiraclone/jiraclient/internal/client/models"
)

type ProjectAPI interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id models.ID) (*models.Project, error)
	Create(ctx context.Context, p models.Project) (*models.Project, error)
	Update(ctx context.Context, id models.ID, p models.Project) (*models.Project, error)
	Delete(ctx context.Context, id models.ID) error
	AddMember(ctx context.Context, projectID, userID models.ID) error
	RemoveMember(ctx context.Context, projectID, userID models.ID) error
	ChangeLead(ctx context.Context, projectID, leadID models.ID) (*models.Project, error)
	Members(ctx context.Context, projectID models.ID) ([]models.Member, error)
	UpdateMemberRole(ctx context.Context, projectID, userID models.ID, role string) (*models.Member, error)
}

type projectAPI struct{ c *Client }

func (a *projectAPI) List(ctx context.Context) ([]models.Project, error) {
	return call[[]models.Project](ctx, a.c, http.MethodGet, "/projects", nil, nil)
}

func (a *projectAPI) Get(ctx context.Context, id models.ID) (*models.Project, error) {
	return call[*models.Project](ctx, a.c, http.MethodGet, "/projects/"+seg(id), nil, nil)
}

func (a *projectAPI) Create(ctx context.Context, p models.Project) (*models.Project, error) {
	return call[*models.Project](ctx, a.c, http.MethodPost, "/projects", nil, p)
}

func (a *projectAPI) Update(ctx context.Context, id models.ID, p models.Project) (*models.Project, error) {
	return call[*models.Project](ctx, a.c, http.MethodPut, "/projects/"+seg(id), nil, p)
}

func (a *projectAPI) Delete(ctx context.Context, id models.ID) error {
	return a.c.Do(ctx, http.MethodDelete, "/projects/"+seg(id), nil, nil, nil)
}

func (a *projectAPI) AddMember(ctx context.Context, projectID, userID models.ID) error {
	return a.c.Do(ctx, http.MethodPost, "/projects/"+seg(projectID)+"/members/"+seg(userID), nil, nil, nil)
}

func (a *projectAPI) RemoveMember(ctx context.Context, projectID, userID models.ID) error {
	return a.c.Do(ctx, http.MethodDelete, "/projects/"+seg(projectID)+"/members/"+seg(userID), nil, nil, nil)
}

func (a *projectAPI) ChangeLead(ctx context.Context, projectID, leadID models.ID) (*models.Project, error) {
	body := struct {
		LeadID models.ID `json:"leadId"`
	}{LeadID: leadID}
	return call[*models.Project](ctx, a.c, http.MethodPut, "/projects/"+seg(projectID)+"/lead", nil, body)
}

func (a *projectAPI) Members(ctx context.Context, projectID models.ID) ([]models.Member, error) {
	return call[[]models.Member](ctx, a.c, http.MethodGet, "/projects/"+seg(projectID)+"/members", nil, nil)
}

func (a *projectAPI) UpdateMemberRole(ctx context.Context, projectID, userID models.ID, role string) (*models.Member, error) {
	body := struct {
		Role string `json:"role"`
	}{Role: role}
	return call[*models.Member](ctx, a.c, http.MethodPut, "/projects/"+seg(projectID)+"/members/"+seg(userID)+"/role", nil, body)
}
