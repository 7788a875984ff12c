package api

import (
	"context"
	"net/http"

	"github.com/jiraclone/jiraclient/internal/client/models"
)

type ReportAPI interface {
	ListByProject(ctx context.Context, projectID models.ID) ([]models.Report, error)
	Get(ctx context.Context, reportID models.ID) (*models.Report, error)
	// Generate asks the backend for a report on projectID driven by a free
	// text prompt. An empty typ means models.ReportCustom.
	Generate(ctx context.Context, projectID models.ID, prompt string, typ models.ReportType) (*models.Report, error)
	Delete(ctx context.Context, reportID models.ID) error
}

type reportAPI struct{ c *Client }

func (a *reportAPI) ListByProject(ctx context.Context, projectID models.ID) ([]models.Report, error) {
	return call[[]models.Report](ctx, a.c, http.MethodGet, "/reports/project/"+seg(projectID), nil, nil)
}

func (a *reportAPI) Get(ctx context.Context, reportID models.ID) (*models.Report, error) {
	return call[*models.Report](ctx, a.c, http.MethodGet, "/reports/"+seg(reportID), nil, nil)
}

func (a *reportAPI) Generate(ctx context.Context, projectID models.ID, prompt string, typ models.ReportType) (*models.Report, error) {
	if typ == "" {
		typ = models.ReportCustom
	}
	body := models.GenerateReportRequest{ProjectID: projectID, Prompt: prompt, Type: typ}
	return call[*models.Report](ctx, a.c, http.MethodPost, "/reports/generate", nil, body)
}

func (a *reportAPI) Delete(ctx context.Context, reportID models.ID) error {
	return a.c.Do(ctx, http.MethodDelete, "/reports/"+seg(reportID), nil, nil, nil)
}
