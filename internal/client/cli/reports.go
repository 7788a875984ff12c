package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jiraclone/jiraclient/internal/client/models"
)

func (a *App) listReports(ctx context.Context, args []string) error {
	reports, err := a.api.Reports.ListByProject(ctx, models.ID(args[0]))
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		when := ""
		if r.CreatedAt != nil {
			when = r.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{r.ID.String(), string(r.Type), r.Title, when})
	}
	renderTable(a.out, []string{"ID", "TYPE", "TITLE", "CREATED"}, rows)
	return nil
}

// generateReport reads a prompt and asks the backend for a report. The type
// defaults to CUSTOM.
func (a *App) generateReport(ctx context.Context, args []string) error {
	var typ models.ReportType
	if len(args) > 1 {
		typ = models.ReportType(strings.ToUpper(args[1]))
	}

	prompt, err := GetMultiline(a.reader, "Describe the report you want", a.out)
	if err != nil {
		return inputError(err)
	}
	if prompt == "" {
		return userErrorf("prompt is empty")
	}

	r, err := a.api.Reports.Generate(ctx, models.ID(args[0]), prompt, typ)
	if err != nil {
		return err
	}
	if r == nil {
		return nil
	}
	title := r.Title
	if title == "" {
		title = fmt.Sprintf("Report %s", r.ID)
	}
	fmt.Fprintln(a.out, titleStyle.Render(title))
	fmt.Fprintln(a.out, r.Content)
	return nil
}
