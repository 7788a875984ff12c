package cli

import (
	"context"

	"github.com/jiraclone/jiraclient/internal/client/models"
)

func (a *App) listSprints(ctx context.Context, args []string) error {
	sprints, err := a.api.Sprints.ListByProject(ctx, models.ID(args[0]))
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(sprints))
	for _, s := range sprints {
		rows = append(rows, []string{s.ID.String(), s.Name, string(s.Status), s.StartDate, s.EndDate})
	}
	renderTable(a.out, []string{"ID", "NAME", "STATUS", "START", "END"}, rows)
	return nil
}

func (a *App) startSprint(ctx context.Context, args []string) error {
	s, err := a.api.Sprints.Start(ctx, models.ID(args[0]))
	if err != nil {
		return err
	}
	if s == nil {
		return errEmptyResponse
	}
	success(a.out, "Sprint %s is %s", s.ID, s.Status)
	return nil
}

func (a *App) completeSprint(ctx context.Context, args []string) error {
	s, err := a.api.Sprints.Complete(ctx, models.ID(args[0]))
	if err != nil {
		return err
	}
	if s == nil {
		return errEmptyResponse
	}
	success(a.out, "Sprint %s is %s", s.ID, s.Status)
	return nil
}

func (a *App) listEpics(ctx context.Context, args []string) error {
	epics, err := a.api.Epics.ListByProject(ctx, models.ID(args[0]))
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(epics))
	for _, e := range epics {
		rows = append(rows, []string{e.ID.String(), e.Name, e.Status, oneLine(e.Description, 50)})
	}
	renderTable(a.out, []string{"ID", "NAME", "STATUS", "DESCRIPTION"}, rows)
	return nil
}

// listStories lists the stories of a project, or of one epic when a second
// argument is given.
func (a *App) listStories(ctx context.Context, args []string) error {
	var (
		stories []models.UserStory
		err     error
	)
	if len(args) > 1 {
		stories, err = a.api.UserStories.ListByEpic(ctx, models.ID(args[1]))
	} else {
		stories, err = a.api.UserStories.ListByProject(ctx, models.ID(args[0]))
	}
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(stories))
	for _, s := range stories {
		rows = append(rows, []string{s.ID.String(), s.Title, s.Status, s.Priority, points(s.StoryPoints), s.EpicID.String()})
	}
	renderTable(a.out, []string{"ID", "TITLE", "STATUS", "PRIORITY", "POINTS", "EPIC"}, rows)
	return nil
}
