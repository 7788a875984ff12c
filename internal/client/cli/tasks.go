package cli

import (
	"context"
	"slices"
	"strings"

	"github.com/jiraclone/jiraclient/internal/client/models"
)

var (
	taskStatuses = []string{
		models.TaskStatusTodo,
		models.TaskStatusInProgress,
		models.TaskStatusInReview,
		models.TaskStatusDone,
	}
	taskPriorities = []string{
		models.PriorityLowest,
		models.PriorityLow,
		models.PriorityMedium,
		models.PriorityHigh,
		models.PriorityHighest,
	}
)

// oneOf upper-cases v and checks it against allowed.
func oneOf(v string, allowed []string, what string) (string, error) {
	v = strings.ToUpper(v)
	if !slices.Contains(allowed, v) {
		return "", userErrorf("%s must be one of: %s", what, strings.Join(allowed, ", "))
	}
	return v, nil
}

func (a *App) listTasks(ctx context.Context, args []string) error {
	tasks, err := a.api.Tasks.ListByProject(ctx, models.ID(args[0]))
	if err != nil {
		return err
	}
	renderTable(a.out, taskHeaders, taskRows(tasks))
	return nil
}

func (a *App) listAssigned(ctx context.Context, _ []string) error {
	tasks, err := a.api.Tasks.Assigned(ctx)
	if err != nil {
		return err
	}
	renderTable(a.out, taskHeaders, taskRows(tasks))
	return nil
}

func (a *App) listSprintTasks(ctx context.Context, args []string) error {
	tasks, err := a.api.Tasks.ListBySprint(ctx, models.ID(args[0]))
	if err != nil {
		return err
	}
	renderTable(a.out, taskHeaders, taskRows(tasks))
	return nil
}

func (a *App) showTask(ctx context.Context, args []string) error {
	t, err := a.api.Tasks.Get(ctx, models.ID(args[0]))
	if err != nil {
		return err
	}
	if t == nil {
		return userErrorf("task %s not found", args[0])
	}
	renderFields(a.out, t.Title, []field{
		{"ID", t.ID.String()},
		{"Status", t.Status},
		{"Priority", t.Priority},
		{"Type", t.Type},
		{"Points", points(t.StoryPoints)},
		{"Due", t.DueDate},
		{"Assignee", userName(t.Assignee)},
		{"Reporter", userName(t.Reporter)},
		{"Project", t.ProjectID.String()},
		{"Sprint", t.SprintID.String()},
		{"Description", t.Description},
	})
	return nil
}

func (a *App) createTask(ctx context.Context, args []string) error {
	title, err := getSimpleText(a.reader, "Task title", a.out)
	if err != nil {
		return inputError(err)
	}
	if title == "" {
		return userErrorf("title is required")
	}
	desc, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		return inputError(err)
	}

	t, err := a.api.Tasks.Create(ctx, models.Task{
		Title:       title,
		Description: desc,
		Status:      models.TaskStatusTodo,
		Priority:    models.PriorityMedium,
	}, models.ID(args[0]))
	if err != nil {
		return err
	}
	if t == nil {
		return errEmptyResponse
	}
	success(a.out, "Created task %s", t.ID)
	return nil
}

func (a *App) setStatus(ctx context.Context, args []string) error {
	status, err := oneOf(args[1], taskStatuses, "status")
	if err != nil {
		return err
	}
	t, err := a.api.Tasks.UpdateStatus(ctx, models.ID(args[0]), status)
	if err != nil {
		return err
	}
	if t == nil {
		return errEmptyResponse
	}
	success(a.out, "Task %s is now %s", t.ID, t.Status)
	return nil
}

func (a *App) setPriority(ctx context.Context, args []string) error {
	priority, err := oneOf(args[1], taskPriorities, "priority")
	if err != nil {
		return err
	}
	t, err := a.api.Tasks.UpdatePriority(ctx, models.ID(args[0]), priority)
	if err != nil {
		return err
	}
	if t == nil {
		return errEmptyResponse
	}
	success(a.out, "Task %s priority is now %s", t.ID, t.Priority)
	return nil
}

func (a *App) assignTask(ctx context.Context, args []string) error {
	t, err := a.api.Tasks.Assign(ctx, models.ID(args[0]), models.ID(args[1]))
	if err != nil {
		return err
	}
	if t == nil {
		return errEmptyResponse
	}
	success(a.out, "Task %s assigned to %s", t.ID, userName(t.Assignee))
	return nil
}

func (a *App) listComments(ctx context.Context, args []string) error {
	comments, err := a.api.Comments.ListByTask(ctx, models.ID(args[0]))
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(comments))
	for _, c := range comments {
		when := ""
		if c.CreatedAt != nil {
			when = c.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{c.ID.String(), userName(c.Author), when, oneLine(c.Content, 60)})
	}
	renderTable(a.out, []string{"ID", "AUTHOR", "WHEN", "COMMENT"}, rows)
	return nil
}

func (a *App) addComment(ctx context.Context, args []string) error {
	content, err := GetMultiline(a.reader, "Comment", a.out)
	if err != nil {
		return inputError(err)
	}
	if content == "" {
		return userErrorf("comment is empty")
	}
	c, err := a.api.Comments.Create(ctx, models.Comment{Content: content}, models.ID(args[0]))
	if err != nil {
		return err
	}
	if c == nil {
		return errEmptyResponse
	}
	if c == nil {
		return errEmptyResponse
	}
	success(a.out, "Added comment %s", c.ID)
	return nil
}
