package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type command struct {
	usage   string
	summary string
	minArgs int
	run     func(a *App, ctx context.Context, args []string) error
}

// commands are the data commands. All of them need a session.
var commands = map[string]command{
	"projects":     {usage: "projects", summary: "list projects", run: (*App).listProjects},
	"project":      {usage: "project <id>", summary: "show a project", minArgs: 1, run: (*App).showProject},
	"newproject":   {usage: "newproject", summary: "create a project", run: (*App).createProject},
	"members":      {usage: "members <projectId>", summary: "list project members", minArgs: 1, run: (*App).listMembers},
	"tasks":        {usage: "tasks <projectId>", summary: "list tasks of a project", minArgs: 1, run: (*App).listTasks},
	"mytasks":      {usage: "mytasks", summary: "list tasks assigned to you", run: (*App).listAssigned},
	"sprint-tasks": {usage: "sprint-tasks <sprintId>", summary: "list tasks of a sprint", minArgs: 1, run: (*App).listSprintTasks},
	"task":         {usage: "task <id>", summary: "show a task", minArgs: 1, run: (*App).showTask},
	"newtask":      {usage: "newtask <projectId>", summary: "create a task", minArgs: 1, run: (*App).createTask},
	"status":       {usage: "status <taskId> <status>", summary: "move a task", minArgs: 2, run: (*App).setStatus},
	"priority":     {usage: "priority <taskId> <priority>", summary: "change task priority", minArgs: 2, run: (*App).setPriority},
	"assign":       {usage: "assign <taskId> <userId>", summary: "assign a task", minArgs: 2, run: (*App).assignTask},
	"sprints":      {usage: "sprints <projectId>", summary: "list sprints", minArgs: 1, run: (*App).listSprints},
	"start":        {usage: "start <sprintId>", summary: "start a sprint", minArgs: 1, run: (*App).startSprint},
	"complete":     {usage: "complete <sprintId>", summary: "complete a sprint", minArgs: 1, run: (*App).completeSprint},
	"epics":        {usage: "epics <projectId>", summary: "list epics", minArgs: 1, run: (*App).listEpics},
	"stories":      {usage: "stories <projectId> [epicId]", summary: "list user stories", minArgs: 1, run: (*App).listStories},
	"comments":     {usage: "comments <taskId>", summary: "list comments on a task", minArgs: 1, run: (*App).listComments},
	"comment":      {usage: "comment <taskId>", summary: "comment on a task", minArgs: 1, run: (*App).addComment},
	"reports":      {usage: "reports <projectId>", summary: "list reports", minArgs: 1, run: (*App).listReports},
	"report":       {usage: "report <projectId> [type]", summary: "generate a report from a prompt", minArgs: 1, run: (*App).generateReport},
	"users":        {usage: "users", summary: "list users", run: (*App).listUsers},
}

func (a *App) Exec(ctx context.Context, name string, args []string) (bool, error) {
	cmd, ok := commands[name]
	if !ok {
		return false, nil
	}
	if !a.isLoggedIn() {
		return true, errLoginRequired
	}
	if len(args) < cmd.minArgs {
		return true, usageError(cmd.usage)
	}

	err := cmd.run(a, ctx, args)
	if err != nil {
		a.log.Debug(ctx, "command failed", "command", name, "error", err)
	}
	return true, err
}

func helpText(loggedIn bool) string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	if !loggedIn {
		b.WriteString("  register, login, help, exit\n")
		return b.String()
	}

	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		c := commands[n]
		fmt.Fprintf(&b, "  %-30s %s\n", c.usage, c.summary)
	}
	b.WriteString("  whoami, logout, help, exit\n")
	return b.String()
}
