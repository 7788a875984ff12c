package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jiraclone/jiraclient/internal/client/models"
)

func (a *App) listProjects(ctx context.Context, _ []string) error {
	projects, err := a.api.Projects.List(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{p.ID.String(), p.Key, p.Name, userName(p.Lead)})
	}
	renderTable(a.out, []string{"ID", "KEY", "NAME", "LEAD"}, rows)
	return nil
}

func (a *App) showProject(ctx context.Context, args []string) error {
	p, err := a.api.Projects.Get(ctx, models.ID(args[0]))
	if err != nil {
		return err
	}
	if p == nil {
		return userErrorf("project %s not found", args[0])
	}
	renderFields(a.out, p.Name, []field{
		{"ID", p.ID.String()},
		{"Key", p.Key},
		{"Lead", userName(p.Lead)},
		{"Members", fmt.Sprint(len(p.Members))},
		{"Description", p.Description},
	})
	return nil
}

func (a *App) createProject(ctx context.Context, _ []string) error {
	name, err := getSimpleText(a.reader, "Project name", a.out)
	if err != nil {
		return inputError(err)
	}
	key, err := getSimpleText(a.reader, "Project key", a.out)
	if err != nil {
		return inputError(err)
	}
	if name == "" || key == "" {
		return userErrorf("name and key are required")
	}
	desc, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		return inputError(err)
	}

	p, err := a.api.Projects.Create(ctx, models.Project{
		Name:        name,
		Key:         strings.ToUpper(key),
		Description: desc,
	})
	if err != nil {
		return err
	}
	if p == nil {
		return errEmptyResponse
	}
	success(a.out, "Created project %s (%s)", p.ID, p.Key)
	return nil
}

func (a *App) listMembers(ctx context.Context, args []string) error {
	members, err := a.api.Projects.Members(ctx, models.ID(args[0]))
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		name := m.FullName
		if name == "" {
			name = m.Username
		}
		rows = append(rows, []string{m.ID.String(), name, m.Email, m.Role})
	}
	renderTable(a.out, []string{"ID", "NAME", "EMAIL", "ROLE"}, rows)
	return nil
}

func (a *App) listUsers(ctx context.Context, _ []string) error {
	users, err := a.api.Users.List(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.ID.String(), u.Username, u.Email, u.FullName, u.Role})
	}
	renderTable(a.out, []string{"ID", "USERNAME", "EMAIL", "NAME", "ROLE"}, rows)
	return nil
}
