package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jiraclone/jiraclient/internal/client/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Width(14)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// renderTable writes rows under headers as a bordered table, or a short
// notice when there are no rows.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No results."))
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}

type field struct {
	key   string
	value string
}

// renderFields writes key/value pairs, skipping empty values.
func renderFields(w io.Writer, title string, fields []field) {
	fmt.Fprintln(w, titleStyle.Render(title))
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		fmt.Fprintln(w, keyStyle.Render(f.key)+f.value)
	}
}

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}

func userName(u *models.User) string {
	if u == nil {
		return "-"
	}
	return u.DisplayName()
}

func points(p *int) string {
	if p == nil {
		return ""
	}
	return fmt.Sprint(*p)
}

func taskRows(tasks []models.Task) [][]string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{t.ID.String(), t.Title, t.Status, t.Priority, userName(t.Assignee)})
	}
	return rows
}

var taskHeaders = []string{"ID", "TITLE", "STATUS", "PRIORITY", "ASSIGNEE"}

// oneLine flattens s for use in a table cell.
func oneLine(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > max {
		return string(r[:max-1]) + "…"
	}
	return s
}
