package formatter

import (
	"fmt"
	"strings"

	"github.com/lvanderveer/tally/internal/domain"
)

// FormatProjectList renders the project catalog as a tree of projects and
// their sub-projects with codes.
func FormatProjectList(projects []*domain.Project) string {
	var b strings.Builder
	b.WriteString(Header("Projects"))
	b.WriteString("\n")

	if len(projects) == 0 {
		b.WriteString(Dim("No projects defined.") + "\n")
		return b.String()
	}

	for _, p := range projects {
		b.WriteString(fmt.Sprintf("%s %s\n", Bold(p.Name), Dim("("+p.Code+")")))
		for i, sp := range p.SubProjects {
			branch := "├─"
			if i == len(p.SubProjects)-1 {
				branch = "└─"
			}
			b.WriteString(fmt.Sprintf("  %s %s %s\n", Dim(branch), sp.Name, Dim("("+sp.Code+")")))
		}
	}
	return b.String()
}

// FormatUserList renders registered users with their roles.
func FormatUserList(users []*domain.User) string {
	headers := []string{"NAME", "EMAIL", "ROLE"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		role := string(u.Role)
		if u.CanReview() {
			role = StylePurple.Render(role)
		}
		rows = append(rows, []string{Bold(u.FullName), u.Email, role})
	}

	var b strings.Builder
	b.WriteString(Header("Users"))
	b.WriteString("\n")
	if len(users) == 0 {
		b.WriteString(Dim("No users registered.") + "\n")
		return b.String()
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
