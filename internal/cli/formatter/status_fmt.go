package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/alexanderramin/choreplan/internal/storage"
)

// StatusInput is what the status command reports.
type StatusInput struct {
	Storage     storage.Description
	ConfigFile  string
	CatalogFile string
	State       domain.PlannerState
	Now         time.Time
}

// FormatStatus renders storage details and a summary of the stored plan.
func FormatStatus(in StatusInput) string {
	var b strings.Builder
	b.WriteString(Header("Storage"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Dim("Backend: "), in.Storage.Backend)
	fmt.Fprintf(&b, "%s %s\n", Dim("Location:"), in.Storage.Location)
	fmt.Fprintf(&b, "%s %s\n", Dim("Config:  "), orNone(in.ConfigFile))
	fmt.Fprintf(&b, "%s %s\n", Dim("Catalog: "), orBuiltIn(in.CatalogFile))

	if len(in.Storage.Slots) > 0 {
		b.WriteString("\n")
		rows := make([][]string, 0, len(in.Storage.Slots))
		for _, s := range in.Storage.Slots {
			name := s.Name
			if s.Current {
				name = StyleGreen.Render("● " + s.Name)
			} else {
				name = "  " + name
			}
			rev := "-"
			if s.Revision > 0 {
				rev = fmt.Sprintf("%d", s.Revision)
			}
			updated := "-"
			if !s.UpdatedAt.IsZero() {
				updated = RelativeDateFrom(s.UpdatedAt, in.Now)
			}
			rows = append(rows, []string{name, rev, updated})
		}
		b.WriteString(RenderTable([]string{"SLOT", "REVISION", "UPDATED"}, rows))
	} else {
		b.WriteString(Dim("Nothing saved yet.") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(Header("Plan"))
	b.WriteString("\n")
	s := in.State
	var weekTasks domain.Progress
	for _, w := range s.WeekData {
		for _, d := range w.Days {
			weekTasks = weekTasks.Add(domain.CountProgress(d))
		}
	}
	fmt.Fprintf(&b, "%s %s (%s view)\n", Dim("Current week:"), s.CurrentWeekStart, s.ViewMode)
	fmt.Fprintf(&b, "%s %d weeks, %d/%d tasks done\n", Dim("Weeks:       "), len(s.WeekData), weekTasks.Completed, weekTasks.Total)
	fmt.Fprintf(&b, "%s %d months, %d years\n", Dim("Buckets:     "), len(s.MonthlyData), len(s.YearlyData))
	fmt.Fprintf(&b, "%s %d templates\n", Dim("Library:     "), len(s.TaskBank))
	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return Dim("(none)")
	}
	return s
}

func orBuiltIn(s string) string {
	if s == "" {
		return Dim("(built-in)")
	}
	return s
}
