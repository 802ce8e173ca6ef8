package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/choreplan/internal/catalog"
	"github.com/alexanderramin/choreplan/internal/domain"
)

const progressWidth = 12

// FormatWeek renders all seven days of the week starting at key. Tasks are
// numbered by their position in the day, which is what REF arguments use.
func FormatWeek(key string, week domain.WeekBucket) string {
	start, err := domain.ParseWeekKey(key)
	if err != nil {
		return StyleRed.Render(err.Error())
	}

	var total domain.Progress
	for _, d := range week.Days {
		total = total.Add(domain.CountProgress(d))
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Week of %s", WeekRange(start))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Overall"), RenderProgress(total, progressWidth)))
	for i := range week.Days {
		b.WriteString("\n")
		b.WriteString(FormatDay(start.AddDate(0, 0, i), i, week.Days[i]))
	}
	return b.String()
}

// FormatDay renders one day: heading with theme and progress, then its
// essentials and focus tasks.
func FormatDay(date time.Time, day int, tasks []domain.TaskInstance) string {
	theme := catalog.DayThemes[day]
	heading := fmt.Sprintf("%s %s  %s",
		StyleBold.Render(strings.ToUpper(domain.DayLabels[day])),
		Dim(date.Format("Jan 2")),
		ZoneStyle(theme.Zone).Render(theme.Label),
	)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", heading, RenderProgress(domain.CountProgress(tasks), progressWidth)))
	if len(tasks) == 0 {
		b.WriteString("   " + Dim("Rest day · nothing planned") + "\n")
		return b.String()
	}
	writeGroup(&b, "Daily essentials", tasks, true)
	writeGroup(&b, "Focus", tasks, false)
	return b.String()
}

func writeGroup(b *strings.Builder, label string, tasks []domain.TaskInstance, essential bool) {
	var lines []string
	for i, t := range tasks {
		if t.IsEssential == essential {
			lines = append(lines, "   "+TaskLine(i+1, t))
		}
	}
	if len(lines) == 0 {
		return
	}
	b.WriteString("   " + StyleDim.Render(label) + "\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
}

// FormatBucket renders a flat month or year bucket.
func FormatBucket(title string, tasks []domain.TaskInstance) string {
	var b strings.Builder
	b.WriteString(Header(title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Progress"), RenderProgress(domain.CountProgress(tasks), progressWidth)))
	if len(tasks) == 0 {
		b.WriteString(Dim("No tasks yet. Use 'fill' for defaults or 'add' to plan your own.") + "\n")
		return b.String()
	}
	for i, t := range tasks {
		b.WriteString(TaskLine(i+1, t))
		b.WriteString("\n")
	}
	return b.String()
}

// MonthTitle names the month containing the week at key, e.g. "June 2025".
func MonthTitle(key string) string {
	t, err := time.Parse("2006-01", domain.MonthKey(key))
	if err != nil {
		return domain.MonthKey(key)
	}
	return t.Format("January 2006")
}

// YearTitle names the year containing the week at key.
func YearTitle(key string) string {
	return "Year " + domain.YearKey(key)
}

// WeekRange renders "Jun 2 – Jun 8, 2025" for the week starting at start.
func WeekRange(start time.Time) string {
	end := start.AddDate(0, 0, domain.DaysPerWeek-1)
	return fmt.Sprintf("%s – %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
}
