package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/choreplan/internal/catalog"
	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/charmbracelet/glamour"
)

const printFooter = "_A clean home is a happy home. One small task at a time._"

// PrintableWeek renders the week at key as a markdown checklist suitable for
// printing: one section per day with its theme, essentials, focus tasks and
// space for notes.
func PrintableWeek(key string, week domain.WeekBucket) (string, error) {
	start, err := domain.ParseWeekKey(key)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# Weekly Cleaning Plan\n\n")
	fmt.Fprintf(&b, "%s – %s\n", start.Format("January 2"), start.AddDate(0, 0, domain.DaysPerWeek-1).Format("January 2, 2006"))

	for i, tasks := range week.Days {
		date := start.AddDate(0, 0, i)
		fmt.Fprintf(&b, "\n## %s %d · %s\n\n", date.Format("Monday"), date.Day(), catalog.DayThemes[i].Label)

		if len(tasks) == 0 {
			b.WriteString("Rest day\n")
		}
		essentials, focus := domain.SplitEssentials(tasks)
		writeChecklist(&b, "Daily Essentials", essentials)
		writeChecklist(&b, "Focus Tasks", focus)
		b.WriteString("\nNotes: ______________________________\n")
	}

	b.WriteString("\n---\n\n")
	b.WriteString(printFooter)
	b.WriteString("\n")
	return b.String(), nil
}

func writeChecklist(b *strings.Builder, label string, tasks []domain.TaskInstance) {
	if len(tasks) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s**\n\n", label)
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(b, "- [%s] %s _(%s)_\n", mark, t.Text, t.Zone.Name())
	}
	b.WriteString("\n")
}

// RenderMarkdown renders markdown for the terminal with glamour's dark
// style, wrapped at width. On renderer failure the markdown is returned as is.
func RenderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
