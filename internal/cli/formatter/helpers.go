package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly distance from now, e.g. "3d ago".
func RelativeDateFrom(t time.Time, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		return t.Format("Jan 2, 2006")
	}
	days := int(math.Floor(diff.Hours() / 24))
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case days < 14:
		return fmt.Sprintf("%dd ago", days)
	case days < 60:
		return fmt.Sprintf("%dw ago", days/7)
	default:
		return fmt.Sprintf("%dmo ago", days/30)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Checkbox renders a task's completion box.
func Checkbox(done bool) string {
	if done {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}

// TaskLine renders one task: position, checkbox, text, zone and energy.
// pos is 1-based.
func TaskLine(pos int, t domain.TaskInstance) string {
	text := StyleFg.Render(t.Text)
	if t.Completed {
		text = StyleDone.Render(t.Text)
	}
	line := fmt.Sprintf("%s %s %s  %s %s",
		StyleDim.Render(fmt.Sprintf("%2d.", pos)),
		Checkbox(t.Completed),
		text,
		ZoneStyle(t.Zone).Render("●"),
		EnergyIndicator(t.Energy),
	)
	if t.Note != "" {
		line += "\n" + strings.Repeat(" ", 8) + StyleDim.Render("↳ "+t.Note)
	}
	return line
}
