package formatter

import (
	"strings"

	"github.com/alexanderramin/choreplan/internal/catalog"
	"github.com/alexanderramin/choreplan/internal/domain"
)

// FormatBank renders a task library grouped by zone.
func FormatBank(templates []domain.TaskTemplate) string {
	groups := catalog.ByZone(templates)
	if len(groups) == 0 {
		return Dim("The task library is empty.") + "\n"
	}

	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(ZoneBadge(g.Zone))
		b.WriteString("\n")

		rows := make([][]string, 0, len(g.Templates))
		for _, t := range g.Templates {
			rows = append(rows, []string{
				StyleDim.Render(t.ID),
				t.Text,
				EnergyIndicator(t.Energy),
				string(t.Frequency),
				StyleDim.Render(t.Why),
			})
		}
		b.WriteString(RenderTable([]string{"ID", "TASK", "ENERGY", "EVERY", "WHY"}, rows))
	}
	return b.String()
}
