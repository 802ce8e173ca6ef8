package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleDone   = lipgloss.NewStyle().Foreground(ColorDim).Strikethrough(true)
)

var zoneColors = map[domain.Zone]lipgloss.Color{
	domain.ZoneKitchen:  ColorYellow,
	domain.ZoneLiving:   ColorGreen,
	domain.ZoneBathroom: ColorBlue,
	domain.ZoneBedroom:  ColorPurple,
	domain.ZoneDeep:     ColorAqua,
}

// ZoneStyle returns the style used for a zone's dot and label.
func ZoneStyle(z domain.Zone) lipgloss.Style {
	if c, ok := zoneColors[z]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return StyleDim
}

// ZoneBadge renders a colored dot followed by the zone name.
func ZoneBadge(z domain.Zone) string {
	return ZoneStyle(z).Render("● " + z.Name())
}

// EnergyIndicator renders energy as a three-step meter, e.g. "▮▮▯".
func EnergyIndicator(e domain.Energy) string {
	switch e {
	case domain.EnergyLow:
		return StyleGreen.Render("▮▯▯")
	case domain.EnergyMedium:
		return StyleYellow.Render("▮▮▯")
	case domain.EnergyHigh:
		return StyleRed.Render("▮▮▮")
	default:
		return StyleDim.Render("???")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
