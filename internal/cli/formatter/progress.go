package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/choreplan/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders completion like [████░░░░] 3/7. The bar is green
// once everything is done, yellow past halfway, and dim below.
func RenderProgress(p domain.Progress, width int) string {
	if width < 2 {
		width = 2
	}
	filled := min(int(p.Ratio()*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleDim
	switch {
	case p.Done():
		style = StyleGreen
	case p.Ratio() >= 0.5:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), p.Completed, p.Total)
}
