package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewPlanner ViewID = iota
	ViewBank
	ViewForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// SharedState holds what every view needs, shared via pointer.
type SharedState struct {
	App *App

	// Day is the selected day slot in the weekly view. The bank view adds
	// picked templates to it.
	Day int

	Width  int
	Height int
}

// ContentHeight is the space left for the active view below the header
// and above the status bar.
func (s *SharedState) ContentHeight() int {
	return max(s.Height-5, 3)
}
