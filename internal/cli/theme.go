package cli

import (
	"errors"

	"github.com/alexanderramin/choreplan/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// huhTheme styles forms with the formatter palette.
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	fg := lipgloss.NewStyle().Foreground(formatter.ColorFg)
	dim := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	accent := lipgloss.NewStyle().Foreground(formatter.ColorHeader)

	t.Focused.Title = accent.Bold(true)
	t.Focused.Description = dim
	t.Focused.SelectSelector = accent
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = fg
	t.Focused.FocusedButton = fg.Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = dim.Padding(0, 1)
	t.Focused.TextInput.Cursor = accent
	t.Focused.TextInput.Prompt = accent
	t.Focused.TextInput.Text = fg
	t.Focused.TextInput.Placeholder = dim
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = dim
	t.Blurred.SelectSelector = dim
	t.Blurred.SelectedOption = dim
	t.Blurred.UnselectedOption = dim
	t.Blurred.TextInput.Prompt = dim
	t.Blurred.TextInput.Text = dim

	return t
}

// confirmPrompt runs a standalone yes/no form on the terminal. Aborting
// with ctrl+c or esc counts as "no".
func confirmPrompt(title, description string) (bool, error) {
	var ok bool
	err := huh.NewForm(huh.NewGroup(confirmField(title, description, &ok))).
		WithTheme(huhTheme()).
		WithShowHelp(false).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}

func confirmField(title, description string, value *bool) *huh.Confirm {
	return huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(value)
}
