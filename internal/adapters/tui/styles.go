// Package tui renders the human-facing output of gitprompt subcommands with
// lipgloss. The prompt itself never goes through this package.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/gitprompt/internal/config"
)

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Title lipgloss.Style
	Dim   lipgloss.Style
	Value lipgloss.Style
}

// NewStyles builds styles from the theme, falling back to the default
// colors for empty entries.
func NewStyles(theme *config.ThemeConfig) Styles {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		theme = &defaults
	}

	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(orDefault(theme.ColorTitle, defaults.ColorTitle))),
		Dim:   lipgloss.NewStyle().Foreground(lipgloss.Color(orDefault(theme.ColorDim, defaults.ColorDim))),
		Value: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(orDefault(theme.ColorValue, defaults.ColorValue))),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
