package formatter

import (
	"charm.land/lipgloss/v2"
)

var (
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// palette applies colors only when enabled, so plain output stays free of
// escape sequences.
type palette struct {
	enabled bool
}

func (p palette) key(s string) string {
	if !p.enabled || s == "" {
		return s
	}
	return keyStyle.Render(s)
}

func (p palette) value(s string) string {
	if !p.enabled || s == "" {
		return s
	}
	return valueStyle.Render(s)
}

func (p palette) ok(s string) string {
	if !p.enabled {
		return s
	}
	return okStyle.Render(s)
}

func (p palette) err(s string) string {
	if !p.enabled {
		return s
	}
	return errStyle.Render(s)
}
