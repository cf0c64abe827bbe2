package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen = lipgloss.Color("#6BCB77")
	colorRed   = lipgloss.Color("#E74C3C")
	colorAmber = lipgloss.Color("#F0AD4E")
	colorBlue  = lipgloss.Color("#5B9BD5")
	colorCyan  = lipgloss.Color("#1ABC9C")
	colorDim   = lipgloss.Color("#7F8C8D")

	headerStyle  = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(colorGreen)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed)
	warningStyle = lipgloss.NewStyle().Foreground(colorAmber)
	pathStyle    = lipgloss.NewStyle().Foreground(colorBlue)
	extStyle     = lipgloss.NewStyle().Foreground(colorCyan)
	numberStyle  = lipgloss.NewStyle().Foreground(colorAmber)
	dimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// Colorizer styles text for terminal output when colors are enabled.
type Colorizer struct {
	enabled bool
}

// NewColorizer creates a new Colorizer.
func NewColorizer(enabled bool) *Colorizer {
	return &Colorizer{enabled: enabled}
}

func (c *Colorizer) apply(style lipgloss.Style, text string) string {
	if !c.enabled {
		return text
	}
	return style.Render(text)
}

// Header formats text as a header.
func (c *Colorizer) Header(text string) string {
	return c.apply(headerStyle, text)
}

// Ext formats an extension name.
func (c *Colorizer) Ext(text string) string {
	return c.apply(extStyle, text)
}

// Path formats a file path.
func (c *Colorizer) Path(text string) string {
	return c.apply(pathStyle, text)
}

// Success formats success text.
func (c *Colorizer) Success(text string) string {
	return c.apply(successStyle, text)
}

// Error formats error text.
func (c *Colorizer) Error(text string) string {
	return c.apply(errorStyle, text)
}

// Warning formats warning text.
func (c *Colorizer) Warning(text string) string {
	return c.apply(warningStyle, text)
}

// Dim formats secondary text.
func (c *Colorizer) Dim(text string) string {
	return c.apply(dimStyle, text)
}

// Number formats numbers and stats.
func (c *Colorizer) Number(text string) string {
	return c.apply(numberStyle, text)
}

// StatusOK formats an OK status indicator.
func (c *Colorizer) StatusOK() string {
	return c.apply(successStyle, "[ok]")
}

// StatusFail formats a fail status indicator.
func (c *Colorizer) StatusFail() string {
	return c.apply(errorStyle, "[!!]")
}

// StatusSkip formats a skip status indicator.
func (c *Colorizer) StatusSkip() string {
	return c.apply(dimStyle, "[--]")
}

// State formats an extension drift state.
func (c *Colorizer) State(state ExtState) string {
	switch state {
	case ExtOK:
		return c.apply(successStyle, string(state))
	case ExtDrift:
		return c.apply(warningStyle, string(state))
	case ExtError:
		return c.apply(errorStyle, string(state))
	default:
		return c.apply(dimStyle, string(state))
	}
}

// DiffAdd formats added lines in a diff.
func (c *Colorizer) DiffAdd(text string) string {
	return c.apply(successStyle, text)
}

// DiffRemove formats removed lines in a diff.
func (c *Colorizer) DiffRemove(text string) string {
	return c.apply(errorStyle, text)
}

// DiffHeader formats diff headers.
func (c *Colorizer) DiffHeader(text string) string {
	return c.apply(extStyle, text)
}
