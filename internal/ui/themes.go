package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette holds the colors of a theme.
type Palette struct {
	Prompt  lipgloss.TerminalColor
	Value   lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
}

// OrangePalette is the default palette, shared with the rest of the toolbox.
var OrangePalette = Palette{
	Prompt:  lipgloss.Color("#FF8C00"),
	Value:   lipgloss.Color("#9ece6a"),
	Error:   lipgloss.Color("#FF4444"),
	Warning: lipgloss.Color("#FFB347"),
}

// Theme renders text for one output stream.
type Theme struct {
	plain   bool
	prompt  lipgloss.Style
	value   lipgloss.Style
	errorS  lipgloss.Style
	warning lipgloss.Style
}

// NewTheme builds a theme for w. Colors are disabled when noColor is set,
// when NO_COLOR is present in the environment (https://no-color.org/), or
// when w is not a color-capable terminal.
func NewTheme(w io.Writer, noColor bool) Theme {
	r := lipgloss.NewRenderer(w)
	plain := noColor || r.ColorProfile() == termenv.Ascii
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		plain = true
	}
	return Theme{
		plain:   plain,
		prompt:  r.NewStyle().Bold(true).Foreground(OrangePalette.Prompt),
		value:   r.NewStyle().Foreground(OrangePalette.Value),
		errorS:  r.NewStyle().Bold(true).Foreground(OrangePalette.Error),
		warning: r.NewStyle().Foreground(OrangePalette.Warning),
	}
}

// PlainTheme returns a theme that never styles.
func PlainTheme() Theme {
	return Theme{plain: true}
}

// Plain reports whether the theme emits unstyled text.
func (t Theme) Plain() bool { return t.plain }

// Prompt styles a question shown to the user.
func (t Theme) Prompt(s string) string { return t.render(t.prompt, s) }

// Value styles a computed value.
func (t Theme) Value(s string) string { return t.render(t.value, s) }

// Error styles a diagnostic prefix.
func (t Theme) Error(s string) string { return t.render(t.errorS, s) }

// Warning styles a non-fatal notice.
func (t Theme) Warning(s string) string { return t.render(t.warning, s) }

func (t Theme) render(style lipgloss.Style, s string) string {
	if t.plain {
		return s
	}
	return style.Render(s)
}
