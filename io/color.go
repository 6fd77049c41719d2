package argio

import "github.com/fatih/color"

// Basic foreground colors, re-exported so callers need not import fatih/color.
const (
	Black   = color.FgBlack
	Red     = color.FgRed
	Green   = color.FgGreen
	Yellow  = color.FgYellow
	Blue    = color.FgBlue
	Magenta = color.FgMagenta
	Cyan    = color.FgCyan
	White   = color.FgWhite

	BrightBlack   = color.FgHiBlack // Gray
	BrightRed     = color.FgHiRed
	BrightGreen   = color.FgHiGreen
	BrightYellow  = color.FgHiYellow
	BrightBlue    = color.FgHiBlue
	BrightMagenta = color.FgHiMagenta
	BrightCyan    = color.FgHiCyan
	BrightWhite   = color.FgHiWhite
)

// Style is a set of color attributes applied through an IOManager's color policy.
type Style struct {
	attrs []color.Attribute
}

// NewStyle creates a style from the given attributes.
func NewStyle(attrs ...color.Attribute) *Style {
	return &Style{attrs: append([]color.Attribute(nil), attrs...)}
}

// Bold adds the bold attribute.
func (s *Style) Bold() *Style {
	s.attrs = append(s.attrs, color.Bold)
	return s
}

// Sprint returns a styled string if m supports color; otherwise it returns
// the text unchanged.
func (s *Style) Sprint(m *IOManager, text string) string {
	if len(s.attrs) == 0 {
		return text
	}
	c := color.New(s.attrs...)
	if m.SupportsColor() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

// Func binds the style to m, for use as a plain string decorator.
func (s *Style) Func(m *IOManager) func(string) string {
	return func(text string) string { return s.Sprint(m, text) }
}

// Theme holds the per-level styles used by Logger.
type Theme struct {
	Success, Warning, Error, Info, Debug *Style
}

// DefaultTheme returns the theme a new Logger starts with.
func DefaultTheme() Theme {
	return Theme{
		Success: NewStyle(BrightGreen),
		Warning: NewStyle(BrightYellow),
		Error:   NewStyle(BrightRed).Bold(),
		Info:    NewStyle(BrightCyan),
		Debug:   NewStyle(BrightMagenta),
	}
}
