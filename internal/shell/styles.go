package shell

import "github.com/charmbracelet/lipgloss"

// Styles decorates interpreter output. The zero value renders plain text.
type Styles struct {
	Dir   lipgloss.Style
	Size  lipgloss.Style
	Error lipgloss.Style

	enabled bool
}

// PlainStyles returns styles that leave all text untouched.
func PlainStyles() Styles {
	return Styles{}
}

// NewStyles returns enabled styles for directory names, sizes and errors.
func NewStyles(dir, size, errStyle lipgloss.Style) Styles {
	return Styles{Dir: dir, Size: size, Error: errStyle, enabled: true}
}

// Enabled reports whether the styles add any decoration.
func (s Styles) Enabled() bool { return s.enabled }

func (s Styles) dir(text string) string    { return s.render(s.Dir, text) }
func (s Styles) size(text string) string   { return s.render(s.Size, text) }
func (s Styles) errMsg(text string) string { return s.render(s.Error, text) }

func (s Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}
