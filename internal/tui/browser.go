package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// Browser is a full-screen navigator over a session. Every change it makes
// goes through the vfsh.Session API, so it sees the same tree the
// interpreter does.
type Browser struct {
	session vfsh.Session
	keys    KeyMap
	entries []vfsh.Entry
	cursor  int
	input   textinput.Model
	naming  bool
	status  string
	failed  bool
	quit    bool
}

// NewBrowser creates a browser positioned at the session's current directory.
func NewBrowser(session vfsh.Session) Browser {
	ti := textinput.New()
	ti.Placeholder = "folder name"
	ti.CharLimit = 256
	ti.Width = 40

	b := Browser{
		session: session,
		keys:    DefaultKeyMap(),
		input:   ti,
	}
	b.refresh()
	return b
}

// Init implements tea.Model.
func (b Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}
	if b.naming {
		return b.updateNaming(keyMsg)
	}

	b.status, b.failed = "", false
	switch {
	case key.Matches(keyMsg, b.keys.Up):
		if b.cursor > 0 {
			b.cursor--
		}
	case key.Matches(keyMsg, b.keys.Down):
		if b.cursor < len(b.entries)-1 {
			b.cursor++
		}
	case key.Matches(keyMsg, b.keys.Enter):
		b.open()
	case key.Matches(keyMsg, b.keys.Back):
		b.changeDirectory(vfsh.ParentToken)
	case key.Matches(keyMsg, b.keys.Delete):
		b.deleteSelected()
	case key.Matches(keyMsg, b.keys.NewFolder):
		b.naming = true
		b.input.Reset()
		return b, b.input.Focus()
	case key.Matches(keyMsg, b.keys.Quit):
		b.quit = true
		return b, tea.Quit
	}
	return b, nil
}

func (b Browser) updateNaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		b.quit = true
		return b, tea.Quit
	case key.Matches(msg, b.keys.Cancel):
		b.naming = false
		b.input.Blur()
		return b, nil
	case key.Matches(msg, b.keys.Confirm):
		name := strings.TrimSpace(b.input.Value())
		if err := b.session.CreateFolder(name); err != nil {
			b.setError(err)
			return b, nil
		}
		b.naming = false
		b.input.Blur()
		b.refresh()
		b.selectEntry(name, true)
		b.status = fmt.Sprintf("created %s%s", name, vfsh.DirSuffix)
		return b, nil
	}

	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

func (b *Browser) open() {
	entry, ok := b.Selected()
	if !ok || !entry.IsDir {
		return
	}
	b.changeDirectory(entry.Name)
}

func (b *Browser) changeDirectory(token string) {
	if err := b.session.ChangeDirectory(token); err != nil {
		b.setError(err)
		return
	}
	b.refresh()
	b.cursor = 0
}

func (b *Browser) deleteSelected() {
	entry, ok := b.Selected()
	if !ok {
		return
	}
	if entry.IsDir {
		b.session.DeleteFolder(entry.Name)
	} else {
		b.session.DeleteFile(entry.Name)
	}
	b.refresh()
	if b.cursor >= len(b.entries) && b.cursor > 0 {
		b.cursor = len(b.entries) - 1
	}
	b.status = "deleted " + entry.Name
}

func (b *Browser) setError(err error) {
	b.failed = true
	switch {
	case errors.Is(err, vfsh.ErrDirectoryNotFound):
		b.status = "Directory does not exist"
	case errors.Is(err, vfsh.ErrInvalidName):
		b.status = "a folder needs a name"
	default:
		b.status = err.Error()
	}
}

// refresh reloads the listing: folders first, then files.
func (b *Browser) refresh() {
	listing := b.session.List()
	b.entries = make([]vfsh.Entry, 0, listing.Len())
	b.entries = append(b.entries, listing.Dirs...)
	b.entries = append(b.entries, listing.Files...)
}

func (b *Browser) selectEntry(name string, isDir bool) {
	for i, e := range b.entries {
		if e.Name == name && e.IsDir == isDir {
			b.cursor = i
			return
		}
	}
}

// Selected returns the entry under the cursor.
func (b Browser) Selected() (vfsh.Entry, bool) {
	if b.cursor < 0 || b.cursor >= len(b.entries) {
		return vfsh.Entry{}, false
	}
	return b.entries[b.cursor], true
}

// Entries returns the rows currently displayed.
func (b Browser) Entries() []vfsh.Entry {
	return b.entries
}

// Naming reports whether the new-folder prompt is open.
func (b Browser) Naming() bool {
	return b.naming
}

// Status returns the message shown under the listing.
func (b Browser) Status() string {
	return b.status
}

// Quitting returns true once the user asked to leave.
func (b Browser) Quitting() bool {
	return b.quit
}

// View implements tea.Model.
func (b Browser) View() string {
	if b.quit {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(b.session.Path()))
	sb.WriteString("\n")
	sb.WriteString(SubtitleStyle.Render("Size: " + strconv.FormatInt(b.session.TotalSize(), 10)))
	sb.WriteString("\n")

	if len(b.entries) == 0 {
		sb.WriteString(UnselectedStyle.Render("  (empty)"))
		sb.WriteString("\n")
	}
	for i, e := range b.entries {
		cursor, style := "  ", UnselectedStyle
		if i == b.cursor {
			cursor, style = SymbolCursor+" ", SelectedStyle
		}
		symbol, name := SymbolFile, e.Name
		if e.IsDir {
			symbol, name = SymbolFolder, e.Name+vfsh.DirSuffix
		}
		sb.WriteString(cursor)
		sb.WriteString(style.Render(symbol + " " + name))
		sb.WriteString(" ")
		sb.WriteString(SizeStyle.Render(strconv.FormatInt(e.Size, 10)))
		sb.WriteString("\n")
	}

	if b.naming {
		sb.WriteString("\nNew folder: ")
		sb.WriteString(b.input.View())
		sb.WriteString("\n")
	}
	if b.status != "" {
		style := UnselectedStyle
		if b.failed {
			style = ErrorStyle
		}
		sb.WriteString("\n")
		sb.WriteString(style.Render(b.status))
		sb.WriteString("\n")
	}

	help := b.keys.HelpText()
	if b.naming {
		help = b.keys.InputHelpText()
	}
	sb.WriteString(HelpStyle.Render(help))
	return sb.String()
}

// RunBrowser runs the browser full screen until the user quits or ctx is done.
func RunBrowser(ctx context.Context, session vfsh.Session) error {
	p := tea.NewProgram(NewBrowser(session), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
