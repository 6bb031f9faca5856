package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dockyard/internal/dock"
)

// TextView is a scrollable text panel. It hosts panels whose config
// names no command, and it is the only stock view that collapses.
type TextView struct {
	id        string
	content   string
	viewport  viewport.Model
	collapsed bool
}

var _ View = (*TextView)(nil)
var _ dock.Collapsible = (*TextView)(nil)

// collapsedRailSize is the footprint a collapsed text panel keeps: the
// title strip plus a slim rail.
const collapsedRailSize = 3

// NewTextView creates a text view for the panel with the given id. The
// viewport starts zero-sized; the first panel size message shapes it.
func NewTextView(id, content string) *TextView {
	vp := viewport.New(0, 0)
	vp.SetContent(content)
	return &TextView{
		id:       id,
		content:  content,
		viewport: vp,
	}
}

// Init implements View.
func (t *TextView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (t *TextView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(PanelSizeMsg); ok {
		if msg.ID != t.id {
			return t, nil
		}
		t.viewport.Width = msg.Width
		t.viewport.Height = msg.Height
		return t, nil
	}

	var cmd tea.Cmd
	t.viewport, cmd = t.viewport.Update(msg)
	return t, cmd
}

// View implements View.
func (t *TextView) View() string {
	return t.viewport.View()
}

// SetContent replaces the panel text and resets scroll position.
func (t *TextView) SetContent(content string) {
	t.content = content
	t.viewport.SetContent(content)
	t.viewport.GotoTop()
}

// Collapsed implements dock.Collapsible.
func (t *TextView) Collapsed() bool { return t.collapsed }

// SetCollapsed implements dock.Collapsible.
func (t *TextView) SetCollapsed(v bool) { t.collapsed = v }

// CollapsedSize implements dock.Collapsible.
func (t *TextView) CollapsedSize() int { return collapsedRailSize }

// defaultPanelContent is shown by text panels with nothing else to
// display. It doubles as a cheat sheet for the stock bindings.
func defaultPanelContent() string {
	return strings.Join([]string{
		"",
		Styles.Title.Render("  dockyard"),
		"",
		"  SPC d l/r/b/c    dock focused panel",
		"  SPC f            float focused panel",
		"  SPC x            collapse / expand",
		"  SPC p            panel switcher",
		"  tab / shift+tab  cycle focus",
		"  enter            insert mode (shell panels)",
		"  esc              back to command mode",
		"  ?                all keybindings",
		"  q                quit",
		"",
		Styles.Muted.Render("  drag a title bar to float, drop near an edge to dock"),
	}, "\n")
}
