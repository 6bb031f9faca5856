package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"dockyard/internal/dock"
)

// PanelSwitcher is a modal for jumping focus to any registered panel.
type PanelSwitcher struct {
	list list.Model
}

type panelItem struct {
	id    string
	title string
	zone  string
}

func (p panelItem) FilterValue() string { return p.title }
func (p panelItem) Title() string       { return p.title + "  [" + p.zone + "]" }
func (p panelItem) Description() string { return p.zone }

// Ensure PanelSwitcher implements View.
var _ View = (*PanelSwitcher)(nil)

// NewPanelSwitcher creates a picker over the given panels.
func NewPanelSwitcher(panels []*dock.Panel) *PanelSwitcher {
	items := make([]list.Item, len(panels))
	for i, p := range panels {
		items[i] = panelItem{id: p.ID, title: p.Title, zone: p.Zone().String()}
	}
	delegate := NewCompactListDelegate()
	l := list.New(items, delegate, 40, 12)
	l.Title = "Switch panel"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	return &PanelSwitcher{list: l}
}

// Init implements View.
func (m *PanelSwitcher) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *PanelSwitcher) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			if sel := m.list.SelectedItem(); sel != nil {
				id := sel.(panelItem).id
				return m, func() tea.Msg { return SelectPanelMsg{ID: id} }
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *PanelSwitcher) View() string {
	help := "Enter: focus  Esc: cancel"
	return Styles.BoxCompact.Render(m.list.View() + "\n" + Styles.Hint.Render(help))
}
