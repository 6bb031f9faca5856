package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each panel on the workbench hosts one View with its own model and update.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// RawInput marks views that consume raw keystrokes, like terminals. When
// the focused view wants raw input the workbench switches to insert mode
// and streams keys to it instead of the keybind system.
type RawInput interface {
	WantsRawInput() bool
}
