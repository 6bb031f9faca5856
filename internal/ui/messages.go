package ui

import (
	"dockyard/internal/config"
	"dockyard/internal/dock"
)

// PanelSizeMsg tells a panel's view its new content size in cells. Sent by
// the workbench whenever the engine assigns the panel a different rect.
type PanelSizeMsg struct {
	ID     string
	Width  int
	Height int
}

// ShellOutputMsg carries bytes read from a shell panel's PTY.
type ShellOutputMsg struct {
	ID   string
	Data []byte
}

// DismissModalMsg is sent when the user cancels a modal (Esc).
type DismissModalMsg struct{}

// ShowPanelSwitcherMsg opens the panel switcher modal (SPC p).
type ShowPanelSwitcherMsg struct{}

// SelectPanelMsg is sent when the user picks a panel from the switcher.
type SelectPanelMsg struct {
	ID string
}

// ToggleHelpMsg toggles the keybinding help modal (?).
type ToggleHelpMsg struct{}

// DockFocusedMsg docks the focused panel into a zone (SPC d + direction).
type DockFocusedMsg struct {
	Zone dock.Zone
}

// FloatFocusedMsg pops the focused panel out into the floating layer (SPC f).
type FloatFocusedMsg struct{}

// CollapseFocusedMsg toggles the focused panel's collapsed state (SPC x).
type CollapseFocusedMsg struct{}

// CycleFocusMsg moves focus to the next or previous panel (tab / shift+tab).
type CycleFocusMsg struct {
	Backward bool
}

// ConfigReloadedMsg delivers a config the file watcher picked up. The
// workbench applies the layout section; panel declarations only take
// effect on restart.
type ConfigReloadedMsg struct {
	Config config.Config
}
