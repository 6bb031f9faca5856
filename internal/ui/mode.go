package ui

// Mode is the workbench input mode. Command mode feeds keys to the keybind
// system; insert mode streams them to the focused terminal panel.
type Mode int

const (
	ModeCommand Mode = iota
	ModeInsert
)

func (m Mode) String() string {
	switch m {
	case ModeCommand:
		return "Command"
	case ModeInsert:
		return "Insert"
	default:
		return "Unknown"
	}
}
