package ui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"dockyard/internal/ui/textutil"
)

// HelpModal is a static sheet listing every registered binding.
type HelpModal struct {
	lines []string
}

// Ensure HelpModal implements View.
var _ View = (*HelpModal)(nil)

// NewHelpModal renders the registry's hints into an aligned two-column
// sheet, sorted by sequence.
func NewHelpModal(reg *KeybindRegistry) *HelpModal {
	hints := reg.Hints()
	seqs := make([]string, 0, len(hints))
	for seq := range hints {
		seqs = append(seqs, seq)
	}
	sort.Strings(seqs)

	keyWidth := 0
	for _, seq := range seqs {
		if w := textutil.VisualWidth(seq); w > keyWidth {
			keyWidth = w
		}
	}
	lines := make([]string, 0, len(seqs))
	for _, seq := range seqs {
		key := Styles.Selected.Render(textutil.PadRightVisual(seq, keyWidth))
		lines = append(lines, key+"  "+Styles.Normal.Render(hints[seq]))
	}
	return &HelpModal{lines: lines}
}

// Init implements View.
func (m *HelpModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *HelpModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "?", "q":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *HelpModal) View() string {
	content := Styles.Title.Render("Keybindings") + "\n\n"
	content += strings.Join(m.lines, "\n")
	content += "\n\n" + Styles.Hint.Render("Esc: close")
	return Styles.Box.Render(content)
}
