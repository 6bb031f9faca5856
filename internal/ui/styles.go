package ui

import (
	"sync"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for warnings, errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - splitters, inactive chrome
	ColorWarning   = "208" // Orange - insert mode, cautions
)

// styleSet holds the shared style definitions used across views and modals.
type styleSet struct {
	Title lipgloss.Style // Bold accent color - for main titles

	Box        lipgloss.Style // Standard box with rounded border (highlight border)
	BoxCompact lipgloss.Style // Compact box with less padding (for lists)

	Selected lipgloss.Style // Highlighted/selected items (bold highlight color)
	Muted    lipgloss.Style // Dimmed text (muted color)
	Normal   lipgloss.Style // Normal text (text color)
	Hint     lipgloss.Style // Help/hint text (muted color)
	Status   lipgloss.Style // Status indicators (accent color)
	Splitter lipgloss.Style // Splitter bars between panels (dim color)
	Danger   lipgloss.Style // Error text (danger color)
	Insert   lipgloss.Style // Insert mode tag (warning color)
	Empty    lipgloss.Style // Empty state text (muted, italic)
}

// Styles is populated once by initStyles. The zero value renders unstyled
// text, so forgetting the init degrades colors rather than crashing.
var (
	Styles     styleSet
	stylesOnce sync.Once
)

// initStyles builds the style table on first call. NewWorkbench invokes it
// so styles are ready before any view renders; lipgloss resolves the color
// profile at build time, which is why this is not a package init.
func initStyles() {
	stylesOnce.Do(func() {
		Styles = buildStyles()
	})
}

// ResetStyles restores the uninitialized state so the next initStyles
// rebuilds under the current terminal profile. Primarily useful for testing.
func ResetStyles() {
	stylesOnce = sync.Once{}
	Styles = styleSet{}
}

func buildStyles() styleSet {
	return styleSet{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccent)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorHighlight)).
			Padding(1, 2).
			Margin(1),
		BoxCompact: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorHighlight)).
			Padding(0, 1).
			Margin(1),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHighlight)).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorText)),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent)),
		Splitter: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim)),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger)),
		Insert: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Bold(true),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)).
			Italic(true),
	}
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
// This factory standardizes list delegate configuration across the codebase.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}
