package ui

import (
	"bytes"
	"context"
	"io"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dockyard/internal/geom"
	"dockyard/internal/pty"
)

// ShellView hosts a PTY-backed command inside a panel. Keys the
// workbench forwards in insert mode stream straight to the process;
// process output accumulates in a scrollback viewport.
type ShellView struct {
	id       string
	command  string
	workDir  string
	runner   pty.Runner
	ptmx     io.ReadWriteCloser
	content  *bytes.Buffer
	viewport viewport.Model
	outputCh chan []byte
}

var _ View = (*ShellView)(nil)
var _ RawInput = (*ShellView)(nil)

// Placeholder dimensions until the first panel size arrives.
const defaultShellCols = 80
const defaultShellRows = 24

// NewShellView creates a shell view for the panel with the given id.
// An empty command spawns an interactive shell.
func NewShellView(runner pty.Runner, id, command, workDir string) *ShellView {
	return &ShellView{
		id:       id,
		command:  command,
		workDir:  workDir,
		runner:   runner,
		content:  &bytes.Buffer{},
		viewport: viewport.New(defaultShellCols, defaultShellRows),
		outputCh: make(chan []byte, 64),
	}
}

// Init spawns the process and starts the PTY reader.
func (s *ShellView) Init() tea.Cmd {
	if s.runner == nil {
		return nil
	}
	ctx := context.Background()
	cmd := pty.ShellCommand(ctx, s.command, s.workDir)
	size := pty.Size{Rows: defaultShellRows, Cols: defaultShellCols}
	if s.viewport.Width > 0 && s.viewport.Height > 0 {
		// The panel was sized before the shell spawned
		size = pty.SizeForRect(geom.Rect{W: s.viewport.Width, H: s.viewport.Height})
	}
	ptmx, err := s.runner.Start(ctx, cmd, size)
	if err != nil {
		s.content.WriteString(Styles.Danger.Render("failed to start shell: "+err.Error()) + "\r\n")
		s.refreshViewport()
		return nil
	}
	s.ptmx = ptmx

	// Goroutine: read from PTY, send to channel
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				cp := make([]byte, n)
				copy(cp, buf[:n])
				select {
				case s.outputCh <- cp:
				default:
					// Channel full, drop (avoid blocking the reader)
				}
			}
			if err != nil {
				close(s.outputCh)
				return
			}
		}
	}()

	return s.waitForOutput()
}

// waitForOutput keeps exactly one listener on the output channel. Only
// the ShellOutputMsg handler re-arms it, so chunks arrive in order.
func (s *ShellView) waitForOutput() tea.Cmd {
	return func() tea.Msg {
		data, ok := <-s.outputCh
		if !ok {
			return nil
		}
		return ShellOutputMsg{ID: s.id, Data: data}
	}
}

// Update implements View.
func (s *ShellView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case ShellOutputMsg:
		if msg.ID != s.id {
			return s, nil
		}
		s.content.Write(msg.Data)
		s.refreshViewport()
		s.viewport.GotoBottom()
		return s, s.waitForOutput()
	case PanelSizeMsg:
		if msg.ID != s.id {
			return s, nil
		}
		s.viewport.Width = msg.Width
		s.viewport.Height = msg.Height
		if s.ptmx != nil {
			s.runner.Resize(s.ptmx, pty.SizeForRect(geom.Rect{W: msg.Width, H: msg.Height}))
		}
		s.refreshViewport()
		return s, nil
	case tea.KeyMsg:
		if s.ptmx != nil {
			if b := keyToPTYBytes(msg); len(b) > 0 {
				s.ptmx.Write(b)
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// View implements View. Chrome comes from the panel frame, so this is
// just the scrollback.
func (s *ShellView) View() string {
	return s.viewport.View()
}

// WantsRawInput marks the shell as a raw key consumer so the workbench
// offers insert mode while it has focus. A shell that failed to spawn
// takes no input.
func (s *ShellView) WantsRawInput() bool {
	return s.ptmx != nil
}

func (s *ShellView) refreshViewport() {
	s.viewport.SetContent(s.content.String())
}

// Close tears down the PTY, which also signals the child process.
func (s *ShellView) Close() error {
	if s.ptmx == nil {
		return nil
	}
	return s.ptmx.Close()
}

// keyToPTYBytes converts a Bubble Tea KeyMsg to bytes the PTY expects.
func keyToPTYBytes(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyEnter:
		return []byte{'\r'}
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		return []byte{'\t'}
	case tea.KeySpace:
		return []byte{' '}
	case tea.KeyUp:
		return []byte{0x1b, '[', 'A'}
	case tea.KeyDown:
		return []byte{0x1b, '[', 'B'}
	case tea.KeyRight:
		return []byte{0x1b, '[', 'C'}
	case tea.KeyLeft:
		return []byte{0x1b, '[', 'D'}
	case tea.KeyCtrlC:
		return []byte{0x03}
	case tea.KeyCtrlD:
		return []byte{0x04}
	case tea.KeyEsc:
		return []byte{0x1b}
	case tea.KeyRunes:
		return []byte(string(msg.Runes))
	default:
		// Try runes for unknown types
		if len(msg.Runes) > 0 {
			return []byte(string(msg.Runes))
		}
		return nil
	}
}
