// Package pty spawns the commands that live inside shell panels and keeps
// their terminal size in step with the panel rect.
package pty

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"

	"dockyard/internal/geom"
)

// Size is a terminal size in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// SizeForRect converts a panel content rect in cells to a terminal size.
// Degenerate rects clamp to 1x1 so the kernel never sees a zero winsize.
func SizeForRect(r geom.Rect) Size {
	return Size{Rows: clampDim(r.H), Cols: clampDim(r.W)}
}

func clampDim(v int) uint16 {
	if v < 1 {
		return 1
	}
	if v > 0xffff {
		return 0xffff
	}
	return uint16(v)
}

// ShellCommand builds the command a shell panel runs in dir. An empty
// command line opens the user's interactive shell; anything else goes
// through the shell so pipes and arguments behave as typed.
func ShellCommand(ctx context.Context, commandLine, dir string) *exec.Cmd {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "sh"
		if path, err := exec.LookPath("bash"); err == nil {
			shell = path
		}
	}
	var cmd *exec.Cmd
	if commandLine == "" {
		cmd = exec.CommandContext(ctx, shell)
	} else {
		cmd = exec.CommandContext(ctx, shell, "-c", commandLine)
	}
	cmd.Dir = dir
	if cmd.Dir == "" {
		cmd.Dir = "."
	}
	return cmd
}

// Runner spawns and resizes a PTY. Implementations can be swapped, for
// example with a fake that feeds scripted output in tests.
type Runner interface {
	Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
	Resize(rwc io.ReadWriteCloser, size Size) error
}

// CreackPTY implements Runner using github.com/creack/pty.
type CreackPTY struct{}

var _ Runner = (*CreackPTY)(nil)

// Start spawns cmd in a PTY with the given size. Lifetime is owned by the
// caller; closing the returned ReadWriteCloser tears the process down.
func (c *CreackPTY) Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	ws := &pty.Winsize{Rows: size.Rows, Cols: size.Cols}
	f, err := pty.StartWithSize(cmd, ws)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Resize changes the PTY to the given dimensions. The rwc must be the
// *os.File returned by Start; other types are a no-op.
func (c *CreackPTY) Resize(rwc io.ReadWriteCloser, size Size) error {
	f, ok := rwc.(*os.File)
	if !ok {
		return nil
	}
	return pty.Setsize(f, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}
