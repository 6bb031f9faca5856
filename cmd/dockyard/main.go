package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"dockyard/internal/config"
	"dockyard/internal/telemetry"
	"dockyard/internal/ui"
)

// version is injected via ldflags at build time.
var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		cfgPath string
		logFile string
		workDir string
		verbose bool
	)

	root := &cobra.Command{
		Use:          "dockyard",
		Short:        "Dockyard is a dockable panel workspace for the terminal",
		Long: `Dockyard hosts shell and text panels in a tiling workspace. Panels dock
to the window edges or float above the tiled zones, and every boundary
can be dragged. Layout comes from a TOML config file that reloads live.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkbench(cmd.Context(), cfgPath, logFile, workDir, verbose)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", config.DefaultPath(), "path to the config file")
	root.Flags().StringVar(&logFile, "log-file", "", "append logs to this file (default: discard)")
	root.Flags().StringVar(&workDir, "workdir", ".", "working directory for shell panels")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return root.ExecuteContext(ctx)
}

func runWorkbench(ctx context.Context, cfgPath, logFile, workDir string, verbose bool) error {
	// The alternate screen owns the terminal, so logs go to a file or
	// nowhere at all.
	var logWriter io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logWriter = f
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if verbose {
		level = charmlog.DebugLevel
	}
	logger := charmlog.NewWithOptions(logWriter, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	tel, err := telemetry.New(ctx)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		sctx, scancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer scancel()
		if err := tel.Shutdown(sctx); err != nil {
			logger.Warn("telemetry shutdown failed", "err", err)
		}
	}()

	workbench := ui.NewWorkbench(ui.WorkbenchOptions{
		Config:  cfg,
		Logger:  logger,
		Tracer:  tel.Tracer(),
		WorkDir: workDir,
	})
	program := tea.NewProgram(workbench.AsTeaModel(),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	// Hot reload is best effort. Without a watcher the config still
	// applies at startup.
	watcher, err := config.NewWatcher(cfgPath, cfg, logger)
	if err != nil {
		logger.Warn("config hot reload disabled", "err", err)
	} else {
		defer watcher.Close()
		watcher.OnChange(func(next config.Config) {
			if lvl, err := config.ParseLogLevel(next.LogLevel); err == nil && !verbose {
				logger.SetLevel(lvl)
			}
			program.Send(ui.ConfigReloadedMsg{Config: next})
		})
	}

	_, runErr := program.Run()
	workbench.Shutdown()
	if runErr != nil {
		if errors.Is(runErr, tea.ErrProgramKilled) {
			return context.Canceled
		}
		return fmt.Errorf("run workbench: %w", runErr)
	}
	return nil
}
