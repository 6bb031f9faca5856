package ui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	oteltrace "go.opentelemetry.io/otel/trace"

	"dockyard/internal/config"
	"dockyard/internal/dock"
	"dockyard/internal/geom"
	"dockyard/internal/pty"
	"dockyard/internal/ui/textutil"
)

// Workbench is the root model. It owns the layout engine, the view hosted
// by each panel, and the command/insert input routing. The engine decides
// every rectangle; the workbench paints them and feeds events back in.
type Workbench struct {
	engine  *dock.Engine
	views   map[string]View
	keys    *KeyHandler
	focus   *FocusManager
	modal   View
	mode    Mode
	runner  pty.Runner
	workDir string
	log     *log.Logger

	width  int
	height int

	// lastSizes dedupes panel size notifications between layout passes.
	lastSizes   map[string]geom.Rect
	layoutDirty bool
	layoutSub   *dock.Subscription
	zoneSub     *dock.Subscription
}

// WorkbenchOptions configures NewWorkbench. Only Config is required.
type WorkbenchOptions struct {
	Config  config.Config
	Logger  *log.Logger
	Tracer  oteltrace.Tracer
	PTY     pty.Runner
	WorkDir string
}

// NewWorkbench builds the engine, registers the configured panels, and
// wires input handling. Call AsTeaModel to run it.
func NewWorkbench(opts WorkbenchOptions) *Workbench {
	initStyles()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	runner := opts.PTY
	if runner == nil {
		runner = &pty.CreackPTY{}
	}
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}

	engCfg := opts.Config.EngineConfig()
	engCfg.Logger = logger
	engCfg.Tracer = opts.Tracer
	engine := dock.New(engCfg)

	w := &Workbench{
		engine:    engine,
		views:     make(map[string]View),
		focus:     &FocusManager{},
		mode:      ModeCommand,
		runner:    runner,
		workDir:   workDir,
		log:       logger,
		lastSizes: make(map[string]geom.Rect),
	}
	w.focus.OnChange = func(from, to string) {
		logger.Debug("focus moved", "from", from, "to", to)
		if w.mode == ModeInsert && !w.focusedWantsRawInput() {
			w.mode = ModeCommand
		}
	}
	w.keys = NewKeyHandler(buildKeybinds(opts.Config.Layout.AllowTopDock))

	for _, pc := range opts.Config.Panels {
		regOpts := dock.Options{
			Title:          pc.Title,
			Zone:           pc.DockZone(),
			Size:           pc.Size,
			MinSize:        pc.MinSize,
			ContentMinSize: pc.ContentMinSize,
		}
		if regOpts.Zone == dock.Floating {
			// Floating panels need a seed rect before the first real
			// viewport arrives; Layout clamps it once one does.
			fw := pc.Size
			if fw <= 0 {
				fw = 48
			}
			regOpts.Rect = geom.Rect{X: 2, Y: 1, W: fw, H: 16}
		}
		p := engine.Register(regOpts)
		var view View
		if pc.IsShell() {
			view = NewShellView(runner, p.ID, pc.Command, workDir)
		} else {
			view = NewTextView(p.ID, defaultPanelContent())
		}
		p.Body = view
		w.views[p.ID] = view
	}
	w.focus.SyncOrder(w.panelIDs())

	w.layoutSub = engine.OnLayout(func() { w.layoutDirty = true })
	w.zoneSub = engine.OnZoneResize(func(ev dock.ZoneResizeEvent) {
		if ev.Done {
			logger.Debug("zone resized", "zone", ev.Zone, "size", ev.Size, "prev", ev.Prev)
		}
	})
	return w
}

// buildKeybinds registers the stock bindings. Actions that mutate the
// workbench go through messages so the normal update path applies them.
func buildKeybinds(allowTop bool) *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("tab", func() tea.Msg { return CycleFocusMsg{} }, "Next panel")
	reg.BindWithDesc("shift+tab", func() tea.Msg { return CycleFocusMsg{Backward: true} }, "Previous panel")
	reg.BindWithDesc("?", func() tea.Msg { return ToggleHelpMsg{} }, "Help")
	reg.BindWithDesc("SPC p", func() tea.Msg { return ShowPanelSwitcherMsg{} }, "Panel switcher")
	reg.BindWithDesc("SPC f", func() tea.Msg { return FloatFocusedMsg{} }, "Float panel")
	reg.BindWithDesc("SPC x", func() tea.Msg { return CollapseFocusedMsg{} }, "Collapse panel")
	reg.BindWithDesc("SPC d l", func() tea.Msg { return DockFocusedMsg{Zone: dock.Left} }, "Dock left")
	reg.BindWithDesc("SPC d r", func() tea.Msg { return DockFocusedMsg{Zone: dock.Right} }, "Dock right")
	reg.BindWithDesc("SPC d b", func() tea.Msg { return DockFocusedMsg{Zone: dock.Bottom} }, "Dock bottom")
	reg.BindWithDesc("SPC d c", func() tea.Msg { return DockFocusedMsg{Zone: dock.Center} }, "Dock center")
	if allowTop {
		reg.BindWithDesc("SPC d t", func() tea.Msg { return DockFocusedMsg{Zone: dock.Top} }, "Dock top")
	}
	return reg
}

// Ensure Workbench can be used as tea.Model via adapter.
var _ tea.Model = (*workbenchAdapter)(nil)

// workbenchAdapter wraps Workbench to implement tea.Model.
type workbenchAdapter struct {
	*Workbench
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (w *Workbench) AsTeaModel() tea.Model {
	return &workbenchAdapter{Workbench: w}
}

// Init implements tea.Model. Starts every hosted view.
func (a *workbenchAdapter) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.views))
	for _, v := range a.views {
		if cmd := v.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model. After each message the adapter flushes any
// layout the engine ran, so views learn their new sizes in the same pass
// that will draw them.
func (a *workbenchAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	if a.layoutDirty {
		a.layoutDirty = false
		a.focus.SyncOrder(a.panelIDs())
		cmd = tea.Batch(cmd, a.syncViewSizes())
	}
	return a, cmd
}

// View implements tea.Model.
func (a *workbenchAdapter) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	frame := a.render()
	if status := a.statusLine(); status != "" {
		frame += "\n" + status
	}
	if a.modal != nil {
		return overlayCentered(frame, a.modal.View(), a.width, a.height)
	}
	return frame
}

func (w *Workbench) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width, w.height = msg.Width, msg.Height
		// Bottom row is the status line; the engine owns the rest.
		w.engine.Resize(msg.Width, msg.Height-1)
		return nil
	case tea.KeyMsg:
		return w.handleKey(msg)
	case tea.MouseMsg:
		return w.handleMouse(msg)
	case ShellOutputMsg:
		return w.routeToView(msg.ID, msg)
	case DismissModalMsg:
		w.modal = nil
		return nil
	case ShowPanelSwitcherMsg:
		w.modal = NewPanelSwitcher(w.engine.Panels())
		return w.modal.Init()
	case ToggleHelpMsg:
		if _, open := w.modal.(*HelpModal); open {
			w.modal = nil
			return nil
		}
		w.modal = NewHelpModal(w.keys.Registry)
		return w.modal.Init()
	case SelectPanelMsg:
		w.modal = nil
		w.focus.SetFocus(msg.ID)
		return nil
	case DockFocusedMsg:
		return w.dockFocused(msg.Zone)
	case FloatFocusedMsg:
		return w.dockFocused(dock.Floating)
	case CollapseFocusedMsg:
		if id := w.focus.Current; id != "" {
			w.engine.ToggleCollapse(id)
		}
		return nil
	case CycleFocusMsg:
		if msg.Backward {
			w.focus.Prev()
		} else {
			w.focus.Next()
		}
		return nil
	case ConfigReloadedMsg:
		w.engine.Reconfigure(msg.Config.EngineConfig())
		w.log.Info("layout configuration reloaded")
		return nil
	}

	// Everything else goes to the modal when one is open, otherwise to
	// the focused view.
	if w.modal != nil {
		v, cmd := w.modal.Update(msg)
		w.modal = v
		return cmd
	}
	return w.routeToView(w.focus.Current, msg)
}

func (w *Workbench) handleKey(msg tea.KeyMsg) tea.Cmd {
	if w.modal != nil {
		v, cmd := w.modal.Update(msg)
		w.modal = v
		return cmd
	}
	if w.mode == ModeInsert {
		if msg.String() == "esc" {
			w.mode = ModeCommand
			return nil
		}
		return w.routeToView(w.focus.Current, msg)
	}

	// Keybind system (leader key, SPC-prefixed commands)
	if consumed, cmd := w.keys.Handle(msg); consumed {
		return cmd
	}
	// Mode switching the registry cannot express
	if s := msg.String(); s == "enter" || s == "i" {
		if w.focusedWantsRawInput() {
			w.mode = ModeInsert
			return nil
		}
	}
	// Unbound keys scroll or otherwise drive the focused view
	return w.routeToView(w.focus.Current, msg)
}

func (w *Workbench) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if w.modal != nil {
		v, cmd := w.modal.Update(msg)
		w.modal = v
		return cmd
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			// Wheel scrolls the view under the cursor, focused or not
			if p := w.panelAt(msg.X, msg.Y); p != nil {
				return w.routeToView(p.ID, msg)
			}
			return nil
		}
		if msg.Button == tea.MouseButtonLeft {
			if p := w.panelAt(msg.X, msg.Y); p != nil {
				w.focus.SetFocus(p.ID)
			}
			w.engine.PointerDown(msg.X, msg.Y)
		}
		return nil
	case tea.MouseActionMotion:
		w.engine.PointerMove(msg.X, msg.Y)
		return nil
	case tea.MouseActionRelease:
		w.engine.PointerUp(msg.X, msg.Y)
		return nil
	}
	return nil
}

func (w *Workbench) dockFocused(zone dock.Zone) tea.Cmd {
	id := w.focus.Current
	if id == "" {
		return nil
	}
	if _, err := w.engine.Dock(id, zone); err != nil {
		w.log.Warn("dock rejected", "panel", id, "zone", zone, "err", err)
	}
	return nil
}

func (w *Workbench) routeToView(id string, msg tea.Msg) tea.Cmd {
	v, ok := w.views[id]
	if !ok {
		return nil
	}
	nv, cmd := v.Update(msg)
	w.views[id] = nv
	return cmd
}

func (w *Workbench) focusedWantsRawInput() bool {
	v, ok := w.views[w.focus.Current]
	if !ok {
		return false
	}
	raw, ok := v.(RawInput)
	return ok && raw.WantsRawInput()
}

// panelAt returns the topmost panel containing the point, or nil.
func (w *Workbench) panelAt(x, y int) *dock.Panel {
	byZ := w.engine.PanelsByZ()
	for i := len(byZ) - 1; i >= 0; i-- {
		if byZ[i].Rect().Contains(x, y) {
			return byZ[i]
		}
	}
	return nil
}

func (w *Workbench) panelIDs() []string {
	panels := w.engine.Panels()
	ids := make([]string, 0, len(panels))
	for _, p := range panels {
		ids = append(ids, p.ID)
	}
	return ids
}

// syncViewSizes tells each view its content rect. Views are updated
// directly so a resize lands before the frame that shows it.
func (w *Workbench) syncViewSizes() tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range w.engine.Panels() {
		cr := contentRect(p.Rect())
		if prev, ok := w.lastSizes[p.ID]; ok && prev == cr {
			continue
		}
		w.lastSizes[p.ID] = cr
		v, ok := w.views[p.ID]
		if !ok {
			continue
		}
		nv, cmd := v.Update(PanelSizeMsg{ID: p.ID, Width: cr.W, Height: cr.H})
		w.views[p.ID] = nv
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// statusLine is the single bottom row: leader hints while a sequence is
// pending, otherwise focus, zone, and mode.
func (w *Workbench) statusLine() string {
	if w.height < 2 {
		return ""
	}
	if w.keys.LeaderWaiting {
		return fitLine(" "+RenderKeybindHelp(w.keys), w.width)
	}
	left := ""
	if p, ok := w.engine.Panel(w.focus.Current); ok {
		left = " " + Styles.Status.Render(p.Title) + Styles.Muted.Render("  "+p.Zone().String())
	}
	right := Styles.Hint.Render("SPC: leader  ?: help")
	if w.mode == ModeInsert {
		right = Styles.Insert.Render("-- INSERT --") + Styles.Hint.Render("  esc: command")
	}
	gap := w.width - textutil.VisualWidthStyled(left) - textutil.VisualWidthStyled(right) - 1
	if gap < 1 {
		return fitLine(left, w.width)
	}
	return left + strings.Repeat(" ", gap) + right + " "
}

// Shutdown closes every view that holds resources and destroys the
// engine. Call after the program exits.
func (w *Workbench) Shutdown() {
	w.layoutSub.Cancel()
	w.zoneSub.Cancel()
	for id, v := range w.views {
		if c, ok := v.(io.Closer); ok {
			if err := c.Close(); err != nil {
				w.log.Warn("view close failed", "panel", id, "err", err)
			}
		}
	}
	w.engine.Destroy()
}
