package dock

import (
	"io"

	"github.com/charmbracelet/log"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Config carries the engine's tunables. The zero value is usable; New fills
// unset numeric fields with the defaults below. Units are whatever the host
// measures rects in (cells for a terminal host, pixels elsewhere).
type Config struct {
	// EdgeSnap is the pointer distance from a viewport edge that produces a
	// dock hint while dragging.
	EdgeSnap int
	// MinPanelSize floors every panel's stacking-axis extent during
	// redistribution.
	MinPanelSize int
	// MinCenterSize is the extent, on both axes, the center region never
	// gives up to the edge zones.
	MinCenterSize int
	// SplitterSize is the thickness of splitter hit areas.
	SplitterSize int
	// DragThreshold is the pointer travel that promotes an armed gesture to
	// a real drag.
	DragThreshold int
	// InitialDockSize is the default thickness of left/right zones when no
	// override or per-panel hint applies.
	InitialDockSize int
	// TopDockFraction sizes top/bottom zones as a fraction of viewport
	// height when nothing more specific applies.
	TopDockFraction float64
	// DisableTopDock turns the top zone off. While set, drag gestures never
	// hint top and any top-docked panel migrates to floating on the next
	// layout pass. The zero value keeps top docking enabled, so a zero
	// Config needs no defaulting here.
	DisableTopDock bool

	// Logger receives pass summaries at debug level and recovered
	// subscriber panics at error level. Nil discards.
	Logger *log.Logger
	// Tracer, when set, wraps layout passes and finished gestures in spans.
	Tracer oteltrace.Tracer

	// OnLayout, when set, is registered as the first layout subscriber.
	OnLayout func()
	// OnZoneResize, when set, is registered as the first zone-resize
	// subscriber.
	OnZoneResize func(ZoneResizeEvent)
}

const (
	defaultEdgeSnap        = 8
	defaultMinPanelSize    = 24
	defaultMinCenterSize   = 16
	defaultSplitterSize    = 2
	defaultDragThreshold   = 3
	defaultInitialDockSize = 30
	defaultTopDockFraction = 0.25

	// maxZoneFraction caps any one zone's thickness so the center can never
	// be squeezed out by a single zone.
	maxZoneFraction = 0.8
)

func (c Config) withDefaults() Config {
	if c.EdgeSnap <= 0 {
		c.EdgeSnap = defaultEdgeSnap
	}
	if c.MinPanelSize <= 0 {
		c.MinPanelSize = defaultMinPanelSize
	}
	if c.MinCenterSize <= 0 {
		c.MinCenterSize = defaultMinCenterSize
	}
	if c.SplitterSize <= 0 {
		c.SplitterSize = defaultSplitterSize
	}
	if c.DragThreshold <= 0 {
		c.DragThreshold = defaultDragThreshold
	}
	if c.InitialDockSize <= 0 {
		c.InitialDockSize = defaultInitialDockSize
	}
	if c.TopDockFraction <= 0 || c.TopDockFraction > 1 {
		c.TopDockFraction = defaultTopDockFraction
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	return c
}
