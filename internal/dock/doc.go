// Package dock is a rectangle-arithmetic layout engine for dockable panel
// workspaces. Panels live in one of five zones (left, right, top, bottom,
// center) or in a free-floating bag; the engine assigns every panel a
// rectangle and a z value from the viewport size, the zone stacks, and the
// splitter positions.
//
// The engine is deliberately renderer-agnostic: it never draws. Hosts feed
// it pointer events and viewport resizes, then read back panel rects,
// splitter handles, and decoration geometry to paint however they like.
// All methods must be called from a single goroutine, typically the host's
// event loop.
package dock
