// Package ui renders the dockyard workbench with Bubble Tea.
//
// Core abstractions:
//   - Workbench: root model owning the layout engine and one View per panel
//   - View: an Elm-style unit hosted inside a panel
//   - canvas: cell-buffer compositor painting panel frames back to front
//   - FocusManager: tracks and rotates focus across panels
//   - KeybindRegistry/KeyHandler: SPC-leader key sequences
//
// The engine decides every rect; this package only paints them and feeds
// pointer and key events back in.
package ui
