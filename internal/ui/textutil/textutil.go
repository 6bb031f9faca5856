// Package textutil provides unicode-aware text helpers for panel chrome.
package textutil

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns a plain string occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the visual width of a styled string,
// ignoring ANSI escape codes.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate fits a string into maxWidth visual columns, appending the
// unicode ellipsis when anything was cut. The result is at most
// maxWidth columns wide.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// PadRightVisual pads a string with spaces to reach targetWidth visual
// columns. Strings already wider than targetWidth are truncated.
func PadRightVisual(s string, targetWidth int) string {
	currentWidth := VisualWidth(s)
	if currentWidth >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + runewidth.FillRight("", targetWidth-currentWidth)
}

// PadLeftVisual pads a string on the left to reach targetWidth visual
// columns. Strings already wider than targetWidth are truncated.
func PadLeftVisual(s string, targetWidth int) string {
	currentWidth := VisualWidth(s)
	if currentWidth >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillLeft("", targetWidth-currentWidth) + s
}
