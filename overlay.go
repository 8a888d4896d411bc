package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/gripgear/designer/internal/configurator"
)

// hitRegion is a clickable span on screen. Bottom and Right are inclusive.
type hitRegion struct {
	target string
	top    int
	left   int
	bottom int
	right  int
}

func (r hitRegion) contains(x, y int) bool {
	return y >= r.top && y <= r.bottom && x >= r.left && x <= r.right
}

func (r hitRegion) rect() configurator.Rect {
	return configurator.Rect{Top: r.top, Left: r.left, Bottom: r.bottom, Right: r.right}
}

type regionMap []hitRegion

// at returns the last region containing the point; later regions are drawn
// on top of earlier ones.
func (rm regionMap) at(x, y int) (hitRegion, bool) {
	for i := len(rm) - 1; i >= 0; i-- {
		if rm[i].contains(x, y) {
			return rm[i], true
		}
	}
	return hitRegion{}, false
}

func (rm regionMap) find(target string) (hitRegion, bool) {
	for _, r := range rm {
		if r.target == target {
			return r, true
		}
	}
	return hitRegion{}, false
}

// overlayAt splices overlay into base with its top-left corner at (x, y),
// clamped so the overlay stays on screen.
func overlayAt(base string, baseW, baseH int, overlay string, x, y int) string {
	if baseW <= 0 || baseH <= 0 || strings.TrimSpace(overlay) == "" {
		return base
	}

	baseLines := strings.Split(base, "\n")
	if len(baseLines) > baseH {
		baseLines = baseLines[:baseH]
	}
	for len(baseLines) < baseH {
		baseLines = append(baseLines, "")
	}
	for i := range baseLines {
		baseLines[i] = padANSI(ansi.Truncate(baseLines[i], baseW, ""), baseW)
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayW := lipgloss.Width(overlay)
	if overlayW <= 0 {
		return strings.Join(baseLines, "\n")
	}
	if overlayW > baseW {
		overlayW = baseW
	}
	x = clamp(x, 0, baseW-overlayW)
	y = clamp(y, 0, max(baseH-len(overlayLines), 0))

	for i, oline := range overlayLines {
		row := y + i
		if row >= baseH {
			break
		}
		oline = padANSI(ansi.Truncate(oline, overlayW, ""), overlayW)
		left := ansi.Cut(baseLines[row], 0, x)
		right := ansi.Cut(baseLines[row], x+overlayW, baseW)
		baseLines[row] = left + oline + right
	}
	return strings.Join(baseLines, "\n")
}

func padANSI(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
