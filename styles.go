package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	app, topBar                      lipgloss.Style
	rail, railButton, railActive     lipgloss.Style
	panelTitle, panelHint            lipgloss.Style
	infoIcon                         lipgloss.Style
	templateCell, templateSelected   lipgloss.Style
	paletteToggle, paletteToggleOpen lipgloss.Style
	swatchLabel                      lipgloss.Style
	fieldLabel, fieldError           lipgloss.Style
	button                           lipgloss.Style
	focusRing                        lipgloss.Style
	statusBar, statusSeg, statusHint lipgloss.Style
	tooltip                          lipgloss.Style
	guide                            lipgloss.Style
}

func newStyles() styles {
	base := lipgloss.NewStyle()
	accent := lipgloss.AdaptiveColor{Light: "#004C97", Dark: "#8BB8E8"}
	muted := lipgloss.AdaptiveColor{Light: "#767676", Dark: "#9A9A9A"}

	return styles{
		app:               base,
		topBar:            base.Padding(0, 1).Bold(true),
		rail:              base.Width(railWidth),
		railButton:        base.Width(railWidth).Padding(0, 1),
		railActive:        base.Width(railWidth).Padding(0, 1).Bold(true).Reverse(true),
		panelTitle:        base.Bold(true).Foreground(accent),
		panelHint:         base.Faint(true),
		infoIcon:          base.Foreground(accent),
		templateCell:      base.Foreground(muted),
		templateSelected:  base.Bold(true).Foreground(accent),
		paletteToggle:     base,
		paletteToggleOpen: base.Bold(true).Underline(true),
		swatchLabel:       base.Faint(true),
		fieldLabel:        base.Bold(true),
		fieldError:        base.Foreground(lipgloss.Color("#E4002B")),
		button:            base.Bold(true).Foreground(accent),
		focusRing:         base.Reverse(true),
		statusBar:         base.Padding(0, 1),
		statusSeg:         base.Padding(0, 1).MarginRight(1),
		statusHint:        base.Faint(true),
		tooltip:           base.Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		guide:             base.Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// swatchStyle paints a palette cell in its own colour with a readable mark.
func swatchStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(contrastFor(hex)))
}

// contrastFor picks black or white text for a #RRGGBB background.
func contrastFor(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return "#FFFFFF"
	}
	var rgb [3]int
	for i := 0; i < 3; i++ {
		rgb[i] = hexByte(hex[1+2*i], hex[2+2*i])
	}
	luma := (299*rgb[0] + 587*rgb[1] + 114*rgb[2]) / 1000
	if luma > 140 {
		return "#000000"
	}
	return "#FFFFFF"
}

func hexByte(hi, lo byte) int {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}
