package main

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gripgear/designer/internal/configurator"
)

const (
	railWidth         = 14
	railSpacing       = 2
	templatesPerRow   = 3
	swatchesPerRow    = 8
	channelLabelWidth = 19
)

// Click targets. Keyboard focus walks the same ids.
const (
	targetRailPrefix    = "rail:"
	targetHelpPrefix    = "help:"
	targetTemplatePfx   = "template:"
	targetPalettePrefix = "palette:"
	targetSwatchPrefix  = "swatch:"
	targetLogoPrefix    = "logo:"
	targetLogoBrowsePfx = "logo:browse:"
	targetLogoApply     = "logo:apply"
	targetQtyDec        = "qty:dec"
	targetQtyInc        = "qty:inc"
	targetQtyInput      = "qty:input"
)

func railTarget(p configurator.PanelID) string { return targetRailPrefix + string(p) }
func helpTarget(p configurator.PanelID) string { return targetHelpPrefix + string(p) }
func templateTarget(id int) string             { return targetTemplatePfx + strconv.Itoa(id) }

func paletteTarget(ch configurator.ColorChannel) string {
	return targetPalettePrefix + string(ch)
}

func swatchTarget(ch configurator.ColorChannel, index int) string {
	return targetSwatchPrefix + string(ch) + ":" + strconv.Itoa(index)
}

func logoTarget(slot logoSlot) string {
	return targetLogoPrefix + strings.ToLower(slot.Label())
}

func logoBrowseTarget(slot logoSlot) string {
	return targetLogoBrowsePfx + strings.ToLower(slot.Label())
}

// canvas accumulates rendered lines and the targets drawn on them, in
// content coordinates (line index, display column).
type canvas struct {
	styles  styles
	focused string
	lines   []string
	regions []hitRegion
}

type lineBuilder struct {
	c     *canvas
	b     strings.Builder
	col   int
	spans []hitRegion
}

func newCanvas(st styles, focused string) *canvas {
	return &canvas{styles: st, focused: focused}
}

func (c *canvas) line() *lineBuilder {
	return &lineBuilder{c: c}
}

func (c *canvas) blank() {
	c.lines = append(c.lines, "")
}

// raw appends pre-rendered, possibly multi-line content with no targets.
func (c *canvas) raw(s string) {
	c.lines = append(c.lines, strings.Split(strings.TrimRight(s, "\n"), "\n")...)
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// targets lists target ids in drawing order.
func (c *canvas) targets() []string {
	out := make([]string, 0, len(c.regions))
	for _, r := range c.regions {
		out = append(out, r.target)
	}
	return out
}

func (l *lineBuilder) text(s string) *lineBuilder {
	l.b.WriteString(s)
	l.col += lipgloss.Width(s)
	return l
}

func (l *lineBuilder) target(id, s string, st lipgloss.Style) *lineBuilder {
	if l.c.focused == id {
		st = st.Reverse(true)
	}
	return l.span(id, st.Render(s))
}

// field wraps an already rendered input in brackets that carry the focus ring.
func (l *lineBuilder) field(id, inner string) *lineBuilder {
	bracket := lipgloss.NewStyle()
	if l.c.focused == id {
		bracket = l.c.styles.focusRing
	}
	return l.span(id, bracket.Render("[")+inner+bracket.Render("]"))
}

func (l *lineBuilder) swatch(id string, color configurator.Color, selected bool) *lineBuilder {
	mark := "   "
	switch {
	case selected && l.c.focused == id:
		mark = "[✓]"
	case selected:
		mark = " ✓ "
	case l.c.focused == id:
		mark = "[ ]"
	}
	return l.span(id, swatchStyle(color.String()).Render(mark))
}

func (l *lineBuilder) span(id, rendered string) *lineBuilder {
	w := lipgloss.Width(rendered)
	l.spans = append(l.spans, hitRegion{target: id, left: l.col, right: l.col + w - 1})
	l.b.WriteString(rendered)
	l.col += w
	return l
}

func (l *lineBuilder) end() {
	row := len(l.c.lines)
	for _, s := range l.spans {
		s.top, s.bottom = row, row
		l.c.regions = append(l.c.regions, s)
	}
	l.c.lines = append(l.c.lines, l.b.String())
}

// sidebarView is everything one frame of the sidebar needs.
type sidebarView struct {
	snap    configurator.Snapshot
	logos   *logoPicker
	qty     *quantityControl
	focused string
	styles  styles
}

// renderRail draws the four facet buttons. Regions are relative to the
// rail's top-left corner.
func (v sidebarView) renderRail(height int) (string, []hitRegion) {
	c := newCanvas(v.styles, v.focused)
	for i, p := range configurator.Panels {
		st := v.styles.railButton
		if v.snap.ActivePanel == p {
			st = v.styles.railActive
		}
		c.line().target(railTarget(p), fmt.Sprintf("%d %s", i+1, p.Label()), st).end()
		for j := 1; j < railSpacing; j++ {
			c.blank()
		}
	}
	for len(c.lines) < height {
		c.blank()
	}
	return v.styles.rail.Render(c.String()), c.regions
}

// renderPanel draws the nested panel for the active facet.
func (v sidebarView) renderPanel() *canvas {
	c := newCanvas(v.styles, v.focused)
	panel := v.snap.ActivePanel
	if panel == configurator.PanelNone {
		c.line().text(v.styles.panelHint.Render("Pick a facet on the left, or press 1-4.")).end()
		return c
	}

	c.line().
		text(v.styles.panelTitle.Render(panel.Title())).
		text("  ").
		target(helpTarget(panel), "ⓘ", v.styles.infoIcon).
		end()
	c.blank()

	switch panel {
	case configurator.PanelDesign:
		v.renderTemplates(c)
	case configurator.PanelColour:
		v.renderColours(c)
	case configurator.PanelLogo:
		v.renderLogos(c)
	case configurator.PanelQuantity:
		v.renderQuantity(c)
	}
	return c
}

func (v sidebarView) renderTemplates(c *canvas) {
	var row *lineBuilder
	for i, opt := range v.snap.Templates {
		if i%templatesPerRow == 0 {
			if row != nil {
				row.end()
			}
			row = c.line()
		} else {
			row.text(" ")
		}
		mark := " "
		st := v.styles.templateCell
		if opt.Selected {
			mark = "✓"
			st = v.styles.templateSelected
		}
		row.target(templateTarget(opt.ID), fmt.Sprintf("[%s %s]", mark, templateName(opt.Template)), st)
	}
	if row != nil {
		row.end()
	}
}

func templateName(t configurator.Template) string {
	name := strings.TrimSuffix(path.Base(t.PreviewAsset), path.Ext(t.PreviewAsset))
	if name == "" || name == "." || name == "/" {
		name = "design " + strconv.Itoa(t.ID)
	}
	return name
}

func (v sidebarView) renderColours(c *canvas) {
	for _, ch := range configurator.Channels {
		if ch == configurator.ChannelStripe && !v.snap.StripeOffered {
			continue
		}
		current, ok := v.snap.Colors.Get(ch)
		open := v.snap.Expanded.Channel() == ch

		label := ch.Label()
		if pad := channelLabelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		arrow := "▾"
		st := v.styles.paletteToggle
		if open {
			arrow = "▴"
			st = v.styles.paletteToggleOpen
		}
		value := "none"
		if ok {
			value = current.String()
		}
		row := c.line().text(v.styles.fieldLabel.Render(label))
		if ok {
			row.text(swatchStyle(current.String()).Render("  ")).text(" ")
		}
		row.target(paletteTarget(ch), value+" "+arrow, st).end()

		if open {
			v.renderSwatches(c, ch, current)
		}
		c.blank()
	}
	if !v.snap.StripeOffered {
		c.line().text(v.styles.panelHint.Render("The plain design has no stripe.")).end()
	}
}

func (v sidebarView) renderSwatches(c *canvas, ch configurator.ColorChannel, current configurator.Color) {
	var row *lineBuilder
	for i, color := range v.snap.Palette {
		if i%swatchesPerRow == 0 {
			if row != nil {
				row.end()
			}
			row = c.line().text("  ")
		} else {
			row.text(" ")
		}
		row.swatch(swatchTarget(ch, i), color, color == current)
	}
	if row != nil {
		row.end()
	}
	if idx := focusedSwatch(v.focused, ch); idx >= 0 && idx < len(v.snap.Palette) {
		c.line().text(v.styles.swatchLabel.Render("  " + v.snap.Palette[idx].String())).end()
	}
}

func focusedSwatch(focused string, ch configurator.ColorChannel) int {
	prefix := targetSwatchPrefix + string(ch) + ":"
	if !strings.HasPrefix(focused, prefix) {
		return -1
	}
	idx, err := strconv.Atoi(strings.TrimPrefix(focused, prefix))
	if err != nil {
		return -1
	}
	return idx
}

func (v sidebarView) renderLogos(c *canvas) {
	if v.logos == nil {
		return
	}
	if v.logos.Browsing() {
		c.line().text(v.styles.fieldLabel.Render(fmt.Sprintf("Browse for the %s logo", strings.ToLower(v.logos.browseSlot.Label())))).end()
		c.raw(v.logos.BrowserView())
		c.line().text(v.styles.panelHint.Render("enter select • esc cancel")).end()
		return
	}
	for slot := logoLeft; slot < logoSlotCount; slot++ {
		label := slot.Label()
		if pad := 6 - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		c.line().
			text(v.styles.fieldLabel.Render(label)).
			field(logoTarget(slot), v.logos.InputView(slot)).
			text(" ").
			target(logoBrowseTarget(slot), "browse", v.styles.button).
			end()
	}
	c.blank()
	c.line().target(targetLogoApply, "Apply logos", v.styles.button).end()
	if v.logos.Editing() {
		c.line().text(v.styles.panelHint.Render("enter apply • tab next • esc done")).end()
	}
}

func (v sidebarView) renderQuantity(c *canvas) {
	if v.qty == nil {
		return
	}
	c.line().
		target(targetQtyDec, "[-]", v.styles.button).
		text(" ").
		field(targetQtyInput, v.qty.InputView()).
		text(" ").
		target(targetQtyInc, "[+]", v.styles.button).
		end()
	if err := v.qty.Err(); err != nil {
		c.line().text(v.styles.fieldError.Render(err.Error())).end()
	}
	c.line().text(v.styles.panelHint.Render(fmt.Sprintf("%d pairs (%d to %d)", v.qty.Value(), minQuantity, maxQuantity))).end()
}
