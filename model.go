package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gripgear/designer/internal/configurator"
	"go.uber.org/zap"
)

const (
	bodyTop      = 1
	panelLeft    = railWidth + 2
	tooltipWidth = 36
	logoRows     = 8
)

var writeClipboard = clipboard.WriteAll

type keyMap struct {
	quit        key.Binding
	panels      []key.Binding
	nextPanel   key.Binding
	prevPanel   key.Binding
	up          key.Binding
	down        key.Binding
	left        key.Binding
	right       key.Binding
	choose      key.Binding
	background  key.Binding
	stripe      key.Binding
	clearLogo   key.Binding
	contextHelp key.Binding
	dismiss     key.Binding
	guide       key.Binding
	theme       key.Binding
	copyColor   key.Binding
	copySummary key.Binding
}

func newKeyMap() keyMap {
	panels := make([]key.Binding, 0, len(configurator.Panels))
	for i, p := range configurator.Panels {
		digit := strconv.Itoa(i + 1)
		panels = append(panels, key.NewBinding(
			key.WithKeys(digit),
			key.WithHelp(digit, strings.ToLower(p.Label())),
		))
	}
	return keyMap{
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		panels: panels,
		nextPanel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		prevPanel: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		choose: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose"),
		),
		background: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "background palette"),
		),
		stripe: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stripe palette"),
		),
		clearLogo: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "clear logo"),
		),
		contextHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "panel help"),
		),
		dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		guide: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "guide"),
		),
		theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "guide theme"),
		),
		copyColor: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy colour"),
		),
		copySummary: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "copy summary"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.nextPanel,
		k.choose,
		k.background,
		k.stripe,
		k.contextHelp,
		k.guide,
		k.copyColor,
		k.quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.panels,
		{k.nextPanel, k.prevPanel, k.up, k.down, k.left, k.right, k.choose},
		{k.background, k.stripe, k.clearLogo},
		{k.contextHelp, k.dismiss, k.guide, k.theme},
		{k.copyColor, k.copySummary, k.quit},
	}
}

type modelOptions struct {
	catalog      configurator.Catalog
	journal      *selectionJournal
	metrics      *commitMetrics
	logger       *zap.Logger
	uiConfig     *uiConfig
	uiConfigPath string
	startPanel   configurator.PanelID
}

type model struct {
	width  int
	height int

	styles styles
	keys   keyMap
	help   help.Model

	markdownTheme markdownTheme
	uiConfig      *uiConfig
	uiConfigPath  string

	cfg      *configurator.Configurator
	order    *orderState
	logos    *logoPicker
	qty      *quantityControl
	viewport viewport.Model
	focus    string

	showGuide bool
	guide     viewport.Model

	toastMessage string
	toastExpires time.Time

	log *zap.Logger
}

// frame is one render of the sidebar. Rail regions are relative to the rail,
// panel regions to the panel content.
type frame struct {
	rail        string
	railRegions []hitRegion
	panel       *canvas
}

func (f frame) targets() []string {
	out := make([]string, 0, len(f.railRegions)+len(f.panel.regions))
	for _, r := range f.railRegions {
		out = append(out, r.target)
	}
	return append(out, f.panel.targets()...)
}

func newModel(opts modelOptions) *model {
	logger := opts.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	catalog := opts.catalog
	if catalog.Len() == 0 {
		catalog = configurator.DefaultCatalog()
	}
	cfg := opts.uiConfig
	if cfg == nil {
		cfg = defaultUIConfig(resolveConfigDir())
	}

	m := &model{
		width:         80,
		height:        24,
		styles:        newStyles(),
		keys:          newKeyMap(),
		help:          help.New(),
		markdownTheme: markdownThemeFromString(cfg.Theme),
		uiConfig:      cfg,
		uiConfigPath:  opts.uiConfigPath,
		order:         newOrderState(opts.journal, opts.metrics, logger),
		viewport:      viewport.New(0, 0),
		log:           logger,
	}
	m.cfg = configurator.New(catalog, m.handleEvent,
		configurator.WithLogger(logger.Named("configurator")),
		configurator.WithProps(m.order.props()),
	)
	m.qty = newQuantityControl(m.order.quantity, m.cfg.ChangeQuantity, m.cfg.BlurQuantity)
	m.logos = newLogoPicker(func(left, right, full string) {
		m.cfg.SelectLogos(configurator.LogoSelection{Left: left, Right: right, Full: full})
	}, logoRows)
	m.focus = railTarget(configurator.PanelDesign)
	setMarkdownTheme(m.markdownTheme)
	m.applyLayout()
	if opts.startPanel.Valid() {
		m.togglePanel(opts.startPanel)
	}
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

// handleEvent is the page side of the configurator contract: record the
// commit, then push display props back down.
func (m *model) handleEvent(e configurator.Event) {
	m.order.apply(e)
	m.cfg.SetProps(m.order.props())
	m.qty.SetValue(m.order.quantity)
	if logos, ok := e.(configurator.LogoChanged); ok {
		m.logos.SetSelection(logos.Logos)
		if logos.Logos.Empty() {
			m.setToast("Logos cleared", 3*time.Second)
			return
		}
		m.setToast(fmt.Sprintf("Logos: left %s, right %s, full %s",
			valueOrDash(logos.Logos.Left), valueOrDash(logos.Logos.Right), valueOrDash(logos.Logos.Full)), 3*time.Second)
	}
}

// Close releases the configurator's listeners.
func (m *model) Close() {
	m.cfg.Close()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	var cmds []tea.Cmd
	if m.logos.Browsing() || m.logos.Editing() {
		cmds = append(cmds, m.logos.Update(msg))
	}
	if m.qty.Focused() {
		cmds = append(cmds, m.qty.Update(msg))
	}
	return m, tea.Batch(cmds...)
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.quit) {
		return tea.Quit
	}
	if m.showGuide {
		switch {
		case key.Matches(msg, m.keys.dismiss), key.Matches(msg, m.keys.guide), msg.String() == "q":
			m.showGuide = false
			return nil
		case key.Matches(msg, m.keys.theme):
			m.toggleMarkdownTheme()
			m.openGuide()
			return nil
		}
		var cmd tea.Cmd
		m.guide, cmd = m.guide.Update(msg)
		return cmd
	}
	if m.qty.Focused() {
		return m.handleQuantityKey(msg)
	}
	if m.logos.Browsing() || m.logos.Editing() {
		return m.logos.Update(msg)
	}

	for i, binding := range m.keys.panels {
		if key.Matches(msg, binding) {
			m.keyInteraction()
			return m.togglePanel(configurator.Panels[i])
		}
	}

	switch {
	case key.Matches(msg, m.keys.nextPanel):
		m.keyInteraction()
		return m.cyclePanel(1)
	case key.Matches(msg, m.keys.prevPanel):
		m.keyInteraction()
		return m.cyclePanel(-1)
	case key.Matches(msg, m.keys.up):
		m.moveFocusVertical(-1)
	case key.Matches(msg, m.keys.down):
		m.moveFocusVertical(1)
	case key.Matches(msg, m.keys.left):
		m.moveFocusLinear(-1)
	case key.Matches(msg, m.keys.right):
		m.moveFocusLinear(1)
	case key.Matches(msg, m.keys.choose):
		if !strings.HasPrefix(m.focus, targetHelpPrefix) {
			m.keyInteraction()
		}
		return m.activate(m.focus)
	case key.Matches(msg, m.keys.background):
		m.keyInteraction()
		return m.togglePalette(configurator.ChannelBackground)
	case key.Matches(msg, m.keys.stripe):
		m.keyInteraction()
		return m.togglePalette(configurator.ChannelStripe)
	case key.Matches(msg, m.keys.clearLogo):
		m.keyInteraction()
		if slot, ok := logoSlotFor(strings.TrimPrefix(m.focus, targetLogoPrefix)); ok {
			m.logos.Clear(slot)
		}
	case key.Matches(msg, m.keys.contextHelp):
		active := m.order.router.Active()
		if active == configurator.PanelNone {
			m.setToast("Open a panel to see its help", 3*time.Second)
			return nil
		}
		m.requestHelp(active)
	case key.Matches(msg, m.keys.dismiss):
		m.keyInteraction()
	case key.Matches(msg, m.keys.guide):
		m.openGuide()
	case key.Matches(msg, m.keys.theme):
		m.toggleMarkdownTheme()
	case key.Matches(msg, m.keys.copyColor):
		m.copyColor()
	case key.Matches(msg, m.keys.copySummary):
		m.copySummary()
	}
	return nil
}

// keyInteraction reports a keyboard action on the focused control, the same
// way a click on it would be reported.
func (m *model) keyInteraction() {
	m.cfg.Interact(configurator.Interaction{Target: m.focus})
}

func (m *model) handleQuantityKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "tab", "shift+tab":
		m.qty.Blur()
		return nil
	case "up":
		m.qty.Step(1)
		return nil
	case "down":
		m.qty.Step(-1)
		return nil
	}
	return m.qty.Update(msg)
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.showGuide {
		var cmd tea.Cmd
		m.guide, cmd = m.guide.Update(msg)
		return cmd
	}
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.SetYOffset(m.viewport.YOffset - 1)
		return nil
	case tea.MouseButtonWheelDown:
		m.viewport.SetYOffset(m.viewport.YOffset + 1)
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	hit, ok := m.screenRegions(m.buildFrame()).at(msg.X, msg.Y)
	if ok && strings.HasPrefix(hit.target, targetHelpPrefix) {
		m.focus = hit.target
		m.requestHelpAt(configurator.PanelID(strings.TrimPrefix(hit.target, targetHelpPrefix)), hit)
		return nil
	}

	m.cfg.Interact(configurator.Interaction{Target: hit.target, X: msg.X, Y: msg.Y})
	if !ok {
		m.leaveFields()
		return nil
	}
	if hit.target != m.activeField() {
		m.leaveFields()
	}
	m.focus = hit.target
	return m.activate(hit.target)
}

// activeField is the target of the input currently taking keystrokes.
func (m *model) activeField() string {
	if m.qty.Focused() {
		return targetQtyInput
	}
	if m.logos.Editing() {
		return logoTarget(m.logos.editing)
	}
	return ""
}

// leaveFields blurs whichever input holds the keyboard.
func (m *model) leaveFields() {
	m.qty.Blur()
	m.logos.Blur()
	m.logos.CancelBrowse()
}

func (m *model) activate(target string) tea.Cmd {
	switch {
	case strings.HasPrefix(target, targetRailPrefix):
		return m.togglePanel(configurator.PanelID(strings.TrimPrefix(target, targetRailPrefix)))
	case strings.HasPrefix(target, targetHelpPrefix):
		m.requestHelp(configurator.PanelID(strings.TrimPrefix(target, targetHelpPrefix)))
	case strings.HasPrefix(target, targetTemplatePfx):
		id, err := strconv.Atoi(strings.TrimPrefix(target, targetTemplatePfx))
		if err != nil {
			return nil
		}
		if err := m.cfg.SelectTemplate(id); err != nil {
			m.setToast(err.Error(), 4*time.Second)
		}
	case strings.HasPrefix(target, targetPalettePrefix):
		return m.togglePalette(configurator.ColorChannel(strings.TrimPrefix(target, targetPalettePrefix)))
	case strings.HasPrefix(target, targetSwatchPrefix):
		ch, idx, ok := parseSwatchTarget(target)
		if ok {
			m.selectSwatch(ch, idx)
		}
	case target == targetLogoApply:
		m.logos.Apply()
	case strings.HasPrefix(target, targetLogoBrowsePfx):
		if slot, ok := logoSlotFor(strings.TrimPrefix(target, targetLogoBrowsePfx)); ok {
			return m.logos.Browse(slot)
		}
	case strings.HasPrefix(target, targetLogoPrefix):
		if slot, ok := logoSlotFor(strings.TrimPrefix(target, targetLogoPrefix)); ok {
			if m.logos.Editing() && m.logos.editing == slot {
				return nil
			}
			return m.logos.Edit(slot)
		}
	case target == targetQtyDec:
		m.qty.Step(-1)
	case target == targetQtyInc:
		m.qty.Step(1)
	case target == targetQtyInput:
		if m.qty.Focused() {
			return nil
		}
		return m.qty.Focus()
	}
	return nil
}

func parseSwatchTarget(target string) (configurator.ColorChannel, int, bool) {
	rest := strings.TrimPrefix(target, targetSwatchPrefix)
	name, index, found := strings.Cut(rest, ":")
	if !found {
		return "", 0, false
	}
	ch, err := configurator.ParseChannel(name)
	if err != nil {
		return "", 0, false
	}
	idx, err := strconv.Atoi(index)
	if err != nil {
		return "", 0, false
	}
	return ch, idx, true
}

func logoSlotFor(name string) (logoSlot, bool) {
	for slot := logoLeft; slot < logoSlotCount; slot++ {
		if strings.EqualFold(slot.Label(), name) {
			return slot, true
		}
	}
	return 0, false
}

func (m *model) togglePanel(p configurator.PanelID) tea.Cmd {
	m.leaveFields()
	if err := m.cfg.TogglePanel(p); err != nil {
		m.setToast(err.Error(), 4*time.Second)
		return nil
	}
	m.viewport.GotoTop()
	if m.order.router.Active() == configurator.PanelNone {
		m.focus = railTarget(p)
		return nil
	}
	m.focus = m.firstPanelTarget()
	return nil
}

func (m *model) cyclePanel(delta int) tea.Cmd {
	router := m.order.router
	return m.togglePanel(router.Step(delta))
}

// firstPanelTarget picks the first control of the open panel, skipping the
// info icon when there is anything else.
func (m *model) firstPanelTarget() string {
	f := m.buildFrame()
	targets := f.panel.targets()
	for _, t := range targets {
		if !strings.HasPrefix(t, targetHelpPrefix) {
			return t
		}
	}
	if len(targets) > 0 {
		return targets[0]
	}
	return railTarget(m.order.router.Active())
}

func (m *model) togglePalette(ch configurator.ColorChannel) tea.Cmd {
	if m.order.router.Active() != configurator.PanelColour {
		m.togglePanel(configurator.PanelColour)
	}
	if err := m.cfg.TogglePalette(ch); err != nil {
		m.setToast(err.Error(), 4*time.Second)
		return nil
	}
	if !m.cfg.PaletteExpanded(ch) {
		m.focus = paletteTarget(ch)
		return nil
	}
	idx := 0
	if current, ok := m.cfg.SelectedColor(ch); ok {
		for i, c := range m.cfg.Catalog().Palette() {
			if c == current {
				idx = i
				break
			}
		}
	}
	m.setFocus(swatchTarget(ch, idx), m.buildFrame())
	return nil
}

func (m *model) selectSwatch(ch configurator.ColorChannel, idx int) {
	palette := m.cfg.Catalog().Palette()
	if idx < 0 || idx >= len(palette) {
		return
	}
	if err := m.cfg.SelectColor(ch, palette[idx]); err != nil {
		m.setToast(err.Error(), 4*time.Second)
		return
	}
	m.setToast(fmt.Sprintf("%s %s", ch.Label(), palette[idx]), 2*time.Second)
}

func (m *model) requestHelp(p configurator.PanelID) {
	regions := m.screenRegions(m.buildFrame())
	hit, ok := regions.find(helpTarget(p))
	if !ok {
		m.viewport.GotoTop()
		hit, ok = m.screenRegions(m.buildFrame()).find(helpTarget(p))
	}
	if !ok {
		m.setToast("Open the "+p.Label()+" panel to see its help", 3*time.Second)
		return
	}
	m.requestHelpAt(p, hit)
}

func (m *model) requestHelpAt(p configurator.PanelID, hit hitRegion) {
	scroll := configurator.Offset{Y: m.viewport.YOffset}
	if _, err := m.cfg.RequestHelp(p, hit.rect(), scroll); err != nil {
		m.setToast(err.Error(), 4*time.Second)
	}
}

func (m *model) moveFocusLinear(delta int) {
	f := m.buildFrame()
	targets := f.targets()
	if len(targets) == 0 {
		return
	}
	idx := -1
	for i, t := range targets {
		if t == m.focus {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = 0
	} else {
		idx = ((idx+delta)%len(targets) + len(targets)) % len(targets)
	}
	m.setFocus(targets[idx], f)
}

// moveFocusVertical moves to the nearest target on the closest line above or
// below, preferring the same column.
func (m *model) moveFocusVertical(delta int) {
	f := m.buildFrame()
	regions := regionMap(f.panel.regions)
	if strings.HasPrefix(m.focus, targetRailPrefix) {
		regions = f.railRegions
	}
	cur, ok := regions.find(m.focus)
	if !ok {
		m.moveFocusLinear(delta)
		return
	}
	best := ""
	bestLines, bestCols := 0, 0
	for _, r := range regions {
		if (delta > 0 && r.top <= cur.top) || (delta < 0 && r.top >= cur.top) {
			continue
		}
		lines := abs(r.top - cur.top)
		cols := abs(r.left - cur.left)
		if best == "" || lines < bestLines || (lines == bestLines && cols < bestCols) {
			best, bestLines, bestCols = r.target, lines, cols
		}
	}
	if best != "" {
		m.setFocus(best, f)
	}
}

// setFocus moves the cursor and scrolls the panel so a panel target is on
// screen.
func (m *model) setFocus(target string, f frame) {
	m.focus = target
	r, ok := regionMap(f.panel.regions).find(target)
	if !ok {
		return
	}
	switch {
	case r.top < m.viewport.YOffset:
		m.viewport.SetYOffset(r.top)
	case r.bottom >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(r.bottom - m.viewport.Height + 1)
	}
}

func (m *model) buildFrame() frame {
	v := sidebarView{
		snap:    m.cfg.Snapshot(),
		logos:   m.logos,
		qty:     m.qty,
		focused: m.focus,
		styles:  m.styles,
	}
	rail, railRegions := v.renderRail(m.bodyHeight())
	panel := v.renderPanel()
	m.viewport.SetContent(panel.String())
	return frame{rail: rail, railRegions: railRegions, panel: panel}
}

// screenRegions places the frame's targets in terminal coordinates. Panel
// targets scrolled out of view are dropped.
func (m *model) screenRegions(f frame) regionMap {
	out := make(regionMap, 0, len(f.railRegions)+len(f.panel.regions))
	for _, r := range f.railRegions {
		r.top += bodyTop
		r.bottom += bodyTop
		out = append(out, r)
	}
	first := m.viewport.YOffset
	last := first + m.viewport.Height - 1
	shift := bodyTop - first
	for _, r := range f.panel.regions {
		if r.top < first || r.bottom > last {
			continue
		}
		r.top += shift
		r.bottom += shift
		r.left += panelLeft
		r.right += panelLeft
		out = append(out, r)
	}
	return out
}

func (m *model) bodyHeight() int {
	h := m.height - bodyTop - 2
	if h < 5 {
		h = 5
	}
	return h
}

func (m *model) applyLayout() {
	helpWidth := m.width - 4
	if helpWidth < 0 {
		helpWidth = 0
	}
	m.help.Width = helpWidth
	panelWidth := m.width - panelLeft
	if panelWidth < 10 {
		panelWidth = 10
	}
	m.viewport.Width = panelWidth
	m.viewport.Height = m.bodyHeight()
	if m.showGuide {
		m.openGuide()
	}
}

func (m *model) openGuide() {
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	setMarkdownWordWrap(width - 2)
	m.guide = viewport.New(width, m.height-4)
	m.guide.SetContent(renderGuide())
	m.showGuide = true
}

func (m *model) toggleMarkdownTheme() {
	next := markdownThemeDark
	switch m.markdownTheme {
	case markdownThemeDark:
		next = markdownThemeLight
	case markdownThemeLight:
		next = markdownThemeAuto
	}
	m.markdownTheme = next
	setMarkdownTheme(next)
	m.uiConfig.Theme = next.String()
	if m.uiConfigPath != "" {
		if err := saveUIConfig(m.uiConfig, m.uiConfigPath); err != nil {
			m.log.Warn("save ui config", zap.Error(err))
		}
	}
	m.setToast("Guide theme: "+next.String(), 2*time.Second)
}

func (m *model) copyColor() {
	color, ok := m.focusedColor()
	if !ok {
		m.setToast("No colour to copy", 3*time.Second)
		return
	}
	if err := writeClipboard(color.String()); err != nil {
		m.setToast(fmt.Sprintf("Copy failed: %v", err), 4*time.Second)
		return
	}
	m.setToast("Copied "+color.String(), 3*time.Second)
}

// focusedColor is the highlighted swatch, else the committed background.
func (m *model) focusedColor() (configurator.Color, bool) {
	if _, idx, ok := parseSwatchTarget(m.focus); ok {
		palette := m.cfg.Catalog().Palette()
		if idx >= 0 && idx < len(palette) {
			return palette[idx], true
		}
	}
	return m.cfg.SelectedColor(configurator.ChannelBackground)
}

func (m *model) copySummary() {
	if err := writeClipboard(m.order.summary(m.cfg.Catalog())); err != nil {
		m.setToast(fmt.Sprintf("Copy failed: %v", err), 4*time.Second)
		return
	}
	m.setToast("Design summary copied to clipboard", 3*time.Second)
}

func (m *model) View() string {
	if m.showGuide {
		hint := m.styles.statusHint.Render("esc close • t theme • ↑/↓ scroll")
		return m.styles.app.Render(m.styles.guide.Render(m.guide.View()) + "\n" + hint)
	}

	f := m.buildFrame()
	var builder strings.Builder

	title := fmt.Sprintf("GripGear sock designer • design %d • %d pairs", m.order.template, m.order.quantity)
	builder.WriteString(m.styles.topBar.Width(m.width).Render(title))
	builder.WriteRune('\n')

	sep := m.styles.statusHint.Render(strings.TrimRight(strings.Repeat("│ \n", m.bodyHeight()), "\n"))
	builder.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, f.rail, sep, m.viewport.View()))
	builder.WriteRune('\n')

	builder.WriteString(m.help.View(m.keys))
	builder.WriteRune('\n')
	builder.WriteString(m.renderStatus())

	view := builder.String()
	if tip := m.cfg.Tooltip(); tip.Visible {
		box := m.styles.tooltip.Width(min(tooltipWidth, m.width-2)).Render(tip.Message)
		x := tip.Anchor.Left
		y := tip.Anchor.Top - m.viewport.YOffset + 1
		view = overlayAt(view, m.width, m.height, box, x, y)
	}
	return m.styles.app.Render(view)
}

func (m *model) renderStatus() string {
	active := m.order.router.Active()
	panel := "—"
	if active != configurator.PanelNone {
		panel = active.Label()
	}
	segments := []string{
		m.styles.statusSeg.Render("Panel: " + panel),
	}
	if expanded := m.cfg.Snapshot().Expanded; expanded != configurator.PaletteCollapsed {
		segments = append(segments, m.styles.statusSeg.Render("Palette: "+expanded.String()))
	}
	segments = append(segments, m.styles.statusSeg.Render("Background: "+colorOrDash(m.order.colors.Background)))
	if m.cfg.StripeOffered() {
		segments = append(segments, m.styles.statusSeg.Render("Stripe: "+colorOrDash(m.order.colors.Stripe)))
	}
	if m.toastMessage != "" {
		if time.Now().After(m.toastExpires) {
			m.toastMessage = ""
		} else {
			segments = append(segments, m.styles.statusSeg.Render(m.toastMessage))
		}
	}
	content := strings.Join(segments, lipgloss.NewStyle().Render("│"))
	return m.styles.statusBar.Width(m.width).Render(content)
}

func (m *model) setToast(msg string, duration time.Duration) {
	trimmed := strings.TrimSpace(msg)
	if trimmed == "" {
		m.toastMessage = ""
		m.toastExpires = time.Time{}
		return
	}
	if duration <= 0 {
		duration = 5 * time.Second
	}
	m.toastMessage = trimmed
	m.toastExpires = time.Now().Add(duration)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
