package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gripgear/designer/internal/configurator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (*model, *[]string) {
	t.Helper()
	var copied []string
	previous := writeClipboard
	writeClipboard = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	t.Cleanup(func() { writeClipboard = previous })

	m := newModel(modelOptions{
		catalog:  configurator.DefaultCatalog(),
		uiConfig: defaultUIConfig(t.TempDir()),
	})
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, &copied
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func screenTarget(t *testing.T, m *model, target string) hitRegion {
	t.Helper()
	r, ok := m.screenRegions(m.buildFrame()).find(target)
	require.True(t, ok, "target %s not on screen", target)
	return r
}

func TestPanelKeysToggleAndSwitch(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("2"))
	assert.Equal(t, configurator.PanelColour, m.order.router.Active())
	assert.Equal(t, configurator.PanelColour, m.cfg.Props().ActivePanel)

	press(m, runes("2"))
	assert.Equal(t, configurator.PanelNone, m.order.router.Active())

	press(m, runes("1"), runes("3"))
	assert.Equal(t, configurator.PanelLogo, m.order.router.Active())
}

func TestTabCyclesPanels(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, configurator.PanelDesign, m.order.router.Active())
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, configurator.PanelColour, m.order.router.Active())
	press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, configurator.PanelQuantity, m.order.router.Active())
}

func TestTemplateGridNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("1"))
	assert.Equal(t, templateTarget(1), m.focus)

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, templateTarget(2), m.focus)

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, templateTarget(5), m.focus)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 5, m.order.template)
	assert.Equal(t, 5, m.cfg.Props().SelectedTemplate)
	assert.True(t, m.cfg.StripeOffered())
}

func TestStripePaletteNeedsStripedTemplate(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("s"))
	assert.Equal(t, configurator.PanelColour, m.order.router.Active())
	assert.Equal(t, configurator.PaletteCollapsed, m.cfg.Snapshot().Expanded)
	assert.Contains(t, m.toastMessage, "unavailable")

	require.NoError(t, m.cfg.SelectTemplate(3))
	press(m, runes("s"))
	assert.True(t, m.cfg.PaletteExpanded(configurator.ChannelStripe))
	assert.Equal(t, swatchTarget(configurator.ChannelStripe, 0), m.focus)

	press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, configurator.PresetPalette[1], m.order.colors.Stripe)
	assert.True(t, m.order.colors.Background.Empty())
}

func TestBackgroundPaletteExclusiveWithStripe(t *testing.T) {
	m, _ := newTestModel(t)
	require.NoError(t, m.cfg.SelectTemplate(2))

	press(m, runes("b"))
	assert.True(t, m.cfg.PaletteExpanded(configurator.ChannelBackground))
	press(m, runes("s"))
	assert.True(t, m.cfg.PaletteExpanded(configurator.ChannelStripe))
	assert.False(t, m.cfg.PaletteExpanded(configurator.ChannelBackground))
}

func TestMouseClickOnRail(t *testing.T) {
	m, _ := newTestModel(t)

	design := screenTarget(t, m, railTarget(configurator.PanelDesign))
	press(m, click(design.left+1, design.top))
	assert.Equal(t, configurator.PanelDesign, m.order.router.Active())

	colour := screenTarget(t, m, railTarget(configurator.PanelColour))
	press(m, click(colour.left+1, colour.top))
	assert.Equal(t, configurator.PanelColour, m.order.router.Active())

	press(m, click(colour.left+1, colour.top))
	assert.Equal(t, configurator.PanelNone, m.order.router.Active())
}

func TestMouseSelectsTemplateAndSwatch(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("1"))

	cell := screenTarget(t, m, templateTarget(4))
	press(m, click(cell.left, cell.top))
	assert.Equal(t, 4, m.order.template)

	press(m, runes("2"))
	toggle := screenTarget(t, m, paletteTarget(configurator.ChannelBackground))
	press(m, click(toggle.right, toggle.top))
	require.True(t, m.cfg.PaletteExpanded(configurator.ChannelBackground))

	swatch := screenTarget(t, m, swatchTarget(configurator.ChannelBackground, 10))
	press(m, click(swatch.left+1, swatch.top))
	assert.Equal(t, configurator.PresetPalette[10], m.order.colors.Background)
}

func TestHelpTooltipLifecycle(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("1"))

	icon := screenTarget(t, m, helpTarget(configurator.PanelDesign))
	press(m, click(icon.left, icon.top))

	tip := m.cfg.Tooltip()
	require.True(t, tip.Visible)
	assert.Equal(t, configurator.PanelDesign.HelpMessage(), tip.Message)
	assert.Equal(t, configurator.Anchor{Top: icon.bottom, Left: icon.right}, tip.Anchor)
	assert.Equal(t, 1, m.cfg.Bus().Listeners())
	assert.Contains(t, m.View(), "Choose a standard design")

	// a click on empty space is an outside interaction
	press(m, click(m.width-1, m.height-3))
	assert.False(t, m.cfg.Tooltip().Visible)
	assert.Zero(t, m.cfg.Bus().Listeners())

	press(m, click(icon.left, icon.top))
	require.True(t, m.cfg.Tooltip().Visible)
	press(m, click(icon.left, icon.top))
	assert.False(t, m.cfg.Tooltip().Visible)
}

func TestHelpKeyAndEscape(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("?"))
	assert.False(t, m.cfg.Tooltip().Visible)
	assert.Contains(t, m.toastMessage, "Open a panel")

	press(m, runes("4"), runes("?"))
	tip := m.cfg.Tooltip()
	require.True(t, tip.Visible)
	assert.Equal(t, configurator.PanelQuantity.HelpMessage(), tip.Message)

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.cfg.Tooltip().Visible)
}

func TestQuantityEntryAndBlur(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("4"))
	assert.Equal(t, targetQtyDec, m.focus)

	input := screenTarget(t, m, targetQtyInput)
	press(m, click(input.left+1, input.top))
	require.True(t, m.qty.Focused())

	press(m, runes("2"))
	assert.Equal(t, 12, m.order.quantity)
	assert.Equal(t, 12, m.cfg.Props().Quantity)

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.qty.Focused())
	assert.Equal(t, 1, m.order.blurs)

	inc := screenTarget(t, m, targetQtyInc)
	press(m, click(inc.left, inc.top))
	assert.Equal(t, 13, m.order.quantity)
}

func TestQuantityBlursWhenPanelChanges(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("4"))
	m.activate(targetQtyInput)
	require.True(t, m.qty.Focused())

	design := screenTarget(t, m, railTarget(configurator.PanelDesign))
	press(m, click(design.left, design.top))
	assert.False(t, m.qty.Focused())
	assert.Equal(t, 1, m.order.blurs)
	assert.Equal(t, configurator.PanelDesign, m.order.router.Active())
}

func TestLogoApply(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("3"))
	assert.Equal(t, logoTarget(logoLeft), m.focus)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.logos.Editing())
	press(m, runes("crest.png"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, runes("wordmark.svg"))
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.logos.Editing())
	assert.Equal(t, configurator.LogoSelection{Left: "crest.png", Full: "wordmark.svg"}, m.order.logos)
}

func TestCopyColourAndSummary(t *testing.T) {
	m, copied := newTestModel(t)

	press(m, runes("y"))
	assert.Empty(t, *copied)

	press(m, runes("b"), tea.KeyMsg{Type: tea.KeyRight})
	press(m, runes("y"))
	require.Len(t, *copied, 1)
	assert.Equal(t, configurator.PresetPalette[1].String(), (*copied)[0])

	press(m, runes("Y"))
	require.Len(t, *copied, 2)
	assert.Contains(t, (*copied)[1], "Quantity: 1")
}

func TestViewShowsOpenPanel(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Contains(t, m.View(), "Pick a facet")

	press(m, runes("2"))
	view := m.View()
	assert.Contains(t, view, "Select Colour")
	assert.Contains(t, view, "Background Colour")
	assert.NotContains(t, view, "Stripe Colour")
}

func TestPanelKeyDismissesTooltip(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("1"), runes("?"))
	require.True(t, m.cfg.Tooltip().Visible)
	require.Equal(t, 1, m.cfg.Bus().Listeners())

	press(m, runes("2"))
	assert.Equal(t, configurator.PanelColour, m.order.router.Active())
	assert.False(t, m.cfg.Tooltip().Visible)
	assert.Zero(t, m.cfg.Bus().Listeners())

	press(m, runes("?"))
	tip := m.cfg.Tooltip()
	require.True(t, tip.Visible)
	assert.Equal(t, configurator.PanelColour.HelpMessage(), tip.Message)
	assert.Equal(t, 1, m.cfg.Bus().Listeners())
}

func TestKeyboardActionsDismissTooltip(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyTab},
		{Type: tea.KeyShiftTab},
		runes("b"),
		runes("x"),
		{Type: tea.KeyEsc},
	} {
		t.Run(msg.String(), func(t *testing.T) {
			m, _ := newTestModel(t)
			press(m, runes("2"), runes("?"))
			require.True(t, m.cfg.Tooltip().Visible)

			press(m, msg)
			assert.False(t, m.cfg.Tooltip().Visible)
			assert.Zero(t, m.cfg.Bus().Listeners())
		})
	}
}

func TestMovingFocusKeepsTooltip(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("1"), runes("?"))
	require.True(t, m.cfg.Tooltip().Visible)

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, m.cfg.Tooltip().Visible)
}

func TestEnterOnHelpIconToggles(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("1"))
	m.focus = helpTarget(configurator.PanelDesign)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.cfg.Tooltip().Visible)
	assert.Equal(t, configurator.PanelDesign.HelpMessage(), m.cfg.Tooltip().Message)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.cfg.Tooltip().Visible)
	assert.Zero(t, m.cfg.Bus().Listeners())
}

func TestStartPanelOpensAtLaunch(t *testing.T) {
	start, err := configurator.ParsePanel("quantity")
	require.NoError(t, err)

	m := newModel(modelOptions{
		catalog:    configurator.DefaultCatalog(),
		uiConfig:   defaultUIConfig(t.TempDir()),
		startPanel: start,
	})
	t.Cleanup(m.Close)

	assert.Equal(t, configurator.PanelQuantity, m.order.router.Active())
	assert.Equal(t, configurator.PanelQuantity, m.cfg.Props().ActivePanel)
}

func TestClearedLogosToast(t *testing.T) {
	m, _ := newTestModel(t)

	m.cfg.SelectLogos(configurator.LogoSelection{Left: "crest.png"})
	assert.Contains(t, m.toastMessage, "left crest.png")

	m.cfg.SelectLogos(configurator.LogoSelection{})
	assert.True(t, m.order.logos.Empty())
	assert.Equal(t, "Logos cleared", m.toastMessage)
}

func TestQuantityHintShowsCurrentValue(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("4"))
	assert.Contains(t, m.View(), "1 pairs (1 to 9999)")

	inc := screenTarget(t, m, targetQtyInc)
	press(m, click(inc.left, inc.top))
	assert.Contains(t, m.View(), "2 pairs (1 to 9999)")
}
