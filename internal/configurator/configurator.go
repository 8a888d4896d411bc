// Package configurator is the selection core of the sock designer: which
// facet panel is open, the colour channels and their palettes, template
// gating of the stripe channel, and the contextual help tooltip.
//
// The package knows nothing about rendering. Display state flows in through
// SetProps and committed selections flow out, synchronously, as Events.
package configurator

import (
	"fmt"

	"go.uber.org/zap"
)

// Props is the display state owned by the page around the configurator.
type Props struct {
	ActivePanel      PanelID
	SelectedTemplate int
	Quantity         int
}

type TemplateOption struct {
	Template
	Selected bool
}

// Snapshot is a copy of everything a renderer needs for one frame.
type Snapshot struct {
	Props
	Templates     []TemplateOption
	Palette       []Color
	StripeOffered bool
	Expanded      PaletteState
	Colors        ColorSelection
	Tooltip       TooltipState
}

type Option func(*Configurator)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Configurator) {
		if logger != nil {
			c.log = logger
		}
	}
}

// WithBus attaches the tooltip to an existing interaction bus, usually the
// one the surrounding screen publishes clicks to.
func WithBus(bus *Bus) Option {
	return func(c *Configurator) {
		if bus != nil {
			c.bus = bus
		}
	}
}

func WithProps(props Props) Option {
	return func(c *Configurator) {
		c.props = props
	}
}

type Configurator struct {
	catalog Catalog
	handler Handler
	log     *zap.Logger
	bus     *Bus

	props    Props
	expanded PaletteState
	colors   ColorSelection
	tooltip  *Tooltip
}

func New(catalog Catalog, handler Handler, opts ...Option) *Configurator {
	c := &Configurator{
		catalog: catalog,
		handler: handler,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.bus == nil {
		c.bus = NewBus()
	}
	c.tooltip = NewTooltip(c.bus)
	return c
}

func (c *Configurator) SetProps(props Props) {
	c.props = props
}

func (c *Configurator) Props() Props {
	return c.props
}

func (c *Configurator) Catalog() Catalog {
	return c.catalog
}

func (c *Configurator) Bus() *Bus {
	return c.bus
}

func (c *Configurator) emit(e Event) {
	c.log.Debug("commit", zap.String("kind", string(e.Kind())), zap.Any("event", e))
	if c.handler != nil {
		c.handler(e)
	}
}

// TogglePanel asks the page to open or close a panel. The active panel only
// changes once the page pushes new Props back.
func (c *Configurator) TogglePanel(id PanelID) error {
	if !id.Valid() {
		return fmt.Errorf("toggle %q: %w", id, ErrUnknownPanel)
	}
	c.emit(PanelToggled{Panel: id})
	return nil
}

func (c *Configurator) SelectTemplate(id int) error {
	if _, ok := c.catalog.Template(id); !ok {
		return fmt.Errorf("select template %d: %w", id, ErrUnknownTemplate)
	}
	c.emit(TemplateChanged{TemplateID: id})
	return nil
}

func (c *Configurator) TemplateOptions() []TemplateOption {
	templates := c.catalog.Templates()
	out := make([]TemplateOption, 0, len(templates))
	for _, t := range templates {
		out = append(out, TemplateOption{Template: t, Selected: t.ID == c.props.SelectedTemplate})
	}
	return out
}

// StripeOffered reports whether the stripe channel has any controls under
// the current template.
func (c *Configurator) StripeOffered() bool {
	return c.props.SelectedTemplate != PlainTemplateID
}

func (c *Configurator) ChannelOffered(ch ColorChannel) bool {
	switch ch {
	case ChannelBackground:
		return true
	case ChannelStripe:
		return c.StripeOffered()
	}
	return false
}

func (c *Configurator) checkChannel(ch ColorChannel) error {
	if !ch.Valid() {
		return ErrUnknownChannel
	}
	if !c.ChannelOffered(ch) {
		return ErrChannelUnavailable
	}
	return nil
}

// TogglePalette expands the channel's swatches, collapsing the other
// channel, or collapses them when already expanded.
func (c *Configurator) TogglePalette(ch ColorChannel) error {
	if err := c.checkChannel(ch); err != nil {
		return fmt.Errorf("toggle %s palette: %w", ch, err)
	}
	if c.expanded == paletteFor(ch) {
		c.expanded = PaletteCollapsed
	} else {
		c.expanded = paletteFor(ch)
	}
	return nil
}

// Expanded is the palette state as last toggled. A stripe expansion made
// under a striped template survives a switch to the plain template; it is
// hidden, not reset. Use PaletteExpanded for what is shown.
func (c *Configurator) Expanded() PaletteState {
	return c.expanded
}

func (c *Configurator) PaletteExpanded(ch ColorChannel) bool {
	return c.expanded == paletteFor(ch) && c.ChannelOffered(ch)
}

// SelectColor records the colour for the channel and commits it. The
// palette stays expanded.
func (c *Configurator) SelectColor(ch ColorChannel, color Color) error {
	if err := c.checkChannel(ch); err != nil {
		return fmt.Errorf("select %s colour: %w", ch, err)
	}
	if color.Empty() {
		return fmt.Errorf("select %s colour: %w", ch, ErrEmptyColor)
	}
	c.colors.set(ch, color)
	c.emit(ColorChanged{Channel: ch, Color: color})
	return nil
}

func (c *Configurator) SelectedColor(ch ColorChannel) (Color, bool) {
	return c.colors.Get(ch)
}

// SelectLogos relays the logo picker's committed triple.
func (c *Configurator) SelectLogos(logos LogoSelection) {
	c.emit(LogoChanged{Logos: logos})
}

// ChangeQuantity passes the quantity control's value through unmodified.
func (c *Configurator) ChangeQuantity(value int) {
	c.emit(QuantityChanged{Quantity: value})
}

func (c *Configurator) BlurQuantity() {
	c.emit(QuantityBlurred{})
}

func (c *Configurator) RequestTooltip(message string, anchor Anchor) TooltipState {
	c.tooltip.Request(message, anchor)
	state := c.tooltip.State()
	c.log.Debug("tooltip",
		zap.Bool("visible", state.Visible),
		zap.Int("top", state.Anchor.Top),
		zap.Int("left", state.Anchor.Left),
	)
	return state
}

// RequestHelp toggles the panel's help tooltip, anchored below and right of
// the info icon that was activated.
func (c *Configurator) RequestHelp(panel PanelID, trigger Rect, scroll Offset) (TooltipState, error) {
	if !panel.Valid() {
		return c.tooltip.State(), fmt.Errorf("help for %q: %w", panel, ErrUnknownPanel)
	}
	return c.RequestTooltip(panel.HelpMessage(), AnchorFor(trigger, scroll)), nil
}

func (c *Configurator) Tooltip() TooltipState {
	return c.tooltip.State()
}

// Interact publishes an interaction outside the tooltip's trigger.
func (c *Configurator) Interact(i Interaction) {
	c.bus.Publish(i)
}

func (c *Configurator) Snapshot() Snapshot {
	expanded := c.expanded
	if !c.StripeOffered() && expanded == PaletteStripe {
		expanded = PaletteCollapsed
	}
	return Snapshot{
		Props:         c.props,
		Templates:     c.TemplateOptions(),
		Palette:       c.catalog.Palette(),
		StripeOffered: c.StripeOffered(),
		Expanded:      expanded,
		Colors:        c.colors,
		Tooltip:       c.tooltip.State(),
	}
}

// Close tears down the tooltip's bus listener. The configurator must not be
// used afterwards.
func (c *Configurator) Close() {
	c.tooltip.Close()
}
