package configurator

// EventKind tags the Event variants.
type EventKind string

const (
	KindPanelToggled    EventKind = "panel_toggled"
	KindTemplateChanged EventKind = "template_changed"
	KindColorChanged    EventKind = "color_changed"
	KindLogoChanged     EventKind = "logo_changed"
	KindQuantityChanged EventKind = "quantity_changed"
	KindQuantityBlurred EventKind = "quantity_blurred"
)

// Event is a committed selection or intent signal sent to the page that owns
// order state. Exactly one of the types below implements it.
type Event interface {
	Kind() EventKind
}

type PanelToggled struct {
	Panel PanelID
}

type TemplateChanged struct {
	TemplateID int
}

type ColorChanged struct {
	Channel ColorChannel
	Color   Color
}

// LogoSelection is the logo triple built by the logo picker. Empty fields
// mean no logo at that placement.
type LogoSelection struct {
	Left  string
	Right string
	Full  string
}

func (l LogoSelection) Empty() bool {
	return l.Left == "" && l.Right == "" && l.Full == ""
}

type LogoChanged struct {
	Logos LogoSelection
}

type QuantityChanged struct {
	Quantity int
}

type QuantityBlurred struct{}

func (PanelToggled) Kind() EventKind    { return KindPanelToggled }
func (TemplateChanged) Kind() EventKind { return KindTemplateChanged }
func (ColorChanged) Kind() EventKind    { return KindColorChanged }
func (LogoChanged) Kind() EventKind     { return KindLogoChanged }
func (QuantityChanged) Kind() EventKind { return KindQuantityChanged }
func (QuantityBlurred) Kind() EventKind { return KindQuantityBlurred }

// Handler receives every event synchronously, in commit order.
type Handler func(Event)

// Fanout returns a Handler that forwards to each non-nil handler in order.
func Fanout(handlers ...Handler) Handler {
	return func(e Event) {
		for _, h := range handlers {
			if h != nil {
				h(e)
			}
		}
	}
}

// Callbacks is the per-facet callback set. Handler turns it into a single
// event Handler; nil callbacks are skipped.
type Callbacks struct {
	ToggleSidebar           func(panel PanelID)
	OnLogoSelect            func(leftLogoID, rightLogoID, fullLogoID string)
	OnBackgroundColorSelect func(color Color)
	OnStripeColorSelect     func(color Color)
	OnTemplateChange        func(templateID int)
	OnQuantityChange        func(value int)
	OnQuantityBlur          func()
}

func (cb Callbacks) Handler() Handler {
	return func(e Event) {
		switch ev := e.(type) {
		case PanelToggled:
			if cb.ToggleSidebar != nil {
				cb.ToggleSidebar(ev.Panel)
			}
		case TemplateChanged:
			if cb.OnTemplateChange != nil {
				cb.OnTemplateChange(ev.TemplateID)
			}
		case ColorChanged:
			switch ev.Channel {
			case ChannelBackground:
				if cb.OnBackgroundColorSelect != nil {
					cb.OnBackgroundColorSelect(ev.Color)
				}
			case ChannelStripe:
				if cb.OnStripeColorSelect != nil {
					cb.OnStripeColorSelect(ev.Color)
				}
			}
		case LogoChanged:
			if cb.OnLogoSelect != nil {
				cb.OnLogoSelect(ev.Logos.Left, ev.Logos.Right, ev.Logos.Full)
			}
		case QuantityChanged:
			if cb.OnQuantityChange != nil {
				cb.OnQuantityChange(ev.Quantity)
			}
		case QuantityBlurred:
			if cb.OnQuantityBlur != nil {
				cb.OnQuantityBlur()
			}
		}
	}
}
