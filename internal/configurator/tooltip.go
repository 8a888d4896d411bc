package configurator

// Anchor is the tooltip position in absolute document coordinates.
type Anchor struct {
	Top  int
	Left int
}

// Rect is a control's on-screen box; Bottom and Right are inclusive edges.
type Rect struct {
	Top, Left, Bottom, Right int
}

// Offset is the document scroll position at the moment of the request.
type Offset struct {
	X, Y int
}

// AnchorFor pins the tooltip to the bottom-right corner of the trigger, in
// document coordinates so it stays put under scrolling.
func AnchorFor(trigger Rect, scroll Offset) Anchor {
	return Anchor{
		Top:  trigger.Bottom + scroll.Y,
		Left: trigger.Right + scroll.X,
	}
}

type TooltipState struct {
	Message string
	Visible bool
	Anchor  Anchor
}

// Tooltip is the help bubble state machine. While visible it listens on the
// bus for outside interactions; the listener is dropped as soon as it hides.
type Tooltip struct {
	state  TooltipState
	bus    *Bus
	cancel func()
}

func NewTooltip(bus *Bus) *Tooltip {
	return &Tooltip{bus: bus}
}

func (t *Tooltip) State() TooltipState {
	return t.state
}

func (t *Tooltip) Visible() bool {
	return t.state.Visible
}

// Request records the message and anchor and flips visibility: a hidden
// tooltip shows, a visible one hides, whichever control asked.
func (t *Tooltip) Request(message string, anchor Anchor) bool {
	t.state.Message = message
	t.state.Anchor = anchor
	if t.state.Visible {
		t.hide()
	} else {
		t.show()
	}
	return t.state.Visible
}

// Dismiss hides a visible tooltip and reports whether anything changed.
func (t *Tooltip) Dismiss() bool {
	if !t.state.Visible {
		return false
	}
	t.hide()
	return true
}

// Close hides the tooltip and releases its bus listener.
func (t *Tooltip) Close() {
	t.hide()
}

func (t *Tooltip) show() {
	t.state.Visible = true
	if t.bus == nil || t.cancel != nil {
		return
	}
	t.cancel = t.bus.Subscribe(func(Interaction) {
		t.Dismiss()
	})
}

func (t *Tooltip) hide() {
	t.state.Visible = false
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
