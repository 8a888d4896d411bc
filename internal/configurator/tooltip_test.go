package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnchorFor(t *testing.T) {
	trigger := Rect{Top: 4, Left: 30, Bottom: 4, Right: 32}
	assert.Equal(t, Anchor{Top: 4, Left: 32}, AnchorFor(trigger, Offset{}))
	assert.Equal(t, Anchor{Top: 14, Left: 35}, AnchorFor(trigger, Offset{X: 3, Y: 10}))
}

func TestTooltipRequestToggles(t *testing.T) {
	bus := NewBus()
	tip := NewTooltip(bus)

	assert.True(t, tip.Request("Select the quantity...", Anchor{Top: 100, Left: 200}))
	assert.Equal(t, TooltipState{
		Message: "Select the quantity...",
		Visible: true,
		Anchor:  Anchor{Top: 100, Left: 200},
	}, tip.State())
	assert.Equal(t, 1, bus.Listeners())

	assert.False(t, tip.Request("Select the quantity...", Anchor{Top: 100, Left: 200}))
	assert.False(t, tip.Visible())
	assert.Equal(t, 0, bus.Listeners())
}

func TestTooltipDifferentTriggerHides(t *testing.T) {
	tip := NewTooltip(NewBus())
	tip.Request("first", Anchor{Top: 1, Left: 1})
	tip.Request("second", Anchor{Top: 9, Left: 9})

	state := tip.State()
	assert.False(t, state.Visible)
	assert.Equal(t, "second", state.Message)
	assert.Equal(t, Anchor{Top: 9, Left: 9}, state.Anchor)
}

func TestTooltipOutsideInteractionDismisses(t *testing.T) {
	bus := NewBus()
	tip := NewTooltip(bus)
	tip.Request("help", Anchor{Top: 3, Left: 7})

	bus.Publish(Interaction{Target: "template:2", X: 40, Y: 8})

	assert.False(t, tip.Visible())
	assert.Equal(t, 0, bus.Listeners())
}

func TestTooltipOutsideInteractionWhileHiddenIsNoop(t *testing.T) {
	bus := NewBus()
	tip := NewTooltip(bus)

	bus.Publish(Interaction{})
	assert.False(t, tip.Visible())
	assert.False(t, tip.Dismiss())
}

func TestTooltipCloseReleasesListener(t *testing.T) {
	bus := NewBus()
	tip := NewTooltip(bus)
	tip.Request("help", Anchor{})
	assert.Equal(t, 1, bus.Listeners())

	tip.Close()
	assert.Equal(t, 0, bus.Listeners())
	assert.False(t, tip.Visible())
}

func TestTooltipExactlyOneStateAfterEachRequest(t *testing.T) {
	tip := NewTooltip(nil)
	want := false
	for i := 0; i < 7; i++ {
		want = !want
		assert.Equal(t, want, tip.Request("m", Anchor{Top: i}))
		assert.Equal(t, want, tip.Visible())
	}
}
