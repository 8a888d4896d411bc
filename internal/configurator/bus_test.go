package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.Subscribe(func(Interaction) { got = append(got, "a") })
	bus.Subscribe(func(Interaction) { got = append(got, "b") })

	bus.Publish(Interaction{Target: "rail:design"})
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestBusCancel(t *testing.T) {
	bus := NewBus()
	calls := 0
	cancel := bus.Subscribe(func(Interaction) { calls++ })
	cancel()
	cancel()

	bus.Publish(Interaction{})
	assert.Zero(t, calls)
	assert.Zero(t, bus.Listeners())
}

func TestBusListenerCancelledDuringPublishSkipsLater(t *testing.T) {
	bus := NewBus()
	var second func()
	calls := 0
	bus.Subscribe(func(Interaction) { second() })
	second = bus.Subscribe(func(Interaction) { calls++ })

	bus.Publish(Interaction{})
	assert.Zero(t, calls)
	assert.Equal(t, 1, bus.Listeners())
}

func TestBusNilListener(t *testing.T) {
	bus := NewBus()
	cancel := bus.Subscribe(nil)
	cancel()
	assert.Zero(t, bus.Listeners())
}
