package configurator

// Interaction is a pointer interaction that landed outside the control that
// raised the current tooltip. Target names the control that was hit, or is
// empty for blank space.
type Interaction struct {
	Target string
	X, Y   int
}

type subscription struct {
	id int
	fn func(Interaction)
}

// Bus is the document-level interaction feed. Listeners are scoped: each
// Subscribe returns a cancel func and a cancelled listener never fires
// again. Bus is not safe for concurrent use; it is driven from the UI loop.
type Bus struct {
	next int
	subs []subscription
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(fn func(Interaction)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	b.next++
	id := b.next
	b.subs = append(b.subs, subscription{id: id, fn: fn})
	return func() { b.remove(id) }
}

func (b *Bus) remove(id int) {
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers the interaction to every listener registered at the time
// of the call. Listeners may cancel themselves while being notified.
func (b *Bus) Publish(i Interaction) {
	if len(b.subs) == 0 {
		return
	}
	snapshot := append([]subscription(nil), b.subs...)
	for _, s := range snapshot {
		if !b.active(s.id) {
			continue
		}
		s.fn(i)
	}
}

func (b *Bus) active(id int) bool {
	for _, s := range b.subs {
		if s.id == id {
			return true
		}
	}
	return false
}

// Listeners reports how many subscriptions are live.
func (b *Bus) Listeners() int {
	return len(b.subs)
}
