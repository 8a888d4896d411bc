package configurator

import (
	"errors"
	"strings"
)

type ColorChannel string

const (
	ChannelBackground ColorChannel = "background"
	ChannelStripe     ColorChannel = "stripe"
)

var (
	ErrChannelUnavailable = errors.New("colour channel unavailable for template")
	ErrEmptyColor         = errors.New("empty colour")
	ErrUnknownChannel     = errors.New("unknown colour channel")
)

// Channels lists the colour channels in display order.
var Channels = []ColorChannel{ChannelBackground, ChannelStripe}

func (ch ColorChannel) Valid() bool {
	return ch == ChannelBackground || ch == ChannelStripe
}

// Label is the toggle button caption.
func (ch ColorChannel) Label() string {
	switch ch {
	case ChannelBackground:
		return "Background Colour"
	case ChannelStripe:
		return "Stripe Colour"
	}
	return ""
}

func ParseChannel(value string) (ColorChannel, error) {
	ch := ColorChannel(strings.ToLower(strings.TrimSpace(value)))
	if !ch.Valid() {
		return "", ErrUnknownChannel
	}
	return ch, nil
}

// PaletteState records which channel's palette is expanded. A single field
// keeps both palettes from being open together.
type PaletteState int

const (
	PaletteCollapsed PaletteState = iota
	PaletteBackground
	PaletteStripe
)

func paletteFor(ch ColorChannel) PaletteState {
	switch ch {
	case ChannelBackground:
		return PaletteBackground
	case ChannelStripe:
		return PaletteStripe
	}
	return PaletteCollapsed
}

// Channel returns the expanded channel, or "" when collapsed.
func (p PaletteState) Channel() ColorChannel {
	switch p {
	case PaletteBackground:
		return ChannelBackground
	case PaletteStripe:
		return ChannelStripe
	}
	return ""
}

func (p PaletteState) String() string {
	if ch := p.Channel(); ch != "" {
		return string(ch)
	}
	return "collapsed"
}

// ColorSelection holds the committed colour per channel.
type ColorSelection struct {
	Background Color
	Stripe     Color
}

func (s ColorSelection) Get(ch ColorChannel) (Color, bool) {
	var c Color
	switch ch {
	case ChannelBackground:
		c = s.Background
	case ChannelStripe:
		c = s.Stripe
	}
	return c, !c.Empty()
}

func (s *ColorSelection) set(ch ColorChannel, c Color) {
	switch ch {
	case ChannelBackground:
		s.Background = c
	case ChannelStripe:
		s.Stripe = c
	}
}
