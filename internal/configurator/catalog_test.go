package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.Equal(t, 6, c.Len())

	tpl, ok := c.Template(1)
	require.True(t, ok)
	assert.True(t, tpl.Plain())
	assert.Equal(t, "/sock-1.png", tpl.PreviewAsset)

	tpl, ok = c.Template(6)
	require.True(t, ok)
	assert.False(t, tpl.Plain())

	_, ok = c.Template(7)
	assert.False(t, ok)

	palette := c.Palette()
	require.Len(t, palette, 38)
	assert.Equal(t, Color("#767676"), palette[0])
	assert.Equal(t, Color("#00B2A9"), palette[33])
	assert.Equal(t, Color("#FFFFFF"), palette[37])
}

func TestCatalogIsImmutable(t *testing.T) {
	c := DefaultCatalog()
	templates := c.Templates()
	templates[0].PreviewAsset = "/changed.png"
	palette := c.Palette()
	palette[0] = "#000000"

	tpl, _ := c.Template(1)
	assert.Equal(t, "/sock-1.png", tpl.PreviewAsset)
	assert.Equal(t, Color("#767676"), c.Palette()[0])
}

func TestNewCatalogValidation(t *testing.T) {
	_, err := NewCatalog(nil, PresetPalette)
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = NewCatalog([]Template{{ID: 1}, {ID: 1}}, nil)
	assert.ErrorContains(t, err, "duplicate")

	_, err = NewCatalog([]Template{{ID: 0}}, nil)
	assert.ErrorContains(t, err, "positive")

	_, err = NewCatalog([]Template{{ID: 1}}, []Color{"#FFFFFF", ""})
	assert.ErrorIs(t, err, ErrEmptyColor)
}

func TestPaletteStateChannel(t *testing.T) {
	assert.Equal(t, ChannelBackground, PaletteBackground.Channel())
	assert.Equal(t, ChannelStripe, PaletteStripe.Channel())
	assert.Equal(t, ColorChannel(""), PaletteCollapsed.Channel())
	assert.Equal(t, "collapsed", PaletteCollapsed.String())

	ch, err := ParseChannel("Stripe")
	require.NoError(t, err)
	assert.Equal(t, ChannelStripe, ch)
	_, err = ParseChannel("toe")
	assert.ErrorIs(t, err, ErrUnknownChannel)
}
