package main

import (
	"testing"

	"github.com/gripgear/designer/internal/configurator"
	"github.com/stretchr/testify/assert"
)

func TestOrderStateApply(t *testing.T) {
	o := newOrderState(nil, nil, nil)
	assert.Equal(t, configurator.Props{SelectedTemplate: 1, Quantity: 1}, o.props())

	o.apply(configurator.PanelToggled{Panel: configurator.PanelColour})
	o.apply(configurator.TemplateChanged{TemplateID: 4})
	o.apply(configurator.ColorChanged{Channel: configurator.ChannelStripe, Color: "#FFCD00"})
	o.apply(configurator.QuantityChanged{Quantity: 24})
	o.apply(configurator.QuantityBlurred{})

	assert.Equal(t, configurator.Props{
		ActivePanel:      configurator.PanelColour,
		SelectedTemplate: 4,
		Quantity:         24,
	}, o.props())
	assert.Equal(t, configurator.Color("#FFCD00"), o.colors.Stripe)
	assert.Equal(t, 1, o.blurs)

	o.apply(configurator.PanelToggled{Panel: configurator.PanelColour})
	assert.Equal(t, configurator.PanelNone, o.router.Active())

	o.apply(configurator.PanelToggled{Panel: "gallery"})
	assert.Equal(t, configurator.PanelNone, o.router.Active())
}

func TestOrderSummary(t *testing.T) {
	catalog := configurator.DefaultCatalog()
	o := newOrderState(nil, nil, nil)
	o.apply(configurator.ColorChanged{Channel: configurator.ChannelBackground, Color: "#004C97"})

	summary := o.summary(catalog)
	assert.Contains(t, summary, "Design 1 (plain) /sock-1.png")
	assert.Contains(t, summary, "Background: #004C97")
	assert.NotContains(t, summary, "Stripe")
	assert.Contains(t, summary, "Logos: left —, right —, full —")

	o.apply(configurator.TemplateChanged{TemplateID: 2})
	o.apply(configurator.LogoChanged{Logos: configurator.LogoSelection{Right: "crest.png"}})
	summary = o.summary(catalog)
	assert.Contains(t, summary, "Stripe: —")
	assert.Contains(t, summary, "right crest.png")
}
