package main

import (
	"fmt"
	"strings"

	"github.com/gripgear/designer/internal/configurator"
	"go.uber.org/zap"
)

// orderState is the page-level owner of the customer's selections. The
// configurator reports commits here; the page decides panel switching and
// pushes display props back.
type orderState struct {
	router   configurator.PanelRouter
	template int
	colors   configurator.ColorSelection
	logos    configurator.LogoSelection
	quantity int
	blurs    int

	journal *selectionJournal
	metrics *commitMetrics
	log     *zap.Logger
}

func newOrderState(journal *selectionJournal, metrics *commitMetrics, logger *zap.Logger) *orderState {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &orderState{
		template: configurator.PlainTemplateID,
		quantity: minQuantity,
		journal:  journal,
		metrics:  metrics,
		log:      logger,
	}
}

func (o *orderState) props() configurator.Props {
	return configurator.Props{
		ActivePanel:      o.router.Active(),
		SelectedTemplate: o.template,
		Quantity:         o.quantity,
	}
}

func (o *orderState) apply(e configurator.Event) {
	switch ev := e.(type) {
	case configurator.PanelToggled:
		if _, err := o.router.Toggle(ev.Panel); err != nil {
			o.log.Warn("panel toggle rejected", zap.String("panel", string(ev.Panel)), zap.Error(err))
		}
	case configurator.TemplateChanged:
		o.template = ev.TemplateID
	case configurator.ColorChanged:
		switch ev.Channel {
		case configurator.ChannelBackground:
			o.colors.Background = ev.Color
		case configurator.ChannelStripe:
			o.colors.Stripe = ev.Color
		}
	case configurator.LogoChanged:
		o.logos = ev.Logos
	case configurator.QuantityChanged:
		o.quantity = ev.Quantity
	case configurator.QuantityBlurred:
		o.blurs++
	}
	o.journal.Record(e)
	o.metrics.Observe(e)
	o.log.Info("selection committed", zap.String("kind", string(e.Kind())))
}

// summary describes the order as it stands, one facet per line.
func (o *orderState) summary(catalog configurator.Catalog) string {
	var b strings.Builder
	design := fmt.Sprintf("Design %d", o.template)
	if t, ok := catalog.Template(o.template); ok {
		if t.Plain() {
			design += " (plain)"
		}
		design += " " + t.PreviewAsset
	}
	b.WriteString(design + "\n")
	b.WriteString("Background: " + colorOrDash(o.colors.Background) + "\n")
	if o.template != configurator.PlainTemplateID {
		b.WriteString("Stripe: " + colorOrDash(o.colors.Stripe) + "\n")
	}
	b.WriteString(fmt.Sprintf("Logos: left %s, right %s, full %s\n",
		valueOrDash(o.logos.Left), valueOrDash(o.logos.Right), valueOrDash(o.logos.Full)))
	b.WriteString(fmt.Sprintf("Quantity: %d\n", o.quantity))
	return b.String()
}

func colorOrDash(c configurator.Color) string {
	if c.Empty() {
		return "—"
	}
	return c.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "—"
	}
	return v
}
