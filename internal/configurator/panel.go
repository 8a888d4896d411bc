package configurator

import (
	"errors"
	"strings"
)

// PanelID names the single facet-editing panel that is open. The zero value
// is PanelNone.
type PanelID string

const (
	PanelNone     PanelID = ""
	PanelDesign   PanelID = "design"
	PanelColour   PanelID = "colour"
	PanelLogo     PanelID = "logo"
	PanelQuantity PanelID = "quantity"
)

var ErrUnknownPanel = errors.New("unknown panel")

// Panels lists the rail entries in display order.
var Panels = []PanelID{PanelDesign, PanelColour, PanelLogo, PanelQuantity}

func (p PanelID) Valid() bool {
	switch p {
	case PanelDesign, PanelColour, PanelLogo, PanelQuantity:
		return true
	}
	return false
}

// Label is the capitalised rail caption ("Design", "Colour", ...).
func (p PanelID) Label() string {
	if p == PanelNone {
		return ""
	}
	s := string(p)
	return strings.ToUpper(s[:1]) + s[1:]
}

func (p PanelID) Title() string {
	if p == PanelNone {
		return ""
	}
	return "Select " + p.Label()
}

func (p PanelID) Icon() string {
	switch p {
	case PanelDesign:
		return "/icons/pattern.svg"
	case PanelColour:
		return "/icons/bucket.svg"
	case PanelLogo:
		return "/icons/export.svg"
	case PanelQuantity:
		return "/icons/add.svg"
	}
	return ""
}

// HelpMessage is the contextual help shown by the panel's info icon.
func (p PanelID) HelpMessage() string {
	switch p {
	case PanelDesign:
		return "Choose a standard design for your sock"
	case PanelColour:
		return "Click on the button to change the sock colour."
	case PanelLogo:
		return "Upload or drop a logo, if it's over 500x500 you have to crop it."
	case PanelQuantity:
		return "Select the quantity of socks you want to order."
	}
	return ""
}

func ParsePanel(value string) (PanelID, error) {
	p := PanelID(strings.ToLower(strings.TrimSpace(value)))
	switch {
	case p == PanelNone || p == "none":
		return PanelNone, nil
	case p == "color":
		return PanelColour, nil
	case p.Valid():
		return p, nil
	}
	return PanelNone, ErrUnknownPanel
}

// PanelRouter holds the active panel for the owner of the page. Toggling the
// open panel closes it; toggling any other panel switches to it.
type PanelRouter struct {
	active PanelID
}

func (r *PanelRouter) Active() PanelID {
	return r.active
}

func (r *PanelRouter) Toggle(id PanelID) (PanelID, error) {
	if !id.Valid() {
		return r.active, ErrUnknownPanel
	}
	if r.active == id {
		r.active = PanelNone
	} else {
		r.active = id
	}
	return r.active, nil
}

func (r *PanelRouter) Close() {
	r.active = PanelNone
}

// Step moves to the neighbouring panel in rail order, wrapping around. From
// PanelNone it opens the first (delta > 0) or last panel.
func (r *PanelRouter) Step(delta int) PanelID {
	if delta == 0 {
		return r.active
	}
	idx := -1
	for i, p := range Panels {
		if p == r.active {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = len(Panels) - 1
	default:
		idx = ((idx+delta)%len(Panels) + len(Panels)) % len(Panels)
	}
	r.active = Panels[idx]
	return r.active
}
