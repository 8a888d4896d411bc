package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gripgear/designer/internal/configurator"
)

type logoSlot int

const (
	logoLeft logoSlot = iota
	logoRight
	logoFull
	logoSlotCount
)

func (s logoSlot) Label() string {
	switch s {
	case logoLeft:
		return "Left"
	case logoRight:
		return "Right"
	case logoFull:
		return "Full"
	}
	return ""
}

var logoImageTypes = []string{".png", ".jpg", ".jpeg", ".svg", ".webp"}

// logoPicker collects the three logo placements. Uploading and cropping
// belong to the storefront; here a logo is identified by the file (or id)
// the customer enters or browses to. Apply commits the triple.
type logoPicker struct {
	inputs        [logoSlotCount]textinput.Model
	editing       logoSlot
	editingActive bool

	browser    filepicker.Model
	browsing   bool
	browseSlot logoSlot

	previewHeight int
	startDir      string
	onLogoSelect  func(left, right, full string)
}

func newLogoPicker(onLogoSelect func(left, right, full string), previewHeight int) *logoPicker {
	p := &logoPicker{onLogoSelect: onLogoSelect, previewHeight: previewHeight}
	for i := range p.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = "logo id or file"
		in.CharLimit = 256
		in.Width = 22
		p.inputs[i] = in
	}
	if p.previewHeight < 4 {
		p.previewHeight = 4
	}
	if home, err := os.UserHomeDir(); err == nil {
		p.startDir = home
	} else {
		p.startDir = "."
	}
	return p
}

func (p *logoPicker) Selection() configurator.LogoSelection {
	return configurator.LogoSelection{
		Left:  strings.TrimSpace(p.inputs[logoLeft].Value()),
		Right: strings.TrimSpace(p.inputs[logoRight].Value()),
		Full:  strings.TrimSpace(p.inputs[logoFull].Value()),
	}
}

func (p *logoPicker) SetSelection(sel configurator.LogoSelection) {
	values := [logoSlotCount]string{sel.Left, sel.Right, sel.Full}
	for i, v := range values {
		if !p.inputs[i].Focused() {
			p.inputs[i].SetValue(v)
		}
	}
}

func (p *logoPicker) Editing() bool {
	return p.editingActive
}

func (p *logoPicker) Browsing() bool {
	return p.browsing
}

func (p *logoPicker) Edit(slot logoSlot) tea.Cmd {
	p.Blur()
	p.editing = slot
	p.editingActive = true
	return p.inputs[slot].Focus()
}

func (p *logoPicker) Blur() {
	p.editingActive = false
	for i := range p.inputs {
		p.inputs[i].Blur()
	}
}

func (p *logoPicker) Browse(slot logoSlot) tea.Cmd {
	p.Blur()
	fp := filepicker.New()
	fp.AllowedTypes = logoImageTypes
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.ShowHidden = false
	fp.AutoHeight = false
	fp.Height = p.previewHeight
	fp.CurrentDirectory = p.startDir
	if current := strings.TrimSpace(p.inputs[slot].Value()); current != "" {
		if dir := filepath.Dir(current); dirExists(dir) {
			fp.CurrentDirectory = dir
		}
	}
	p.browser = fp
	p.browsing = true
	p.browseSlot = slot
	return p.browser.Init()
}

func (p *logoPicker) CancelBrowse() {
	p.browsing = false
}

func (p *logoPicker) Clear(slot logoSlot) {
	p.inputs[slot].SetValue("")
}

// Apply commits the current triple to onLogoSelect.
func (p *logoPicker) Apply() {
	p.Blur()
	sel := p.Selection()
	if p.onLogoSelect != nil {
		p.onLogoSelect(sel.Left, sel.Right, sel.Full)
	}
}

func (p *logoPicker) Update(msg tea.Msg) tea.Cmd {
	if p.browsing {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			p.browsing = false
			return nil
		}
		var cmd tea.Cmd
		p.browser, cmd = p.browser.Update(msg)
		if selected, path := p.browser.DidSelectFile(msg); selected {
			p.inputs[p.browseSlot].SetValue(path)
			p.startDir = filepath.Dir(path)
			p.browsing = false
		}
		return cmd
	}
	if !p.editingActive {
		return nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			p.Blur()
			return nil
		case "enter":
			p.Apply()
			return nil
		case "tab":
			return p.Edit((p.editing + 1) % logoSlotCount)
		case "shift+tab":
			return p.Edit((p.editing + logoSlotCount - 1) % logoSlotCount)
		}
	}
	var cmd tea.Cmd
	p.inputs[p.editing], cmd = p.inputs[p.editing].Update(msg)
	return cmd
}

func (p *logoPicker) InputView(slot logoSlot) string {
	return p.inputs[slot].View()
}

func (p *logoPicker) BrowserView() string {
	return p.browser.View()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
