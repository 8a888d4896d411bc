package configurator

import (
	"errors"
	"fmt"
	"strings"
)

// PlainTemplateID is the template without a stripe facet.
const PlainTemplateID = 1

var (
	ErrUnknownTemplate = errors.New("unknown template")
	ErrEmptyCatalog    = errors.New("catalog has no templates")
)

type Template struct {
	ID           int
	PreviewAsset string
}

func (t Template) Plain() bool {
	return t.ID == PlainTemplateID
}

// Color is an opaque colour value, usually a "#RRGGBB" hex string. Any
// non-empty value is accepted.
type Color string

func (c Color) Empty() bool {
	return strings.TrimSpace(string(c)) == ""
}

func (c Color) String() string {
	return string(c)
}

// PresetPalette is the ordered swatch list offered for both channels. The
// order is the display order.
var PresetPalette = []Color{
	"#767676", "#F1EB9C", "#E9EC6B", "#FEDD00", "#FFCD00", "#FFB81C",
	"#FF8200", "#FF8674", "#FE5000", "#F9423A", "#E4002B", "#A6192E",
	"#8E1E1E", "#D50032", "#6C1D45", "#CE0058", "#FABBCB", "#E31C79",
	"#9678D3", "#582C83", "#D48BC8", "#93328E", "#6A3460", "#005A6F",
	"#008C96", "#6ECEB2", "#8BB8E8", "#004C97", "#171C8F", "#003865",
	"#BDD6E6", "#8DC8E8", "#5BC2E7", "#00B2A9", "#0057B7", "#051C2C",
	"#000000", "#FFFFFF",
}

func DefaultTemplates() []Template {
	templates := make([]Template, 0, 6)
	for id := 1; id <= 6; id++ {
		templates = append(templates, Template{ID: id, PreviewAsset: fmt.Sprintf("/sock-%d.png", id)})
	}
	return templates
}

// Catalog is the immutable template and palette list for one session.
type Catalog struct {
	templates []Template
	palette   []Color
	index     map[int]int
}

func NewCatalog(templates []Template, palette []Color) (Catalog, error) {
	if len(templates) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}
	c := Catalog{
		templates: append([]Template(nil), templates...),
		index:     make(map[int]int, len(templates)),
	}
	for i, t := range c.templates {
		if t.ID < 1 {
			return Catalog{}, fmt.Errorf("template id %d: must be positive", t.ID)
		}
		if _, dup := c.index[t.ID]; dup {
			return Catalog{}, fmt.Errorf("template id %d: duplicate", t.ID)
		}
		c.index[t.ID] = i
	}
	for _, color := range palette {
		if color.Empty() {
			return Catalog{}, ErrEmptyColor
		}
		c.palette = append(c.palette, color)
	}
	return c, nil
}

// DefaultCatalog is the reference catalog: six templates and the 38 presets.
func DefaultCatalog() Catalog {
	c, err := NewCatalog(DefaultTemplates(), PresetPalette)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Catalog) Templates() []Template {
	return append([]Template(nil), c.templates...)
}

func (c Catalog) Palette() []Color {
	return append([]Color(nil), c.palette...)
}

func (c Catalog) Template(id int) (Template, bool) {
	i, ok := c.index[id]
	if !ok {
		return Template{}, false
	}
	return c.templates[i], true
}

func (c Catalog) Len() int {
	return len(c.templates)
}
