package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/OpticalFlyer/btnmatrix/btnmatrix"
	"github.com/OpticalFlyer/btnmatrix/config"
)

// Theme resolves button paints from per-state colours. States are layered
// in a fixed order so a checked and pressed button takes the pressed
// colours wherever the pressed layer sets them.
type Theme struct {
	BorderWidth int
	BorderSide  btnmatrix.BorderSide
	Face        text.Face
	LetterSpace int
	LineSpace   int

	layers map[string]config.Colors
	cache  map[btnmatrix.State]btnmatrix.Paint
}

var _ btnmatrix.Styler = (*Theme)(nil)

var layerOrder = []struct {
	name  string
	state btnmatrix.State
}{
	{"checked", btnmatrix.StateChecked},
	{"focused", btnmatrix.StateFocused},
	{"edited", btnmatrix.StateEdited},
	{"pressed", btnmatrix.StatePressed},
	{"disabled", btnmatrix.StateDisabled},
}

// DefaultTheme returns the grey theme used when no colours are configured.
func DefaultTheme() *Theme {
	return &Theme{
		BorderWidth: 1,
		BorderSide:  btnmatrix.BorderFull,
		Face:        DefaultFace,
		layers: map[string]config.Colors{
			"default": {
				Background: color.RGBA{150, 150, 150, 255},
				Text:       color.Black,
				Border:     color.Black,
			},
			"pressed": {Background: color.RGBA{100, 100, 100, 255}, Text: color.White},
			"checked": {Background: color.RGBA{33, 150, 243, 255}, Text: color.White},
			"focused": {Background: color.RGBA{180, 180, 180, 255}, Border: color.RGBA{33, 150, 243, 255}},
			"edited":  {Border: color.RGBA{255, 152, 0, 255}},
			"disabled": {
				Background: color.RGBA{200, 200, 200, 255},
				Text:       color.RGBA{120, 120, 120, 255},
			},
		},
		cache: make(map[btnmatrix.State]btnmatrix.Paint),
	}
}

// NewTheme builds a theme from a resolved style, falling back to
// DefaultTheme for anything the style leaves unset.
func NewTheme(s config.Style) *Theme {
	t := DefaultTheme()
	t.BorderWidth = s.BorderWidth
	if s.BorderInternal {
		t.BorderSide |= btnmatrix.BorderInternal
	}
	for name, c := range s.Colors {
		base := t.layers[name]
		if c.Background != nil {
			base.Background = c.Background
		}
		if c.Text != nil {
			base.Text = c.Text
		}
		if c.Border != nil {
			base.Border = c.Border
		}
		t.layers[name] = base
	}
	return t
}

// Paint implements btnmatrix.Styler.
func (t *Theme) Paint(st btnmatrix.State) btnmatrix.Paint {
	if p, ok := t.cache[st]; ok {
		return p
	}

	def := t.layers["default"]
	p := btnmatrix.Paint{
		Background:  def.Background,
		BorderColor: def.Border,
		BorderWidth: t.BorderWidth,
		BorderSide:  t.BorderSide,
		TextColor:   def.Text,
		Font:        t.Face,
		LetterSpace: t.LetterSpace,
		LineSpace:   t.LineSpace,
	}
	for _, l := range layerOrder {
		if st&l.state == 0 {
			continue
		}
		c := t.layers[l.name]
		if c.Background != nil {
			p.Background = c.Background
		}
		if c.Text != nil {
			p.TextColor = c.Text
		}
		if c.Border != nil {
			p.BorderColor = c.Border
		}
	}

	if t.cache == nil {
		t.cache = make(map[btnmatrix.State]btnmatrix.Paint)
	}
	t.cache[st] = p
	return p
}

