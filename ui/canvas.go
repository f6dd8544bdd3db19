package ui

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/OpticalFlyer/btnmatrix/btnmatrix"
)

// DefaultFace is used when a paint carries no text.Face.
var DefaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

func faceOf(p btnmatrix.Paint) text.Face {
	if f, ok := p.Font.(text.Face); ok && f != nil {
		return f
	}
	return DefaultFace
}

// Canvas draws matrix buttons onto an ebiten image.
type Canvas struct {
	dst *ebiten.Image
}

var _ btnmatrix.Canvas = (*Canvas)(nil)

func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

// FillRect draws the background and the borders selected by p.BorderSide.
func (c *Canvas) FillRect(a btnmatrix.Area, p btnmatrix.Paint) {
	x, y := float32(a.X1), float32(a.Y1)
	w, h := float32(a.Width()), float32(a.Height())
	if w <= 0 || h <= 0 {
		return
	}

	if p.Background != nil {
		vector.DrawFilledRect(c.dst, x, y, w, h, p.Background, false)
	}

	if p.BorderWidth <= 0 || p.BorderColor == nil {
		return
	}
	bw := float32(p.BorderWidth)
	if bw > w/2 {
		bw = w / 2
	}
	if bw > h/2 {
		bw = h / 2
	}
	if p.BorderSide&btnmatrix.BorderTop != 0 {
		vector.DrawFilledRect(c.dst, x, y, w, bw, p.BorderColor, false)
	}
	if p.BorderSide&btnmatrix.BorderBottom != 0 {
		vector.DrawFilledRect(c.dst, x, y+h-bw, w, bw, p.BorderColor, false)
	}
	if p.BorderSide&btnmatrix.BorderLeft != 0 {
		vector.DrawFilledRect(c.dst, x, y, bw, h, p.BorderColor, false)
	}
	if p.BorderSide&btnmatrix.BorderRight != 0 {
		vector.DrawFilledRect(c.dst, x+w-bw, y, bw, h, p.BorderColor, false)
	}
}

// DrawText draws text with its top-left corner at a. Lines are centred
// within the width of a.
func (c *Canvas) DrawText(a btnmatrix.Area, p btnmatrix.Paint, s string) {
	face := faceOf(p)
	lineHeight := lineHeightOf(face, p)

	y := float64(a.Y1)
	for _, line := range strings.Split(s, "\n") {
		spans := []btnmatrix.Span{{Text: line, Color: p.TextColor}}
		if p.Recolor {
			spans = btnmatrix.ParseRecolor(line)
		}

		var lw float64
		for _, sp := range spans {
			lw += advance(sp.Text, face, p.LetterSpace)
		}
		x := float64(a.X1) + (float64(a.Width())-lw)/2

		for _, sp := range spans {
			col := sp.Color
			if col == nil {
				col = p.TextColor
			}
			if col == nil {
				col = color.Black
			}
			x = c.drawSpan(sp.Text, face, p.LetterSpace, x, y, col)
		}
		y += lineHeight
	}
}

// drawSpan draws one run of text and returns the pen position after it.
func (c *Canvas) drawSpan(s string, face text.Face, letterSpace int, x, y float64, col color.Color) float64 {
	if s == "" {
		return x
	}
	if letterSpace == 0 {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(col)
		text.Draw(c.dst, s, face, op)
		return x + text.Advance(s, face)
	}

	for s != "" {
		_, size := utf8.DecodeRuneInString(s)
		ch := s[:size]
		s = s[size:]
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(col)
		text.Draw(c.dst, ch, face, op)
		x += text.Advance(ch, face) + float64(letterSpace)
	}
	return x
}

// Measurer measures button labels with text/v2 faces.
type Measurer struct{}

var _ btnmatrix.TextMeasurer = Measurer{}

// Measure returns the size of the widest line and the total height. Inline
// colour commands are not counted when p.Recolor is set. The width is
// clipped to maxWidth when maxWidth is positive.
func (Measurer) Measure(s string, p btnmatrix.Paint, maxWidth int) (w, h int) {
	if p.Recolor {
		s = btnmatrix.StripRecolor(s)
	}
	face := faceOf(p)
	lines := strings.Split(s, "\n")

	var widest float64
	for _, line := range lines {
		if lw := advance(line, face, p.LetterSpace); lw > widest {
			widest = lw
		}
	}
	w = int(widest + 0.5)
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	h = int(lineHeightOf(face, p)*float64(len(lines)) - float64(p.LineSpace) + 0.5)
	return w, h
}

func advance(s string, face text.Face, letterSpace int) float64 {
	if s == "" {
		return 0
	}
	adv := text.Advance(s, face)
	if letterSpace != 0 {
		adv += float64(letterSpace * (utf8.RuneCountInString(s) - 1))
	}
	return adv
}

func lineHeightOf(face text.Face, p btnmatrix.Paint) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + float64(p.LineSpace)
}
