package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/btnmatrix/btnmatrix"
)

var _ Component = (*Label)(nil)

// Label shows one line of read-only text.
type Label struct {
	bounds Rectangle
	text   string
	parent Container
	damage btnmatrix.Damage
}

func NewLabel(text string, damage btnmatrix.Damage) *Label {
	return &Label{bounds: Rectangle{Width: 100, Height: 20}, text: text, damage: damage}
}

func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.invalidate()
}

func (l *Label) Text() string {
	return l.text
}

func (l *Label) Update() error {
	return nil
}

func (l *Label) Draw(screen *ebiten.Image) {
	a := l.bounds.Area()
	p := btnmatrix.Paint{TextColor: color.White}
	_, h := Measurer{}.Measure(l.text, p, 0)
	y := a.Y1 + (a.Height()-h)/2
	w := advance(l.text, DefaultFace, 0)
	NewCanvas(screen).DrawText(btnmatrix.Area{X1: a.X1, Y1: y, X2: a.X1 + int(w), Y2: y + h}, p, l.text)
}

func (l *Label) Bounds() Rectangle {
	return l.bounds
}

func (l *Label) SetBounds(r Rectangle) {
	l.invalidate()
	l.bounds = r
	l.invalidate()
}

func (l *Label) HandleInput(btnmatrix.Event) btnmatrix.Response {
	return btnmatrix.Response{}
}

func (l *Label) SetParent(parent Container) {
	l.parent = parent
}

func (l *Label) GetParent() Container {
	return l.parent
}

func (l *Label) invalidate() {
	if l.damage != nil {
		l.damage.InvalidateArea(l.bounds.Area())
	}
}
