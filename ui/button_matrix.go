package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/btnmatrix/btnmatrix"
)

var (
	_ Focusable        = (*ButtonMatrix)(nil)
	_ btnmatrix.Damage = (*ButtonMatrix)(nil)
)

// ButtonMatrix hosts a btnmatrix.Matrix as a UI component.
type ButtonMatrix struct {
	m      *btnmatrix.Matrix
	bounds Rectangle
	parent Container
	theme  *Theme
	damage btnmatrix.Damage
}

// NewButtonMatrix creates a matrix with the default map. Repaints are
// reported to damage, which may be nil.
func NewButtonMatrix(theme *Theme, damage btnmatrix.Damage) *ButtonMatrix {
	if theme == nil {
		theme = DefaultTheme()
	}
	b := &ButtonMatrix{theme: theme, damage: damage}
	b.m = btnmatrix.New(b)
	b.bounds = rectFromArea(b.m.Coords())
	return b
}

// Matrix returns the wrapped widget.
func (b *ButtonMatrix) Matrix() *btnmatrix.Matrix {
	return b.m
}

func (b *ButtonMatrix) InvalidateArea(a btnmatrix.Area) {
	if b.damage != nil {
		b.damage.InvalidateArea(a)
	}
}

// InvalidateAll repaints the component, not the whole screen.
func (b *ButtonMatrix) InvalidateAll() {
	b.InvalidateArea(b.bounds.Area())
}

func (b *ButtonMatrix) Update() error {
	return nil
}

// Draw paints the buttons that fall inside screen's bounds, so a sub-image
// redraws only that region.
func (b *ButtonMatrix) Draw(screen *ebiten.Image) {
	r := screen.Bounds()
	clip := btnmatrix.Area{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X - 1, Y2: r.Max.Y - 1}
	b.m.Draw(NewCanvas(screen), b.theme, Measurer{}, clip)
}

func (b *ButtonMatrix) Bounds() Rectangle {
	return b.bounds
}

func (b *ButtonMatrix) SetBounds(r Rectangle) {
	b.bounds = r
	b.m.SetCoords(r.Area())
}

func (b *ButtonMatrix) HandleInput(ev btnmatrix.Event) btnmatrix.Response {
	return b.m.Handle(ev)
}

func (b *ButtonMatrix) Focus(dev btnmatrix.Device, editing bool) {
	b.m.Handle(btnmatrix.Event{Kind: btnmatrix.FocusGained, Device: dev, Editing: editing})
}

func (b *ButtonMatrix) Blur() {
	b.m.Handle(btnmatrix.Event{Kind: btnmatrix.FocusLost})
}

func (b *ButtonMatrix) SetParent(parent Container) {
	b.parent = parent
}

func (b *ButtonMatrix) GetParent() Container {
	return b.parent
}

// DebugString reports the active, pressed and focused buttons.
func (b *ButtonMatrix) DebugString() string {
	return fmt.Sprintf("active %d pressed %d focused %d editing %v",
		b.m.ActiveButton().Int(), b.m.PressedButton().Int(), b.m.FocusedButton().Int(), b.m.Editing())
}
