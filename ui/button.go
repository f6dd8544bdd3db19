package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/btnmatrix/btnmatrix"
)

var _ Focusable = (*Button)(nil)

// Button is a single push button drawn with the same theme as the matrix.
type Button struct {
	bounds  Rectangle
	text    string
	onClick func()
	parent  Container
	theme   *Theme
	damage  btnmatrix.Damage

	// State
	isPressed bool
	isFocused bool
}

func NewButton(text string, theme *Theme, damage btnmatrix.Damage, onClick func()) *Button {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Button{
		bounds:  Rectangle{Width: 100, Height: 30},
		text:    text,
		onClick: onClick,
		theme:   theme,
		damage:  damage,
	}
}

func (b *Button) SetParent(parent Container) {
	b.parent = parent
}

func (b *Button) GetParent() Container {
	return b.parent
}

// SetText changes the label.
func (b *Button) SetText(text string) {
	if text == b.text {
		return
	}
	b.text = text
	b.invalidate()
}

func (b *Button) Text() string {
	return b.text
}

func (b *Button) Update() error {
	return nil
}

func (b *Button) Draw(screen *ebiten.Image) {
	var st btnmatrix.State
	if b.isPressed {
		st |= btnmatrix.StatePressed
	}
	if b.isFocused {
		st |= btnmatrix.StateFocused
	}
	p := b.theme.Paint(st)
	a := b.bounds.Area()

	c := NewCanvas(screen)
	c.FillRect(a, p)

	w, h := Measurer{}.Measure(b.text, p, a.Width())
	ta := btnmatrix.Area{X1: a.X1 + (a.Width()-w)/2, Y1: a.Y1 + (a.Height()-h)/2}
	ta.X2, ta.Y2 = ta.X1+w, ta.Y1+h
	c.DrawText(ta, p, b.text)
}

// HandleInput presses on PointerDown and clicks when released over the
// button. Keypad presses always click.
func (b *Button) HandleInput(ev btnmatrix.Event) btnmatrix.Response {
	pointer := ev.Device == btnmatrix.DevicePointer
	inside := !pointer || b.bounds.Contains(float64(ev.Point.X), float64(ev.Point.Y))

	switch ev.Kind {
	case btnmatrix.PointerDown:
		b.setPressed(inside)
	case btnmatrix.PointerMove:
		if pointer {
			b.setPressed(inside)
		}
	case btnmatrix.PointerUp:
		if b.isPressed {
			b.setPressed(false)
			if b.onClick != nil {
				b.onClick()
			}
		}
	case btnmatrix.PressLost, btnmatrix.FocusLost:
		b.setPressed(false)
	}
	return btnmatrix.Response{}
}

func (b *Button) setPressed(on bool) {
	if b.isPressed != on {
		b.isPressed = on
		b.invalidate()
	}
}

func (b *Button) Focus(btnmatrix.Device, bool) {
	b.isFocused = true
	b.invalidate()
}

func (b *Button) Blur() {
	b.isFocused = false
	b.isPressed = false
	b.invalidate()
}

func (b *Button) Bounds() Rectangle {
	return b.bounds
}

func (b *Button) SetBounds(r Rectangle) {
	b.invalidate()
	b.bounds = r
	b.invalidate()
}

func (b *Button) invalidate() {
	if b.damage != nil {
		b.damage.InvalidateArea(b.bounds.Area())
	}
}
