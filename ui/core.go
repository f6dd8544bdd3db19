package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/btnmatrix/btnmatrix"
)

// Component represents the basic building block of the UI system.
// All UI elements must implement this interface.
type Component interface {
	Update() error
	Draw(screen *ebiten.Image)
	Bounds() Rectangle
	SetBounds(r Rectangle)
	HandleInput(ev btnmatrix.Event) btnmatrix.Response
	SetParent(parent Container)
	GetParent() Container
}

// Focusable is a Component that can join the keypad focus group.
type Focusable interface {
	Component
	Focus(dev btnmatrix.Device, editing bool)
	Blur()
}

// Container represents a Component that can hold and manage other Components.
type Container interface {
	Component
	AddChild(child Component)
	RemoveChild(child Component)
	Children() []Component
	Layout() Layout
}

// Rectangle represents the bounds of a Component
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside the rectangle.
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Area converts the rectangle to whole pixels.
func (r Rectangle) Area() btnmatrix.Area {
	x1 := int(math.Round(r.X))
	y1 := int(math.Round(r.Y))
	return btnmatrix.Area{
		X1: x1,
		Y1: y1,
		X2: x1 + int(math.Round(r.Width)) - 1,
		Y2: y1 + int(math.Round(r.Height)) - 1,
	}
}

func rectFromArea(a btnmatrix.Area) Rectangle {
	return Rectangle{
		X:      float64(a.X1),
		Y:      float64(a.Y1),
		Width:  float64(a.Width()),
		Height: float64(a.Height()),
	}
}

// Layout defines how Components are arranged within a Container
type Layout interface {
	ArrangeChildren(container Container)
}
