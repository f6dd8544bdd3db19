package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/OpticalFlyer/btnmatrix/btnmatrix"
)

// debugArea covers the debug overlay text.
var debugArea = btnmatrix.Area{X2: 319, Y2: 63}

var clearColor = color.RGBA{40, 40, 40, 255}

// Controller manages all UI elements: it routes input, tracks keypad focus
// and repaints only what changed.
type Controller struct {
	panels  []*Panel
	input   *Input
	damage  DamageList
	focus   []Focusable
	focused int
	capture Component
	debug   bool

	windowWidth  int
	windowHeight int
}

// NewController creates a new UI controller
func NewController(input *Input) *Controller {
	c := &Controller{
		panels:  make([]*Panel, 0),
		input:   input,
		focused: -1,
	}
	c.damage.InvalidateAll()
	return c
}

// Damage is the controller's repaint list, for components created before
// they are added to a panel.
func (c *Controller) Damage() *DamageList {
	return &c.damage
}

// AddPanel adds a new panel to the UI. Focusable children already in the
// panel join the focus group in order.
func (c *Controller) AddPanel(panel *Panel) {
	panel.SetDamage(&c.damage)
	c.panels = append(c.panels, panel)
	for _, child := range panel.Children() {
		if f, ok := child.(Focusable); ok {
			c.focus = append(c.focus, f)
		}
	}
	c.damage.InvalidateAll()
}

// SetDebug turns the FPS and widget state overlay on or off.
func (c *Controller) SetDebug(on bool) {
	c.debug = on
	c.damage.InvalidateArea(debugArea)
}

func (c *Controller) Debug() bool {
	return c.debug
}

// Update updates all UI elements
func (c *Controller) Update() error {
	for _, panel := range c.panels {
		if err := panel.Update(); err != nil {
			return err
		}
	}
	c.updateCursor()

	events, move := c.input.Poll()
	if !c.IsInteractingWithUI() {
		for _, ev := range events {
			c.dispatch(ev)
		}
	}
	if move.Step != 0 {
		c.moveFocus(move)
	}

	if c.debug {
		c.damage.InvalidateArea(debugArea)
	}
	return nil
}

func (c *Controller) updateCursor() {
	x, y := ebiten.CursorPosition()
	for i := len(c.panels) - 1; i >= 0; i-- {
		if shape, ok := c.panels[i].cursorShape(float64(x), float64(y)); ok {
			ebiten.SetCursorShape(shape)
			return
		}
	}
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}

// dispatch delivers one event. Pointer events go to the component pressed
// first until the press ends; the others go to the focused component.
func (c *Controller) dispatch(ev btnmatrix.Event) {
	var target Component
	if ev.Device == btnmatrix.DevicePointer {
		if ev.Kind == btnmatrix.PointerDown {
			c.capture = c.componentAt(ev.Point)
			if f, ok := c.capture.(Focusable); ok {
				c.setFocus(c.focusIndex(f), btnmatrix.DevicePointer)
			}
		}
		target = c.capture
		if ev.Kind == btnmatrix.PointerUp || ev.Kind == btnmatrix.PressLost {
			c.capture = nil
		}
	} else if c.focused >= 0 {
		target = c.focus[c.focused]
	}
	if target == nil {
		return
	}

	if target.HandleInput(ev).ResetLongPress {
		c.input.ResetLongPress()
	}
}

// componentAt returns the topmost child under p. Panels hide what is
// below them even where they have no child.
func (c *Controller) componentAt(p btnmatrix.Point) Component {
	x, y := float64(p.X), float64(p.Y)
	for i := len(c.panels) - 1; i >= 0; i-- {
		panel := c.panels[i]
		if !panel.Bounds().Contains(x, y) {
			continue
		}
		children := panel.Children()
		for j := len(children) - 1; j >= 0; j-- {
			if children[j].Bounds().Contains(x, y) {
				return children[j]
			}
		}
		return nil
	}
	return nil
}

func (c *Controller) focusIndex(f Focusable) int {
	for i, g := range c.focus {
		if g == f {
			return i
		}
	}
	return -1
}

// Focused returns the component with keypad focus, or nil.
func (c *Controller) Focused() Focusable {
	if c.focused < 0 {
		return nil
	}
	return c.focus[c.focused]
}

func (c *Controller) setFocus(i int, dev btnmatrix.Device) {
	if i < 0 || i == c.focused {
		return
	}
	if c.focused >= 0 {
		c.focus[c.focused].Blur()
	}
	c.focused = i
	c.focus[i].Focus(dev, c.input.Editing())
}

func (c *Controller) moveFocus(m FocusMove) {
	n := len(c.focus)
	if n == 0 {
		return
	}
	c.input.StopEditing()

	next := ((c.focused+m.Step)%n + n) % n
	if c.focused < 0 {
		next = 0
		if m.Step < 0 {
			next = n - 1
		}
	}
	c.setFocus(next, m.Device)
}

// Draw repaints the damaged regions. The screen is expected to keep its
// contents between frames.
func (c *Controller) Draw(screen *ebiten.Image) {
	areas, all := c.damage.Take()
	if all {
		c.redraw(screen)
	} else {
		for _, a := range areas {
			r := image.Rect(a.X1, a.Y1, a.X2+1, a.Y2+1).Intersect(screen.Bounds())
			if r.Empty() {
				continue
			}
			c.redraw(screen.SubImage(r).(*ebiten.Image))
		}
	}

	if c.debug {
		c.ShowDebugInfo(screen)
	}
}

func (c *Controller) redraw(dst *ebiten.Image) {
	dst.Fill(clearColor)
	for _, panel := range c.panels {
		panel.Draw(dst)
	}
}

// UpdateWindowSize updates the window size for all panels
func (c *Controller) UpdateWindowSize(width, height int) {
	if width == c.windowWidth && height == c.windowHeight {
		return
	}
	c.windowWidth = width
	c.windowHeight = height
	c.input.SetScreenSize(width, height)
	for _, panel := range c.panels {
		panel.UpdateWindowSize(width, height)
	}
	c.damage.InvalidateAll()
}

// ShowDebugInfo draws debug information
func (c *Controller) ShowDebugInfo(screen *ebiten.Image) {
	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	msg := fmt.Sprintf("FPS: %.2f TPS: %.2f", fps, tps)
	if d, ok := c.Focused().(interface{ DebugString() string }); ok {
		msg += "\n" + d.DebugString()
	}
	ebitenutil.DebugPrint(screen, msg)
}

// IsInteractingWithUI returns true if any panel is being dragged or resized
func (c *Controller) IsInteractingWithUI() bool {
	for _, panel := range c.panels {
		if panel.Interacting() {
			return true
		}
	}
	return false
}
