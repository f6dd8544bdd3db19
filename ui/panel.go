package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/btnmatrix/btnmatrix"
)

const (
	titleBarHeight = 20.0
	resizeArea     = 5.0
	panelPadding   = 8.0
	gripSize       = 8.0
	minPanelWidth  = 100.0
	minPanelHeight = 50.0
	panelAlpha     = 200
)

type ResizeState int

const (
	resizeNone ResizeState = iota
	resizeRight
	resizeBottom
	resizeBottomRight
)

var _ Container = (*Panel)(nil)

// Panel is a titled frame that hosts child components. It can be dragged
// by its title bar and resized from its right and bottom edges; resizing
// lays the children out again.
type Panel struct {
	bounds   Rectangle
	Title    string
	children []Component
	layout   Layout
	parent   Container
	damage   btnmatrix.Damage

	// Interaction state
	isDragging                bool
	isResizing                bool
	dragStartX                float64
	dragStartY                float64
	resizeState               ResizeState
	startWidth                float64
	startHeight               float64
	mouseButtonPreviouslyDown bool

	// Window dimensions
	windowWidth  int
	windowHeight int
}

// NewPanel creates a panel. A nil layout means FillLayout.
func NewPanel(x, y, width, height float64, title string, layout Layout) *Panel {
	if layout == nil {
		layout = FillLayout{}
	}
	return &Panel{
		bounds: Rectangle{
			X:      x,
			Y:      y,
			Width:  max(minPanelWidth, width),
			Height: max(minPanelHeight, height),
		},
		Title:        title,
		layout:       layout,
		windowWidth:  800, // Default window size
		windowHeight: 600, // Default window size
	}
}

// SetDamage sets where the panel reports repaints.
func (p *Panel) SetDamage(d btnmatrix.Damage) {
	p.damage = d
}

func (p *Panel) Bounds() Rectangle {
	return p.bounds
}

// SetBounds moves and resizes the panel, enforcing the minimum size, and
// lays out the children.
func (p *Panel) SetBounds(r Rectangle) {
	r.Width = max(minPanelWidth, r.Width)
	r.Height = max(minPanelHeight, r.Height)
	if r == p.bounds {
		return
	}
	p.invalidate()
	p.bounds = r
	p.invalidate()
	p.layout.ArrangeChildren(p)
}

// Resize keeps the top-left corner and changes the size.
func (p *Panel) Resize(width, height float64) {
	p.SetBounds(Rectangle{X: p.bounds.X, Y: p.bounds.Y, Width: width, Height: height})
}

// ContentBounds is the area below the title bar, inside the padding.
func (p *Panel) ContentBounds() Rectangle {
	return Rectangle{
		X:      p.bounds.X + panelPadding,
		Y:      p.bounds.Y + titleBarHeight + panelPadding,
		Width:  max(0, p.bounds.Width-2*panelPadding),
		Height: max(0, p.bounds.Height-titleBarHeight-2*panelPadding),
	}
}

func (p *Panel) AddChild(child Component) {
	child.SetParent(p)
	p.children = append(p.children, child)
	p.layout.ArrangeChildren(p)
}

func (p *Panel) RemoveChild(child Component) {
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			child.SetParent(nil)
			p.invalidate()
			p.layout.ArrangeChildren(p)
			return
		}
	}
}

func (p *Panel) Children() []Component {
	return p.children
}

func (p *Panel) Layout() Layout {
	return p.layout
}

func (p *Panel) SetParent(parent Container) {
	p.parent = parent
}

func (p *Panel) GetParent() Container {
	return p.parent
}

// HandleInput is a no-op; the panel polls the mouse itself in Update.
func (p *Panel) HandleInput(btnmatrix.Event) btnmatrix.Response {
	return btnmatrix.Response{}
}

// UpdateWindowSize keeps the title bar reachable inside the window.
func (p *Panel) UpdateWindowSize(width, height int) {
	p.windowWidth = width
	p.windowHeight = height
	r := p.bounds
	r.X = min(r.X, float64(width)-r.Width)
	r.Y = min(r.Y, float64(height)-titleBarHeight)
	r.X = max(0, r.X)
	r.Y = max(0, r.Y)
	p.SetBounds(r)
}

func (p *Panel) getResizeArea(x, y float64) ResizeState {
	r := p.bounds
	inX := x >= r.X && x <= r.X+r.Width+resizeArea
	inY := y >= r.Y+titleBarHeight && y <= r.Y+r.Height+resizeArea
	right := inY && x >= r.X+r.Width-resizeArea && x <= r.X+r.Width+resizeArea
	bottom := inX && y >= r.Y+r.Height-resizeArea && y <= r.Y+r.Height+resizeArea

	switch {
	case x >= r.X+r.Width-gripSize && y >= r.Y+r.Height-gripSize && inX && inY:
		return resizeBottomRight
	case right && bottom:
		return resizeBottomRight
	case right:
		return resizeRight
	case bottom:
		return resizeBottom
	}
	return resizeNone
}

// cursorShape returns the cursor to show when the mouse is at x, y, or
// false when the panel does not care.
func (p *Panel) cursorShape(x, y float64) (ebiten.CursorShapeType, bool) {
	if p.isDragging {
		return ebiten.CursorShapeMove, true
	}
	rs := p.resizeState
	if !p.isResizing {
		rs = p.getResizeArea(x, y)
	}
	switch rs {
	case resizeRight:
		return ebiten.CursorShapeEWResize, true
	case resizeBottom:
		return ebiten.CursorShapeNSResize, true
	case resizeBottomRight:
		return ebiten.CursorShapeNWSEResize, true
	}
	if p.isInTitleBar(x, y) {
		return ebiten.CursorShapeMove, true
	}
	return ebiten.CursorShapeDefault, false
}

func (p *Panel) Update() error {
	x, y := ebiten.CursorPosition()
	p.handleMouse(float64(x), float64(y), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	for _, c := range p.children {
		if err := c.Update(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Panel) handleMouse(fx, fy float64, isMousePressed bool) {
	if !isMousePressed {
		p.isDragging = false
		p.isResizing = false
		p.mouseButtonPreviouslyDown = false
		return
	}

	if !p.mouseButtonPreviouslyDown {
		p.mouseButtonPreviouslyDown = true
		if rs := p.getResizeArea(fx, fy); rs != resizeNone {
			p.isResizing = true
			p.resizeState = rs
			p.dragStartX = fx
			p.dragStartY = fy
			p.startWidth = p.bounds.Width
			p.startHeight = p.bounds.Height
		} else if p.isInTitleBar(fx, fy) {
			p.isDragging = true
			p.dragStartX = fx - p.bounds.X
			p.dragStartY = fy - p.bounds.Y
		}
	}

	switch {
	case p.isDragging:
		r := p.bounds
		r.X = fx - p.dragStartX
		r.Y = fy - p.dragStartY
		p.SetBounds(r)
	case p.isResizing:
		w, h := p.startWidth, p.startHeight
		if p.resizeState != resizeBottom {
			w += fx - p.dragStartX
		}
		if p.resizeState != resizeRight {
			h += fy - p.dragStartY
		}
		p.Resize(w, h)
	}
}

// Interacting reports whether the panel is being dragged or resized.
func (p *Panel) Interacting() bool {
	return p.isDragging || p.isResizing
}

func (p *Panel) Draw(screen *ebiten.Image) {
	r := p.bounds
	bgColor := color.RGBA{100, 100, 100, panelAlpha}
	titleColor := color.RGBA{60, 60, 60, panelAlpha}

	// Draw panel background
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), bgColor, true)

	// Draw title bar
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(titleBarHeight), titleColor, true)
	op := &text.DrawOptions{}
	op.GeoM.Translate(r.X+6, r.Y+(titleBarHeight-DefaultFace.Metrics().HAscent-DefaultFace.Metrics().HDescent)/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, p.Title, DefaultFace, op)

	// Draw resize grip
	gx, gy := float32(r.X+r.Width), float32(r.Y+r.Height)
	for i := float32(1); i <= 3; i++ {
		d := i * gripSize / 3
		vector.StrokeLine(screen, gx-d, gy-1, gx-1, gy-d, 1, color.RGBA{180, 180, 180, 255}, true)
	}

	for _, c := range p.children {
		c.Draw(screen)
	}
}

func (p *Panel) isInTitleBar(x, y float64) bool {
	return x >= p.bounds.X && x <= p.bounds.X+p.bounds.Width &&
		y >= p.bounds.Y && y <= p.bounds.Y+titleBarHeight
}

func (p *Panel) invalidate() {
	if p.damage == nil {
		return
	}
	a := p.bounds.Area()
	// Antialiased edges and the grip may bleed one pixel out.
	p.damage.InvalidateArea(btnmatrix.Area{X1: a.X1 - 1, Y1: a.Y1 - 1, X2: a.X2 + 1, Y2: a.Y2 + 1})
}
