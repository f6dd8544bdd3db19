package ui

// contentBounds returns the area a container lays its children out in.
func contentBounds(c Container) Rectangle {
	if p, ok := c.(interface{ ContentBounds() Rectangle }); ok {
		return p.ContentBounds()
	}
	return c.Bounds()
}

// FillLayout gives every child the whole content area.
type FillLayout struct{}

func (FillLayout) ArrangeChildren(container Container) {
	r := contentBounds(container)
	for _, child := range container.Children() {
		child.SetBounds(r)
	}
}

// StackLayout places children top to bottom, each RowHeight tall and as
// wide as the content area.
type StackLayout struct {
	RowHeight float64
	Spacing   float64
}

func (l StackLayout) ArrangeChildren(container Container) {
	r := contentBounds(container)
	y := r.Y
	for _, child := range container.Children() {
		child.SetBounds(Rectangle{X: r.X, Y: y, Width: r.Width, Height: l.RowHeight})
		y += l.RowHeight + l.Spacing
	}
}
