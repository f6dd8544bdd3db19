package btnmatrix

// ExtraClickAreaMax caps how far a button's clickable region grows beyond
// its drawn area (a quarter inch at 130 DPI).
const ExtraClickAreaMax = 32

// HitTest returns the first button whose enlarged area contains p. p and
// origin are absolute; origin is the container's top-left corner and areas
// are relative to it.
//
// Buttons grow by half of the neighbouring gap on every side, and sides that
// touch the content box edge grow out to the padding, so there is no dead
// zone between buttons or between a button and the container border. Hidden
// and disabled buttons are tested too; callers decide what to do with them.
func HitTest(areas []Area, p Point, origin Point, g Geometry) Index {
	prow := min(halfGap(g.RowGap), ExtraClickAreaMax)
	pcol := min(halfGap(g.ColumnGap), ExtraClickAreaMax)
	pleft := min(g.Padding.Left, ExtraClickAreaMax)
	ptop := min(g.Padding.Top, ExtraClickAreaMax)
	pright := min(g.Padding.Right, ExtraClickAreaMax)
	pbottom := min(g.Padding.Bottom, ExtraClickAreaMax)

	for i, a := range areas {
		b := a.Offset(origin.X, origin.Y)
		if a.X1 <= g.Padding.Left {
			b.X1 -= pleft
		} else {
			b.X1 -= pcol
		}
		if a.Y1 <= g.Padding.Top {
			b.Y1 -= ptop
		} else {
			b.Y1 -= prow
		}
		// -2 absorbs the rounding of the layout divisions.
		if a.X2 >= g.Width-g.Padding.Right-2 {
			b.X2 += pright
		} else {
			b.X2 += pcol
		}
		if a.Y2 >= g.Height-g.Padding.Bottom-2 {
			b.Y2 += pbottom
		} else {
			b.Y2 += prow
		}
		if b.Contains(p) {
			return At(i)
		}
	}
	return None
}

// halfGap rounds half a gap up and adds one pixel for rounding errors.
func halfGap(gap int) int {
	return gap/2 + 1 + gap&1
}
