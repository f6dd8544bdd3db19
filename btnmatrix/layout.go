package btnmatrix

// Geometry is everything the layout engine needs to know about the
// container. Width and Height are the full container size; Padding is
// subtracted to get the content box.
type Geometry struct {
	Width, Height int
	Padding       Insets
	RowGap        int
	ColumnGap     int
	Direction     Direction
}

func (g Geometry) contentWidth() int {
	return max(0, g.Width-g.Padding.Left-g.Padding.Right)
}

func (g Geometry) contentHeight() int {
	return max(0, g.Height-g.Padding.Top-g.Padding.Bottom)
}

// Layout computes the area of every button of m inside a container
// described by g and stores it in out, relative to the container's top-left
// corner. ctrl supplies the width units; missing entries count as one unit.
// out must hold one area per button.
//
// Rows share the content height evenly and buttons share their row's width
// in proportion to their units. Both use floor division at each boundary,
// so later rows and buttons may end up one pixel larger. Empty rows take no
// band.
func Layout(m Map, ctrl []Ctrl, g Geometry, out []Area) {
	tokens := m.tokens()
	rows := nonEmptyRows(tokens)
	if rows == 0 {
		return
	}

	contentW := g.contentWidth()
	hNoGap := max(0, g.contentHeight()-g.RowGap*(rows-1))

	units := func(btn int) int {
		if btn < len(ctrl) {
			return ctrl[btn].Units()
		}
		return 1
	}

	btn := 0
	band := 0
	for start := 0; start <= len(tokens); {
		end := start
		for end < len(tokens) && tokens[end] != RowBreak {
			end++
		}
		count := end - start
		start = end + 1
		if count == 0 {
			continue
		}

		y1 := g.Padding.Top + hNoGap*band/rows + band*g.RowGap
		y2 := g.Padding.Top + hNoGap*(band+1)/rows + band*g.RowGap - 1
		band++

		unitCnt := 0
		for i := 0; i < count; i++ {
			unitCnt += units(btn + i)
		}
		wNoGap := max(0, contentW-g.ColumnGap*(count-1))

		unitPos := 0
		for col := 0; col < count; col, btn = col+1, btn+1 {
			u := units(btn)
			x1 := g.Padding.Left + wNoGap*unitPos/unitCnt + col*g.ColumnGap
			x2 := g.Padding.Left + wNoGap*(unitPos+u)/unitCnt + col*g.ColumnGap - 1
			if g.Direction == RightToLeft {
				x1, x2 = mirror(x2, g.Padding.Left, contentW), mirror(x1, g.Padding.Left, contentW)
			}
			if btn < len(out) {
				out[btn] = Area{X1: x1, Y1: y1, X2: x2, Y2: y2}
			}
			unitPos += u
		}
	}
}

// mirror reflects x inside the content box starting at left.
func mirror(x, left, contentW int) int {
	return 2*left + contentW - 1 - x
}

func nonEmptyRows(tokens Map) int {
	rows := 0
	inRow := false
	for _, t := range tokens {
		if t == RowBreak {
			inRow = false
			continue
		}
		if !inRow {
			rows++
			inRow = true
		}
	}
	return rows
}
