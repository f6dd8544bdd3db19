package btnmatrix

import "testing"

func TestHitTestCenters(t *testing.T) {
	m := Rows([]string{"1", "2", "3"}, []string{"4", "5"}, []string{"6"})
	ctrl := []Ctrl{{}, {Width: 3}, {}, {Width: 2}, {}, {}}
	geoms := []Geometry{
		{Width: 200, Height: 120},
		{Width: 200, Height: 120, RowGap: 6, ColumnGap: 9, Padding: Insets{Left: 4, Top: 4, Right: 4, Bottom: 4}},
		{Width: 333, Height: 91, RowGap: 1, ColumnGap: 2, Direction: RightToLeft},
	}
	origin := Point{X: 40, Y: 17}

	for gi, g := range geoms {
		areas := layoutOf(m, ctrl, g)
		for i, a := range areas {
			if a.Width() <= 0 || a.Height() <= 0 {
				continue
			}
			c := a.Offset(origin.X, origin.Y).Center()
			if got := HitTest(areas, c, origin, g); got != At(i) {
				t.Errorf("geometry %d: centre of %d hit %d", gi, i, got.Int())
			}
		}
	}
}

func TestHitTestTolerance(t *testing.T) {
	m := Rows([]string{"A", "B", "C"})
	g := Geometry{Width: 130, Height: 40, ColumnGap: 5,
		Padding: Insets{Left: 10, Top: 10, Right: 10, Bottom: 10}}
	areas := layoutOf(m, nil, g)
	// A: 10..42, B: 48..80, C: 86..119, y 10..29

	tests := []struct {
		name string
		p    Point
		want Index
	}{
		{"gap left half goes to A", Point{45, 20}, At(0)},
		{"A wins the shared pixel", Point{46, 20}, At(0)},
		{"gap right half goes to B", Point{47, 20}, At(1)},
		{"left padding snaps to A", Point{0, 20}, At(0)},
		{"right padding snaps to C", Point{129, 20}, At(2)},
		{"top padding snaps", Point{60, 0}, At(1)},
		{"bottom padding snaps", Point{100, 39}, At(2)},
		{"outside the container", Point{60, 41}, None},
		{"left of the container", Point{-1, 20}, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitTest(areas, tt.p, Point{}, g); got != tt.want {
				t.Errorf("got %d; want %d", got.Int(), tt.want.Int())
			}
		})
	}
}

func TestHitTestClampsExtraArea(t *testing.T) {
	m := Rows([]string{"A"}, []string{"B"})
	g := Geometry{Width: 200, Height: 400, RowGap: 200,
		Padding: Insets{Left: 50, Top: 50, Right: 50, Bottom: 50}}
	areas := layoutOf(m, nil, g)
	// A: y 50..99, B: y 300..349; the 200px gap grows each by 32 only.

	if got := HitTest(areas, Point{X: 60, Y: 99 + ExtraClickAreaMax}, Point{}, g); got != At(0) {
		t.Errorf("got %d; want 0", got.Int())
	}
	if got := HitTest(areas, Point{X: 60, Y: 99 + ExtraClickAreaMax + 1}, Point{}, g); got != None {
		t.Errorf("got %d; want none", got.Int())
	}
	if got := HitTest(areas, Point{X: 50 - ExtraClickAreaMax - 1, Y: 60}, Point{}, g); got != None {
		t.Errorf("left padding: got %d; want none", got.Int())
	}
}

func TestHalfGap(t *testing.T) {
	for gap, want := range map[int]int{0: 1, 1: 2, 2: 2, 5: 4, 6: 4, 10: 6} {
		if got := halfGap(gap); got != want {
			t.Errorf("halfGap(%d) = %d; want %d", gap, got, want)
		}
	}
}
