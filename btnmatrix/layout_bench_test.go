package btnmatrix

import "testing"

func BenchmarkLayout(b *testing.B) {
	m := Rows(
		[]string{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p"},
		[]string{"a", "s", "d", "f", "g", "h", "j", "k", "l"},
		[]string{"z", "x", "c", "v", "b", "n", "m"},
		[]string{"space"},
	)
	ctrl := make([]Ctrl, m.ButtonCount())
	ctrl[len(ctrl)-1].Width = 7
	g := Geometry{Width: 480, Height: 200, RowGap: 4, ColumnGap: 4,
		Padding: Insets{Left: 8, Top: 8, Right: 8, Bottom: 8}}
	out := make([]Area, len(ctrl))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Layout(m, ctrl, g, out)
	}
}
