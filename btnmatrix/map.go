package btnmatrix

// RowBreak is the token that ends a row.
const RowBreak = "\n"

// MaxButtons is the largest button count the matrix allocates. Larger maps
// leave the matrix without buttons.
const MaxButtons = 0xFFFE

// Map is a button map: button texts with RowBreak tokens between rows. An
// empty token, or the end of the slice, ends the map.
type Map []string

// DefaultMap returns the map a new matrix starts with.
func DefaultMap() Map {
	return Map{"Btn1", "Btn2", "Btn3", RowBreak, "Btn4", "Btn5", ""}
}

// Rows builds a map from a list of rows.
func Rows(rows ...[]string) Map {
	var m Map
	for i, row := range rows {
		if i > 0 {
			m = append(m, RowBreak)
		}
		m = append(m, row...)
	}
	return append(m, "")
}

// tokens returns the part of the map before the terminator.
func (m Map) tokens() Map {
	for i, t := range m {
		if t == "" {
			return m[:i]
		}
	}
	return m
}

// ButtonCount returns the number of buttons described by the map.
func (m Map) ButtonCount() int {
	n := 0
	for _, t := range m.tokens() {
		if t != RowBreak {
			n++
		}
	}
	return n
}

// RowCount returns one more than the number of row breaks, empty rows
// included.
func (m Map) RowCount() int {
	rows := 1
	for _, t := range m.tokens() {
		if t == RowBreak {
			rows++
		}
	}
	return rows
}

// Text returns the text of button i.
func (m Map) Text(i int) (string, bool) {
	if i < 0 {
		return "", false
	}
	btn := 0
	for _, t := range m.tokens() {
		if t == RowBreak {
			continue
		}
		if btn == i {
			return t, true
		}
		btn++
	}
	return "", false
}

// clone returns a copy that always ends with the terminator.
func (m Map) clone() Map {
	t := m.tokens()
	c := make(Map, len(t), len(t)+1)
	copy(c, t)
	return append(c, "")
}
