// Package btnmatrix implements a grid of buttons generated from a textual
// map: layout with per-button widths and right-to-left mirroring, tolerant
// hit testing, and the press/drag/release/focus state machine shared by
// pointer, keypad and encoder input.
//
// The package draws nothing itself. Hosts supply damage tracking, text
// measurement, style resolution and drawing through small interfaces.
package btnmatrix

import "log"

// Damage receives the regions that need repainting. Areas are absolute.
type Damage interface {
	InvalidateArea(a Area)
	InvalidateAll()
}

type noDamage struct{}

func (noDamage) InvalidateArea(Area) {}
func (noDamage) InvalidateAll()      {}

// DefaultSize is the container size of a new matrix (2x1 inches at 130 DPI).
var DefaultSize = Point{X: 260, Y: 130}

// Matrix is a button matrix widget. It is not safe for concurrent use; all
// calls are expected on the UI goroutine.
type Matrix struct {
	tokens Map
	ctrl   []Ctrl
	areas  []Area

	coords  Area
	padding Insets
	rowGap  int
	colGap  int
	dir     Direction

	focused Index
	pressed Index
	active  Index

	oneChecked bool
	recolor    bool
	editing    bool

	damage    Damage
	listeners []func(btn int)
	partHook  func(*PartDraw)
}

// New creates a matrix showing DefaultMap. damage may be nil.
func New(damage Damage) *Matrix {
	if damage == nil {
		damage = noDamage{}
	}
	m := &Matrix{
		damage: damage,
		coords: Area{X2: DefaultSize.X - 1, Y2: DefaultSize.Y - 1},
	}
	m.SetMap(DefaultMap())
	return m
}

// NewFrom creates a matrix with the map, control bits, geometry and
// settings of src. Listeners and hooks are not copied.
func NewFrom(src *Matrix, damage Damage) *Matrix {
	m := New(damage)
	m.coords = src.coords
	m.padding = src.padding
	m.rowGap, m.colGap = src.rowGap, src.colGap
	m.dir = src.dir
	m.oneChecked = src.oneChecked
	m.recolor = src.recolor
	m.SetMap(src.tokens)
	m.SetCtrlMap(src.ctrl)
	return m
}

// Destroy releases the button tables. The matrix stays usable but has no
// buttons until the next SetMap.
func (m *Matrix) Destroy() {
	m.tokens = nil
	m.ctrl = nil
	m.areas = nil
	m.focused, m.pressed, m.active = None, None, None
	m.listeners = nil
	m.partHook = nil
}

// OnValueChanged registers fn to be called with the button index whenever a
// button is triggered.
func (m *Matrix) OnValueChanged(fn func(btn int)) {
	m.listeners = append(m.listeners, fn)
}

// OnDrawPart registers a hook called before each button is drawn. The hook
// may change the paint.
func (m *Matrix) OnDrawPart(fn func(*PartDraw)) {
	m.partHook = fn
}

// SetMap replaces the button map and lays the buttons out again. When the
// button count is unchanged the control bits are kept.
func (m *Matrix) SetMap(tokens Map) {
	m.allocate(tokens)
	m.tokens = tokens.clone()
	m.clampIndices()
	m.relayout()
}

func (m *Matrix) allocate(tokens Map) {
	count := tokens.ButtonCount()
	if count > MaxButtons {
		log.Printf("btnmatrix: map has %d buttons, limit is %d; matrix disabled", count, MaxButtons)
		count = 0
	}
	if count == len(m.ctrl) {
		return
	}
	m.ctrl = make([]Ctrl, count)
	m.areas = make([]Area, count)
}

func (m *Matrix) clampIndices() {
	n := len(m.ctrl)
	for _, x := range []*Index{&m.focused, &m.pressed, &m.active} {
		if i, ok := x.Get(); ok && i >= n {
			*x = None
		}
	}
}

func (m *Matrix) relayout() {
	Layout(m.tokens, m.ctrl, m.geometry(), m.areas)
	m.damage.InvalidateAll()
}

func (m *Matrix) geometry() Geometry {
	return Geometry{
		Width:     m.coords.Width(),
		Height:    m.coords.Height(),
		Padding:   m.padding,
		RowGap:    m.rowGap,
		ColumnGap: m.colGap,
		Direction: m.dir,
	}
}

// Geometry returns the current container geometry.
func (m *Matrix) Geometry() Geometry {
	return m.geometry()
}

// SetCoords moves or resizes the container. a is absolute. Buttons are laid
// out again only when the size changes.
func (m *Matrix) SetCoords(a Area) {
	old := m.coords
	if a == old {
		return
	}
	m.damage.InvalidateArea(old)
	m.coords = a
	if a.Width() != old.Width() || a.Height() != old.Height() {
		m.relayout()
		return
	}
	m.damage.InvalidateAll()
}

// Coords returns the absolute container area.
func (m *Matrix) Coords() Area {
	return m.coords
}

// SetPadding sets the container padding and lays the buttons out again.
func (m *Matrix) SetPadding(p Insets) {
	m.padding = p
	m.relayout()
}

// SetGap sets the gaps between rows and columns.
func (m *Matrix) SetGap(row, column int) {
	m.rowGap, m.colGap = row, column
	m.relayout()
}

// SetDirection sets the base text direction.
func (m *Matrix) SetDirection(d Direction) {
	m.dir = d
	m.relayout()
}

// SetCtrlMap copies per-button control bits. Extra entries are ignored and
// missing ones left unchanged.
func (m *Matrix) SetCtrlMap(ctrl []Ctrl) {
	copy(m.ctrl, ctrl)
	for i := range m.ctrl {
		m.ctrl[i].Width &= widthMask
	}
	if m.oneChecked {
		for i, c := range m.ctrl {
			if c.Checked {
				m.makeOneChecked(i)
				break
			}
		}
	}
	m.relayout()
}

// CtrlMap returns a copy of the control bits.
func (m *Matrix) CtrlMap() []Ctrl {
	out := make([]Ctrl, len(m.ctrl))
	copy(out, m.ctrl)
	return out
}

// SetFocusedButton focuses x. Out of range indices are ignored.
func (m *Matrix) SetFocusedButton(x Index) {
	if i, ok := x.Get(); ok && i >= len(m.ctrl) {
		return
	}
	if x == m.focused {
		return
	}
	m.focused = x
	m.damage.InvalidateAll()
}

// SetRecolor enables inline colour commands in button texts.
func (m *Matrix) SetRecolor(en bool) {
	m.recolor = en
	m.damage.InvalidateAll()
}

// Recolor reports whether inline colour commands are enabled.
func (m *Matrix) Recolor() bool {
	return m.recolor
}

// SetButtonFlag sets the flags f on button i. In one-checked mode setting
// FlagChecked clears it on every other button first.
func (m *Matrix) SetButtonFlag(i int, f Flag) {
	if i < 0 || i >= len(m.ctrl) {
		return
	}
	if m.oneChecked && f&FlagChecked != 0 {
		m.ClearButtonFlagAll(FlagChecked)
	}
	m.ctrl[i] = m.ctrl[i].with(f, true)
	m.invalidateButton(At(i))
}

// ClearButtonFlag clears the flags f on button i.
func (m *Matrix) ClearButtonFlag(i int, f Flag) {
	if i < 0 || i >= len(m.ctrl) {
		return
	}
	m.ctrl[i] = m.ctrl[i].with(f, false)
	m.invalidateButton(At(i))
}

// SetButtonFlagAll sets f on every button.
func (m *Matrix) SetButtonFlagAll(f Flag) {
	for i := range m.ctrl {
		m.SetButtonFlag(i, f)
	}
}

// ClearButtonFlagAll clears f on every button.
func (m *Matrix) ClearButtonFlagAll(f Flag) {
	for i := range m.ctrl {
		m.ClearButtonFlag(i, f)
	}
}

// HasFlag reports whether button i has every flag in f.
func (m *Matrix) HasFlag(i int, f Flag) bool {
	if i < 0 || i >= len(m.ctrl) {
		return false
	}
	return m.ctrl[i].Has(f)
}

// SetButtonWidth sets the relative width of button i (1-7) and lays the
// buttons out again.
func (m *Matrix) SetButtonWidth(i int, units uint8) {
	if i < 0 || i >= len(m.ctrl) {
		return
	}
	m.ctrl[i].Width = units & widthMask
	m.relayout()
}

// SetOneChecked turns single-check mode on or off. Turning it on keeps only
// the first checked button.
func (m *Matrix) SetOneChecked(en bool) {
	m.oneChecked = en
	if !en {
		return
	}
	for i, c := range m.ctrl {
		if c.Checked {
			m.makeOneChecked(i)
			return
		}
	}
}

// OneChecked reports whether single-check mode is on.
func (m *Matrix) OneChecked() bool {
	return m.oneChecked
}

// makeOneChecked clears the checked bit on every button but keep.
func (m *Matrix) makeOneChecked(keep int) {
	was := m.ctrl[keep].Checked
	for i := range m.ctrl {
		if i != keep && m.ctrl[i].Checked {
			m.ctrl[i].Checked = false
			m.invalidateButton(At(i))
		}
	}
	m.ctrl[keep].Checked = was
	m.invalidateButton(At(keep))
}

// Map returns a copy of the current button map.
func (m *Matrix) Map() Map {
	return m.tokens.clone()
}

// ButtonCount returns the number of buttons.
func (m *Matrix) ButtonCount() int {
	return len(m.ctrl)
}

// ButtonText returns the text of button i.
func (m *Matrix) ButtonText(i int) (string, bool) {
	if i < 0 || i >= len(m.ctrl) {
		return "", false
	}
	return m.tokens.Text(i)
}

// ButtonArea returns the area of button i relative to the container.
func (m *Matrix) ButtonArea(i int) (Area, bool) {
	if i < 0 || i >= len(m.areas) {
		return Area{}, false
	}
	return m.areas[i], true
}

func (m *Matrix) ActiveButton() Index  { return m.active }
func (m *Matrix) PressedButton() Index { return m.pressed }
func (m *Matrix) FocusedButton() Index { return m.focused }

// Editing reports whether the last event came from an encoder in edit mode.
func (m *Matrix) Editing() bool { return m.editing }

func (m *Matrix) invalidateButton(x Index) {
	i, ok := x.Get()
	if !ok || i >= len(m.areas) {
		return
	}
	m.damage.InvalidateArea(m.areas[i].Offset(m.coords.X1, m.coords.Y1))
}

func (m *Matrix) emit(btn int) {
	for _, fn := range m.listeners {
		fn(btn)
	}
}
