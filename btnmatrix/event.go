package btnmatrix

// EventKind identifies an input event delivered to the matrix.
type EventKind uint8

const (
	// PointerDown starts a press at Event.Point, or on the focused button
	// for keypads and encoders in edit mode.
	PointerDown EventKind = iota
	// PointerMove tracks a held pointer.
	PointerMove
	// PointerUp ends a press.
	PointerUp
	// PressLost cancels a press, e.g. the pointer left the window.
	PressLost
	// LongPressTick repeats while a press is held past the long-press time.
	LongPressTick
	// FocusGained is sent when the matrix becomes the focused widget.
	FocusGained
	// FocusLost is sent when the matrix loses focus.
	FocusLost
	// Navigate moves focus in Event.Dir.
	Navigate
)

var eventNames = [...]string{"pointer_down", "pointer_move", "pointer_up", "press_lost",
	"long_press_tick", "focus_gained", "focus_lost", "navigate"}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Device is the kind of input device that produced an event.
type Device uint8

const (
	DevicePointer Device = iota
	DeviceButton
	DeviceKeypad
	DeviceEncoder
)

func (d Device) String() string {
	switch d {
	case DevicePointer:
		return "pointer"
	case DeviceButton:
		return "button"
	case DeviceKeypad:
		return "keypad"
	case DeviceEncoder:
		return "encoder"
	default:
		return "unknown"
	}
}

// directional reports whether the device moves focus rather than point at
// buttons.
func (d Device) directional() bool {
	return d == DeviceKeypad || d == DeviceEncoder
}

// NavDirection is the direction of a Navigate event.
type NavDirection uint8

const (
	NavLeft NavDirection = iota
	NavRight
	NavUp
	NavDown
)

func (d NavDirection) String() string {
	switch d {
	case NavLeft:
		return "Left"
	case NavRight:
		return "Right"
	case NavUp:
		return "Up"
	case NavDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Event is one input event. Point is absolute and only meaningful for
// pointer events; Editing reports whether an encoder is in edit mode.
type Event struct {
	Kind    EventKind
	Device  Device
	Point   Point
	Dir     NavDirection
	Editing bool
}

// Response tells the input dispatcher what to do after an event.
type Response struct {
	// ResetLongPress restarts the long-press timer because the press moved
	// to another button.
	ResetLongPress bool
}

var transitions = [...]func(*Matrix, Event) Response{
	PointerDown:   (*Matrix).onPointerDown,
	PointerMove:   (*Matrix).onPointerMove,
	PointerUp:     (*Matrix).onPointerUp,
	PressLost:     (*Matrix).onPressLost,
	LongPressTick: (*Matrix).onLongPressTick,
	FocusGained:   (*Matrix).onFocusGained,
	FocusLost:     (*Matrix).onFocusLost,
	Navigate:      (*Matrix).onNavigate,
}

// Handle applies one input event. Events must be delivered one at a time;
// damage and value-changed notifications are issued before Handle returns.
func (m *Matrix) Handle(ev Event) Response {
	if int(ev.Kind) >= len(transitions) {
		return Response{}
	}
	m.editing = ev.Device == DeviceEncoder && ev.Editing
	return transitions[ev.Kind](m, ev)
}

func (m *Matrix) onPointerDown(ev Event) Response {
	m.invalidateButton(m.pressed)

	var target Index
	switch {
	case ev.Device == DevicePointer || ev.Device == DeviceButton:
		target = m.hit(ev.Point)
	case ev.Device == DeviceKeypad || (ev.Device == DeviceEncoder && ev.Editing):
		target = m.focused
	}

	if i, ok := target.Get(); ok && i < len(m.ctrl) && m.ctrl[i].interactive() {
		m.pressed = target
		m.active = target
		m.invalidateButton(m.pressed)
		if !m.ctrl[i].ClickTrig {
			m.emit(i)
		}
	}
	return Response{}
}

func (m *Matrix) onPointerMove(ev Event) Response {
	if ev.Device.directional() {
		return Response{}
	}

	btn := m.hit(ev.Point)
	if i, ok := btn.Get(); ok && !m.ctrl[i].interactive() {
		btn = None
	}
	if btn == m.pressed {
		return Response{}
	}

	m.invalidateButton(m.pressed)
	m.pressed = btn
	m.active = btn
	if i, ok := btn.Get(); ok {
		m.invalidateButton(btn)
		if !m.ctrl[i].ClickTrig {
			m.emit(i)
		}
	}
	return Response{ResetLongPress: true}
}

func (m *Matrix) onPointerUp(ev Event) Response {
	i, ok := m.pressed.Get()
	if !ok || i >= len(m.ctrl) {
		return Response{}
	}

	c := &m.ctrl[i]
	if c.Checkable && !c.Disabled {
		c.Checked = !c.Checked || m.oneChecked
		if m.oneChecked {
			m.makeOneChecked(i)
		}
	}

	m.invalidateButton(m.pressed)
	m.invalidateButton(m.focused)

	if ev.Device.directional() {
		m.focused = m.pressed
	}
	m.pressed = None

	if a, ok := m.active.Get(); ok && a < len(m.ctrl) {
		if ac := m.ctrl[a]; ac.ClickTrig && ac.interactive() {
			m.emit(a)
		}
	}
	return Response{}
}

func (m *Matrix) onPressLost(Event) Response {
	m.pressed = None
	m.active = None
	m.damage.InvalidateAll()
	return Response{}
}

func (m *Matrix) onLongPressTick(Event) Response {
	if a, ok := m.active.Get(); ok && a < len(m.ctrl) {
		if c := m.ctrl[a]; !c.NoRepeat && c.interactive() {
			m.emit(a)
		}
	}
	return Response{}
}

func (m *Matrix) onFocusGained(ev Event) Response {
	switch {
	case ev.Device == DeviceKeypad || (ev.Device == DeviceEncoder && ev.Editing):
		first := m.firstInteractive()
		m.focused = first
		m.active = first
	case ev.Device == DeviceEncoder:
		m.focused = None
	}
	m.damage.InvalidateAll()
	return Response{}
}

func (m *Matrix) onFocusLost(Event) Response {
	m.invalidateButton(m.focused)
	m.invalidateButton(m.pressed)
	m.focused = None
	m.pressed = None
	m.active = None
	return Response{}
}

func (m *Matrix) onNavigate(ev Event) Response {
	if len(m.ctrl) == 0 {
		return Response{}
	}

	switch ev.Dir {
	case NavRight:
		m.focused = m.step(1)
	case NavLeft:
		m.focused = m.step(-1)
	case NavDown, NavUp:
		m.focused = m.vertical(ev.Dir)
	}

	m.active = m.focused
	m.damage.InvalidateAll()
	return Response{}
}

// step walks focus by delta, wrapping at both ends and skipping buttons that
// cannot take focus. Focus stays put when no button qualifies.
func (m *Matrix) step(delta int) Index {
	n := len(m.ctrl)
	start := 0
	if f, ok := m.focused.Get(); ok && f < n {
		start = (f + delta + n) % n
	}
	for k := 0; k < n; k++ {
		i := ((start+k*delta)%n + n) % n
		if m.ctrl[i].interactive() {
			return At(i)
		}
	}
	return m.focused
}

// vertical finds the nearest focusable button in the row above or below
// whose span covers the horizontal centre of the focused button.
func (m *Matrix) vertical(dir NavDirection) Index {
	f, ok := m.focused.Get()
	if !ok || f >= len(m.ctrl) {
		return m.firstInteractive()
	}

	cur := m.areas[f]
	center := cur.X1 + cur.Width()>>1
	gap := m.colGap

	if dir == NavDown {
		for i := f; i < len(m.ctrl); i++ {
			a := m.areas[i]
			if a.Y1 > cur.Y1 && center >= a.X1 && center <= a.X2+gap && m.ctrl[i].interactive() {
				return At(i)
			}
		}
		return m.focused
	}

	for i := f; i >= 0; i-- {
		a := m.areas[i]
		if a.Y1 < cur.Y1 && center >= a.X1-gap && center <= a.X2 && m.ctrl[i].interactive() {
			return At(i)
		}
	}
	return m.focused
}

func (m *Matrix) firstInteractive() Index {
	for i, c := range m.ctrl {
		if c.interactive() {
			return At(i)
		}
	}
	return None
}

func (m *Matrix) hit(p Point) Index {
	return HitTest(m.areas, p, Point{X: m.coords.X1, Y: m.coords.Y1}, m.geometry())
}
