package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/btnmatrix/btnmatrix"
)

// pressTimer counts the ticks a press has been held and reports when a
// long-press repeat is due.
type pressTimer struct {
	longPress int
	repeat    int
	held      int
}

func newPressTimer(longPress, repeat time.Duration, tps int) pressTimer {
	return pressTimer{longPress: ticks(longPress, tps), repeat: ticks(repeat, tps)}
}

// ticks converts d to update ticks, rounding up to at least one.
func ticks(d time.Duration, tps int) int {
	n := int((d*time.Duration(tps) + time.Second - 1) / time.Second)
	if n < 1 {
		n = 1
	}
	return n
}

func (t *pressTimer) reset() {
	t.held = 0
}

// tick advances the timer by one update. The first repeat fires one repeat
// interval after the long-press time has passed.
func (t *pressTimer) tick() bool {
	t.held++
	past := t.held - t.longPress
	return past > 0 && past%t.repeat == 0
}

// frame is the raw input state of one update.
type frame struct {
	pointerDown bool
	pointer     btnmatrix.Point

	nav       []btnmatrix.NavDirection
	enterDown bool
	tab       int

	wheel       int
	encoderDown bool
	escape      bool
}

// FocusMove asks the controller to move keypad focus Step widgets along
// the focus group.
type FocusMove struct {
	Step   int
	Device btnmatrix.Device
}

var navKeys = []struct {
	key ebiten.Key
	dir btnmatrix.NavDirection
}{
	{ebiten.KeyArrowLeft, btnmatrix.NavLeft},
	{ebiten.KeyArrowRight, btnmatrix.NavRight},
	{ebiten.KeyArrowUp, btnmatrix.NavUp},
	{ebiten.KeyArrowDown, btnmatrix.NavDown},
}

// Input turns ebiten's polled input into matrix events. The mouse and the
// first touch act as a pointer, the arrow keys and Enter as a keypad, and
// the wheel with the middle button as an encoder.
type Input struct {
	pointerTimer pressTimer
	keyTimer     pressTimer
	encoderTimer pressTimer

	pointerHeld bool
	pointerLost bool
	lastPoint   btnmatrix.Point

	enterHeld bool

	encoderHeld  bool
	encoderEnter bool
	editing      bool
	wheelAcc     float64

	screenWidth  int
	screenHeight int

	touches  []ebiten.TouchID
	touchID  ebiten.TouchID
	touching bool
}

func NewInput(longPress, repeat time.Duration) *Input {
	in := &Input{}
	in.SetTiming(longPress, repeat, ebiten.DefaultTPS)
	return in
}

// SetTiming sets the long-press delay and repeat interval for a game
// running at tps updates per second.
func (in *Input) SetTiming(longPress, repeat time.Duration, tps int) {
	in.pointerTimer = newPressTimer(longPress, repeat, tps)
	in.keyTimer = in.pointerTimer
	in.encoderTimer = in.pointerTimer
}

// SetScreenSize sets the area outside which a held pointer is lost.
func (in *Input) SetScreenSize(width, height int) {
	in.screenWidth = width
	in.screenHeight = height
}

// Editing reports whether the encoder is in edit mode.
func (in *Input) Editing() bool {
	return in.editing
}

// StopEditing leaves encoder edit mode without sending an event.
func (in *Input) StopEditing() {
	in.editing = false
}

// ResetLongPress restarts the pointer's long-press timer.
func (in *Input) ResetLongPress() {
	in.pointerTimer.reset()
}

// Poll reads this update's input and returns the events to deliver.
func (in *Input) Poll() ([]btnmatrix.Event, FocusMove) {
	return in.step(in.read())
}

func (in *Input) read() frame {
	var f frame

	in.touches = ebiten.AppendTouchIDs(in.touches[:0])
	if in.touching && !containsTouchID(in.touches, in.touchID) {
		in.touching = false
	}
	if !in.touching && len(in.touches) > 0 {
		in.touchID = in.touches[0]
		in.touching = true
	}
	if in.touching {
		x, y := ebiten.TouchPosition(in.touchID)
		f.pointer = btnmatrix.Point{X: x, Y: y}
		f.pointerDown = true
	} else {
		x, y := ebiten.CursorPosition()
		f.pointer = btnmatrix.Point{X: x, Y: y}
		f.pointerDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}

	for _, k := range navKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			f.nav = append(f.nav, k.dir)
		}
	}
	f.enterDown = ebiten.IsKeyPressed(ebiten.KeyEnter) || ebiten.IsKeyPressed(ebiten.KeyNumpadEnter)
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		f.tab = 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			f.tab = -1
		}
	}

	// Wheel deltas are fractional on touchpads.
	_, wy := ebiten.Wheel()
	in.wheelAcc += wy
	for in.wheelAcc >= 1 {
		f.wheel--
		in.wheelAcc--
	}
	for in.wheelAcc <= -1 {
		f.wheel++
		in.wheelAcc++
	}
	f.encoderDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	f.escape = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	return f
}

func (in *Input) step(f frame) ([]btnmatrix.Event, FocusMove) {
	var events []btnmatrix.Event
	events = in.stepPointer(f, events)
	events = in.stepKeypad(f, events)
	events, move := in.stepEncoder(f, events)
	if f.tab != 0 {
		move = FocusMove{Step: f.tab, Device: btnmatrix.DeviceKeypad}
	}
	return events, move
}

func (in *Input) stepPointer(f frame, events []btnmatrix.Event) []btnmatrix.Event {
	ev := func(k btnmatrix.EventKind, p btnmatrix.Point) btnmatrix.Event {
		return btnmatrix.Event{Kind: k, Device: btnmatrix.DevicePointer, Point: p}
	}

	switch {
	case f.pointerDown && !in.pointerHeld:
		in.pointerHeld = true
		in.pointerLost = false
		in.lastPoint = f.pointer
		in.pointerTimer.reset()
		events = append(events, ev(btnmatrix.PointerDown, f.pointer))

	case f.pointerDown:
		if in.pointerLost {
			break
		}
		if !in.onScreen(f.pointer) {
			in.pointerLost = true
			events = append(events, ev(btnmatrix.PressLost, f.pointer))
			break
		}
		if f.pointer != in.lastPoint {
			in.lastPoint = f.pointer
			events = append(events, ev(btnmatrix.PointerMove, f.pointer))
		}
		if in.pointerTimer.tick() {
			events = append(events, ev(btnmatrix.LongPressTick, f.pointer))
		}

	case in.pointerHeld:
		in.pointerHeld = false
		if in.pointerLost {
			in.pointerLost = false
			break
		}
		events = append(events, ev(btnmatrix.PointerUp, in.lastPoint))
	}
	return events
}

func (in *Input) stepKeypad(f frame, events []btnmatrix.Event) []btnmatrix.Event {
	key := func(k btnmatrix.EventKind) btnmatrix.Event {
		return btnmatrix.Event{Kind: k, Device: btnmatrix.DeviceKeypad}
	}

	for _, d := range f.nav {
		ev := key(btnmatrix.Navigate)
		ev.Dir = d
		events = append(events, ev)
	}

	switch {
	case f.enterDown && !in.enterHeld:
		in.enterHeld = true
		in.keyTimer.reset()
		events = append(events, key(btnmatrix.PointerDown))
	case f.enterDown:
		if in.keyTimer.tick() {
			events = append(events, key(btnmatrix.LongPressTick))
		}
	case in.enterHeld:
		in.enterHeld = false
		events = append(events, key(btnmatrix.PointerUp))
	}
	return events
}

func (in *Input) stepEncoder(f frame, events []btnmatrix.Event) ([]btnmatrix.Event, FocusMove) {
	enc := func(k btnmatrix.EventKind) btnmatrix.Event {
		return btnmatrix.Event{Kind: k, Device: btnmatrix.DeviceEncoder, Editing: in.editing}
	}

	if f.escape && in.editing {
		in.editing = false
		events = append(events, enc(btnmatrix.FocusGained))
	}

	switch {
	case f.encoderDown && !in.encoderHeld:
		in.encoderHeld = true
		if !in.editing {
			// The press that enters edit mode does not click.
			in.editing = true
			in.encoderEnter = true
			events = append(events, enc(btnmatrix.FocusGained))
			break
		}
		in.encoderTimer.reset()
		events = append(events, enc(btnmatrix.PointerDown))
	case f.encoderDown:
		if !in.encoderEnter && in.encoderTimer.tick() {
			events = append(events, enc(btnmatrix.LongPressTick))
		}
	case in.encoderHeld:
		in.encoderHeld = false
		if in.encoderEnter {
			in.encoderEnter = false
			break
		}
		events = append(events, enc(btnmatrix.PointerUp))
	}

	var move FocusMove
	if f.wheel != 0 {
		if !in.editing {
			move = FocusMove{Step: f.wheel, Device: btnmatrix.DeviceEncoder}
			return events, move
		}
		dir, n := btnmatrix.NavRight, f.wheel
		if n < 0 {
			dir, n = btnmatrix.NavLeft, -n
		}
		for i := 0; i < n; i++ {
			ev := enc(btnmatrix.Navigate)
			ev.Dir = dir
			events = append(events, ev)
		}
	}
	return events, move
}

func (in *Input) onScreen(p btnmatrix.Point) bool {
	if in.screenWidth <= 0 || in.screenHeight <= 0 {
		return true
	}
	return p.X >= 0 && p.Y >= 0 && p.X < in.screenWidth && p.Y < in.screenHeight
}

func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}
