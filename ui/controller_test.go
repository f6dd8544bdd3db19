package ui

import (
	"testing"
	"time"

	"github.com/OpticalFlyer/btnmatrix/btnmatrix"
)

type testScene struct {
	c       *Controller
	bm      *ButtonMatrix
	button  *Button
	clicks  int
	changed []int
}

// newTestScene builds a matrix panel at 0,0 (content 8,28 to 291,191 with
// the default map, no gaps) and a settings panel with one button beside it.
func newTestScene() *testScene {
	s := &testScene{}
	s.c = NewController(NewInput(400*time.Millisecond, 100*time.Millisecond))

	s.bm = NewButtonMatrix(nil, s.c.Damage())
	s.bm.Matrix().OnValueChanged(func(btn int) { s.changed = append(s.changed, btn) })
	mp := NewPanel(0, 0, 300, 200, "Matrix", FillLayout{})
	mp.AddChild(s.bm)

	s.button = NewButton("OK", nil, s.c.Damage(), func() { s.clicks++ })
	sp := NewPanel(400, 0, 200, 200, "Settings", StackLayout{RowHeight: 30})
	sp.AddChild(s.button)

	s.c.AddPanel(mp)
	s.c.AddPanel(sp)
	return s
}

func pointer(k btnmatrix.EventKind, x, y int) btnmatrix.Event {
	return btnmatrix.Event{Kind: k, Device: btnmatrix.DevicePointer, Point: btnmatrix.Point{X: x, Y: y}}
}

func TestControllerPointerDispatch(t *testing.T) {
	s := newTestScene()

	s.c.dispatch(pointer(btnmatrix.PointerDown, 20, 40))
	if s.c.Focused() != Focusable(s.bm) {
		t.Errorf("pressing the matrix should focus it")
	}
	if got := s.bm.Matrix().PressedButton(); got != btnmatrix.At(0) {
		t.Errorf("got pressed %v; want button 0", got.Int())
	}

	// The press stays with the matrix even over the other panel.
	s.c.dispatch(pointer(btnmatrix.PointerMove, 450, 40))
	if got := s.bm.Matrix().PressedButton(); got.Valid() {
		t.Errorf("got pressed %d after leaving the buttons; want none", got.Int())
	}
	s.c.dispatch(pointer(btnmatrix.PointerUp, 450, 40))
	if s.clicks != 0 {
		t.Errorf("button got %d clicks from a matrix press", s.clicks)
	}
	if len(s.changed) != 1 || s.changed[0] != 0 {
		t.Errorf("got value changes %v; want [0]", s.changed)
	}

	s.c.dispatch(pointer(btnmatrix.PointerDown, 450, 40))
	s.c.dispatch(pointer(btnmatrix.PointerUp, 450, 40))
	if s.clicks != 1 {
		t.Errorf("got %d clicks; want 1", s.clicks)
	}
	if s.c.Focused() != Focusable(s.button) {
		t.Errorf("pressing the button should focus it")
	}
	if got := s.bm.Matrix().FocusedButton(); got.Valid() {
		t.Errorf("blurred matrix still focuses %d", got.Int())
	}
}

func TestControllerMissesChildren(t *testing.T) {
	s := newTestScene()

	if got := s.c.componentAt(btnmatrix.Point{X: 100, Y: 10}); got != nil {
		t.Errorf("title bar: got %T; want nil", got)
	}
	if got := s.c.componentAt(btnmatrix.Point{X: 350, Y: 100}); got != nil {
		t.Errorf("between panels: got %T; want nil", got)
	}
	s.c.dispatch(pointer(btnmatrix.PointerDown, 350, 100))
	if s.c.Focused() != nil {
		t.Errorf("pressing nothing should not focus anything")
	}
}

func TestControllerResetLongPress(t *testing.T) {
	s := newTestScene()

	s.c.dispatch(pointer(btnmatrix.PointerDown, 20, 40))
	s.c.input.pointerTimer.held = 10
	s.c.dispatch(pointer(btnmatrix.PointerMove, 120, 40))
	if got := s.bm.Matrix().PressedButton(); got != btnmatrix.At(1) {
		t.Fatalf("got pressed %d; want 1", got.Int())
	}
	if s.c.input.pointerTimer.held != 0 {
		t.Errorf("long-press timer not restarted on entering another button")
	}
}

func TestControllerFocusGroup(t *testing.T) {
	s := newTestScene()
	m := s.bm.Matrix()
	key := func(k btnmatrix.EventKind) btnmatrix.Event {
		return btnmatrix.Event{Kind: k, Device: btnmatrix.DeviceKeypad}
	}

	s.c.moveFocus(FocusMove{Step: 1, Device: btnmatrix.DeviceKeypad})
	if s.c.Focused() != Focusable(s.bm) {
		t.Fatalf("first Tab should focus the matrix")
	}
	if got := m.FocusedButton(); got != btnmatrix.At(0) {
		t.Errorf("got focused button %d; want 0", got.Int())
	}

	nav := key(btnmatrix.Navigate)
	nav.Dir = btnmatrix.NavRight
	s.c.dispatch(nav)
	s.c.dispatch(key(btnmatrix.PointerDown))
	s.c.dispatch(key(btnmatrix.PointerUp))
	if len(s.changed) != 1 || s.changed[0] != 1 {
		t.Errorf("got value changes %v; want [1]", s.changed)
	}

	s.c.moveFocus(FocusMove{Step: 1, Device: btnmatrix.DeviceKeypad})
	if s.c.Focused() != Focusable(s.button) {
		t.Fatalf("second Tab should focus the button")
	}
	if m.FocusedButton().Valid() {
		t.Errorf("matrix kept focus after Tab")
	}
	s.c.dispatch(key(btnmatrix.PointerDown))
	s.c.dispatch(key(btnmatrix.PointerUp))
	if s.clicks != 1 {
		t.Errorf("got %d clicks; want 1", s.clicks)
	}

	s.c.moveFocus(FocusMove{Step: 1, Device: btnmatrix.DeviceKeypad})
	if s.c.Focused() != Focusable(s.bm) {
		t.Errorf("Tab should wrap to the matrix")
	}
	s.c.moveFocus(FocusMove{Step: -1, Device: btnmatrix.DeviceKeypad})
	if s.c.Focused() != Focusable(s.button) {
		t.Errorf("Shift+Tab should go back to the button")
	}
}

func TestControllerDamage(t *testing.T) {
	s := newTestScene()
	if _, all := s.c.Damage().Take(); !all {
		t.Fatalf("first frame should repaint everything")
	}

	s.c.dispatch(pointer(btnmatrix.PointerDown, 20, 40))
	areas, all := s.c.Damage().Take()
	if all || len(areas) == 0 {
		t.Fatalf("got %v, %v; want partial damage", areas, all)
	}
	bounds := s.bm.Bounds().Area()
	for _, a := range areas {
		if !contains(bounds, a) {
			t.Errorf("damage %+v outside the matrix %+v", a, bounds)
		}
	}

	s.c.UpdateWindowSize(1024, 768)
	if _, all := s.c.Damage().Take(); !all {
		t.Errorf("resizing the window should repaint everything")
	}
}
