package ui

import (
	"testing"
	"time"

	"github.com/OpticalFlyer/btnmatrix/btnmatrix"
)

func newTestInput() *Input {
	in := &Input{}
	in.SetTiming(400*time.Millisecond, 100*time.Millisecond, 60)
	return in
}

func kinds(events []btnmatrix.Event) []btnmatrix.EventKind {
	var ks []btnmatrix.EventKind
	for _, ev := range events {
		ks = append(ks, ev.Kind)
	}
	return ks
}

func sameKinds(got []btnmatrix.Event, want ...btnmatrix.EventKind) bool {
	ks := kinds(got)
	if len(ks) != len(want) {
		return false
	}
	for i := range ks {
		if ks[i] != want[i] {
			return false
		}
	}
	return true
}

func TestTicks(t *testing.T) {
	tests := []struct {
		d    time.Duration
		tps  int
		want int
	}{
		{400 * time.Millisecond, 60, 24},
		{100 * time.Millisecond, 60, 6},
		{10 * time.Millisecond, 60, 1},
		{0, 60, 1},
		{50 * time.Millisecond, 30, 2},
	}
	for _, tt := range tests {
		if got := ticks(tt.d, tt.tps); got != tt.want {
			t.Errorf("ticks(%v, %d): got %d; want %d", tt.d, tt.tps, got, tt.want)
		}
	}
}

func TestInputPointer(t *testing.T) {
	in := newTestInput()
	p := btnmatrix.Point{X: 10, Y: 10}

	events, _ := in.step(frame{pointerDown: true, pointer: p})
	if !sameKinds(events, btnmatrix.PointerDown) || events[0].Point != p || events[0].Device != btnmatrix.DevicePointer {
		t.Fatalf("press: got %+v", events)
	}

	events, _ = in.step(frame{pointerDown: true, pointer: p})
	if len(events) != 0 {
		t.Errorf("still pointer: got %v; want none", kinds(events))
	}

	q := btnmatrix.Point{X: 30, Y: 12}
	events, _ = in.step(frame{pointerDown: true, pointer: q})
	if !sameKinds(events, btnmatrix.PointerMove) || events[0].Point != q {
		t.Errorf("move: got %+v", events)
	}

	events, _ = in.step(frame{pointer: btnmatrix.Point{X: 99, Y: 99}})
	if !sameKinds(events, btnmatrix.PointerUp) || events[0].Point != q {
		t.Errorf("release: got %+v; want PointerUp at the last held point", events)
	}
}

func TestInputLongPress(t *testing.T) {
	in := newTestInput()
	down := frame{pointerDown: true}
	in.step(down)

	// 24 ticks of long press, then one every 6 ticks.
	for i := 1; i < 30; i++ {
		if events, _ := in.step(down); len(events) != 0 {
			t.Fatalf("tick %d: got %v; want none", i, kinds(events))
		}
	}
	if events, _ := in.step(down); !sameKinds(events, btnmatrix.LongPressTick) {
		t.Fatalf("tick 30: got %v; want LongPressTick", kinds(events))
	}
	for i := 1; i < 6; i++ {
		if events, _ := in.step(down); len(events) != 0 {
			t.Fatalf("repeat gap %d: got %v", i, kinds(events))
		}
	}
	if events, _ := in.step(down); !sameKinds(events, btnmatrix.LongPressTick) {
		t.Errorf("second repeat: got %v", kinds(events))
	}

	in.ResetLongPress()
	for i := 1; i < 30; i++ {
		if events, _ := in.step(down); len(events) != 0 {
			t.Fatalf("after reset, tick %d: got %v", i, kinds(events))
		}
	}
}

func TestInputPressLost(t *testing.T) {
	in := newTestInput()
	in.SetScreenSize(100, 100)

	in.step(frame{pointerDown: true, pointer: btnmatrix.Point{X: 10, Y: 10}})
	events, _ := in.step(frame{pointerDown: true, pointer: btnmatrix.Point{X: 150, Y: 10}})
	if !sameKinds(events, btnmatrix.PressLost) {
		t.Fatalf("leaving the window: got %v; want PressLost", kinds(events))
	}
	events, _ = in.step(frame{pointerDown: true, pointer: btnmatrix.Point{X: 20, Y: 10}})
	if len(events) != 0 {
		t.Errorf("after loss: got %v; want none", kinds(events))
	}
	events, _ = in.step(frame{})
	if len(events) != 0 {
		t.Errorf("release after loss: got %v; want none", kinds(events))
	}
	events, _ = in.step(frame{pointerDown: true, pointer: btnmatrix.Point{X: 20, Y: 10}})
	if !sameKinds(events, btnmatrix.PointerDown) {
		t.Errorf("next press: got %v", kinds(events))
	}
}

func TestInputKeypad(t *testing.T) {
	in := newTestInput()

	events, _ := in.step(frame{nav: []btnmatrix.NavDirection{btnmatrix.NavDown}, enterDown: true})
	if !sameKinds(events, btnmatrix.Navigate, btnmatrix.PointerDown) {
		t.Fatalf("got %v", kinds(events))
	}
	if events[0].Dir != btnmatrix.NavDown || events[0].Device != btnmatrix.DeviceKeypad {
		t.Errorf("navigate: got %+v", events[0])
	}

	events, _ = in.step(frame{})
	if !sameKinds(events, btnmatrix.PointerUp) || events[0].Device != btnmatrix.DeviceKeypad {
		t.Errorf("release: got %+v", events)
	}

	_, move := in.step(frame{tab: -1})
	if move != (FocusMove{Step: -1, Device: btnmatrix.DeviceKeypad}) {
		t.Errorf("tab: got %+v", move)
	}
}

func TestInputEncoder(t *testing.T) {
	in := newTestInput()

	_, move := in.step(frame{wheel: 1})
	if move != (FocusMove{Step: 1, Device: btnmatrix.DeviceEncoder}) {
		t.Errorf("rotate outside edit mode: got %+v", move)
	}

	events, _ := in.step(frame{encoderDown: true})
	if !sameKinds(events, btnmatrix.FocusGained) || !events[0].Editing || !in.Editing() {
		t.Fatalf("enter edit mode: got %+v", events)
	}
	if events, _ := in.step(frame{}); len(events) != 0 {
		t.Errorf("release after entering edit mode: got %v", kinds(events))
	}

	events, move = in.step(frame{wheel: -2})
	if !sameKinds(events, btnmatrix.Navigate, btnmatrix.Navigate) || events[0].Dir != btnmatrix.NavLeft || move.Step != 0 {
		t.Errorf("rotate in edit mode: got %+v, %+v", events, move)
	}

	events, _ = in.step(frame{encoderDown: true})
	if !sameKinds(events, btnmatrix.PointerDown) || !events[0].Editing {
		t.Errorf("press: got %+v", events)
	}
	events, _ = in.step(frame{})
	if !sameKinds(events, btnmatrix.PointerUp) {
		t.Errorf("release: got %+v", events)
	}

	events, _ = in.step(frame{escape: true})
	if !sameKinds(events, btnmatrix.FocusGained) || events[0].Editing || in.Editing() {
		t.Errorf("leave edit mode: got %+v", events)
	}
}
