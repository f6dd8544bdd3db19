package ui

import (
	"testing"

	"github.com/OpticalFlyer/btnmatrix/btnmatrix"
)

func TestPanelLayout(t *testing.T) {
	var d DamageList
	p := NewPanel(10, 10, 300, 200, "Matrix", nil)
	p.SetDamage(&d)
	bm := NewButtonMatrix(nil, &d)
	p.AddChild(bm)

	want := Rectangle{X: 18, Y: 38, Width: 284, Height: 164}
	if got := bm.Bounds(); got != want {
		t.Errorf("child bounds: got %+v; want %+v", got, want)
	}
	if got := bm.Matrix().Coords(); got != (btnmatrix.Area{X1: 18, Y1: 38, X2: 301, Y2: 201}) {
		t.Errorf("matrix coords: got %+v", got)
	}
	if bm.GetParent() != Container(p) {
		t.Errorf("child parent not set")
	}

	p.Resize(20, 20)
	if got := p.Bounds(); got.Width != minPanelWidth || got.Height != minPanelHeight {
		t.Errorf("got %vx%v; want the minimum size", got.Width, got.Height)
	}
	if got := bm.Matrix().Coords().Width(); got != minPanelWidth-2*panelPadding {
		t.Errorf("matrix width after resize: got %d", got)
	}

	p.RemoveChild(bm)
	if len(p.Children()) != 0 || bm.GetParent() != nil {
		t.Errorf("child not removed")
	}
}

func TestPanelStackLayout(t *testing.T) {
	p := NewPanel(0, 0, 200, 200, "Settings", StackLayout{RowHeight: 30, Spacing: 6})
	a := NewButton("a", nil, nil, nil)
	b := NewButton("b", nil, nil, nil)
	p.AddChild(a)
	p.AddChild(b)

	if got := a.Bounds(); got != (Rectangle{X: 8, Y: 28, Width: 184, Height: 30}) {
		t.Errorf("first row: got %+v", got)
	}
	if got := b.Bounds(); got != (Rectangle{X: 8, Y: 64, Width: 184, Height: 30}) {
		t.Errorf("second row: got %+v", got)
	}
}

func TestPanelMouse(t *testing.T) {
	tests := []struct {
		name         string
		press        [2]float64
		drag         [2]float64
		want         Rectangle
		wantInteract bool
	}{
		{"drag title", [2]float64{50, 15}, [2]float64{80, 45}, Rectangle{X: 40, Y: 40, Width: 200, Height: 150}, true},
		{"resize right", [2]float64{210, 100}, [2]float64{240, 130}, Rectangle{X: 10, Y: 10, Width: 230, Height: 150}, true},
		{"resize bottom", [2]float64{100, 160}, [2]float64{130, 190}, Rectangle{X: 10, Y: 10, Width: 200, Height: 180}, true},
		{"resize grip", [2]float64{208, 158}, [2]float64{238, 168}, Rectangle{X: 10, Y: 10, Width: 230, Height: 160}, true},
		{"press in content", [2]float64{100, 100}, [2]float64{130, 130}, Rectangle{X: 10, Y: 10, Width: 200, Height: 150}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPanel(10, 10, 200, 150, "Panel", nil)
			p.handleMouse(tt.press[0], tt.press[1], true)
			p.handleMouse(tt.drag[0], tt.drag[1], true)
			if got := p.Bounds(); got != tt.want {
				t.Errorf("got %+v; want %+v", got, tt.want)
			}
			if p.Interacting() != tt.wantInteract {
				t.Errorf("got interacting %v; want %v", p.Interacting(), tt.wantInteract)
			}
			p.handleMouse(tt.drag[0], tt.drag[1], false)
			if p.Interacting() {
				t.Errorf("still interacting after release")
			}
		})
	}
}

func TestPanelUpdateWindowSize(t *testing.T) {
	p := NewPanel(700, 580, 200, 150, "Panel", nil)
	p.UpdateWindowSize(800, 600)
	if got := p.Bounds(); got.X != 600 || got.Y != 580 {
		t.Errorf("got %v,%v; want 600,580", got.X, got.Y)
	}
	p.UpdateWindowSize(150, 100)
	if got := p.Bounds(); got.X != 0 || got.Y != 80 {
		t.Errorf("got %v,%v; want 0,80", got.X, got.Y)
	}
}
