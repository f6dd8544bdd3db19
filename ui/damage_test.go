package ui

import (
	"testing"

	"github.com/OpticalFlyer/btnmatrix/btnmatrix"
)

func TestDamageList(t *testing.T) {
	big := btnmatrix.Area{X1: 0, Y1: 0, X2: 99, Y2: 99}
	small := btnmatrix.Area{X1: 10, Y1: 10, X2: 20, Y2: 20}
	other := btnmatrix.Area{X1: 200, Y1: 200, X2: 210, Y2: 210}

	tests := []struct {
		name    string
		add     []btnmatrix.Area
		want    []btnmatrix.Area
		wantAll bool
	}{
		{"empty", nil, nil, false},
		{"single", []btnmatrix.Area{small}, []btnmatrix.Area{small}, false},
		{"contained is skipped", []btnmatrix.Area{big, small}, []btnmatrix.Area{big}, false},
		{"covering replaces", []btnmatrix.Area{small, other, big}, []btnmatrix.Area{big, other}, false},
		{"invalid is ignored", []btnmatrix.Area{{X1: 5, X2: 4}}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DamageList
			for _, a := range tt.add {
				d.InvalidateArea(a)
			}
			got, all := d.Take()
			if all != tt.wantAll {
				t.Errorf("got all %v; want %v", all, tt.wantAll)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v; want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("area %d: got %+v; want %+v", i, got[i], tt.want[i])
				}
			}
			if d.Dirty() {
				t.Errorf("list still dirty after Take")
			}
		})
	}
}

func TestDamageListOverflow(t *testing.T) {
	var d DamageList
	for i := 0; i <= maxDamageAreas; i++ {
		d.InvalidateArea(btnmatrix.Area{X1: i * 10, X2: i*10 + 5, Y2: 5})
	}
	areas, all := d.Take()
	if !all || len(areas) != 0 {
		t.Errorf("got %d areas, all %v; want the whole screen", len(areas), all)
	}
}

func TestDamageListInvalidateAll(t *testing.T) {
	var d DamageList
	d.InvalidateAll()
	d.InvalidateArea(btnmatrix.Area{X2: 5, Y2: 5})
	areas, all := d.Take()
	if !all || len(areas) != 0 {
		t.Errorf("got %v, %v; want whole screen only", areas, all)
	}
}
