package btnmatrix

import (
	"image/color"
	"reflect"
	"testing"
)

func TestParseRecolor(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}

	tests := []struct {
		name string
		text string
		want []Span
	}{
		{"plain", "OK", []Span{{Text: "OK"}}},
		{"empty", "", nil},
		{"one span", "#ff0000 Red#", []Span{{Text: "Red", Color: red}}},
		{"mixed", "a #0000ff b# c", []Span{{Text: "a "}, {Text: "b", Color: blue}, {Text: " c"}}},
		{"escaped hash", "##1", []Span{{Text: "#1"}}},
		{"not a colour", "#zz0000 x", []Span{{Text: "#zz0000 x"}}},
		{"unterminated", "#ff0000 Red", []Span{{Text: "Red", Color: red}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseRecolor(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestStripRecolor(t *testing.T) {
	if got := StripRecolor("x #00ff00 y# z"); got != "x y z" {
		t.Errorf("got %q", got)
	}
}
