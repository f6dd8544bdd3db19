package btnmatrix

import (
	"image/color"
	"strconv"
	"strings"
)

// Span is a run of text drawn in one colour. A nil Color means the paint's
// text colour.
type Span struct {
	Text  string
	Color color.Color
}

// ParseRecolor splits text with inline colour commands into spans. A command
// is "#RRGGBB " followed by the coloured text and a closing "#"; "##" is a
// literal '#'. Malformed commands are kept as plain text.
func ParseRecolor(text string) []Span {
	var spans []Span
	var cur strings.Builder
	var col color.Color
	colored := false

	flush := func() {
		if cur.Len() > 0 {
			spans = append(spans, Span{Text: cur.String(), Color: col})
			cur.Reset()
		}
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch != '#' {
			cur.WriteByte(ch)
			continue
		}
		if i+1 < len(text) && text[i+1] == '#' {
			cur.WriteByte('#')
			i++
			continue
		}
		if colored {
			flush()
			col = nil
			colored = false
			continue
		}
		if c, ok := parseHexColor(text[i+1:]); ok {
			flush()
			col = c
			colored = true
			i += 7
			continue
		}
		cur.WriteByte(ch)
	}
	flush()
	return spans
}

// StripRecolor returns text without colour commands.
func StripRecolor(text string) string {
	var b strings.Builder
	for _, s := range ParseRecolor(text) {
		b.WriteString(s.Text)
	}
	return b.String()
}

// parseHexColor reads "RRGGBB " from the start of s.
func parseHexColor(s string) (color.Color, bool) {
	if len(s) < 7 || s[6] != ' ' {
		return nil, false
	}
	v, err := strconv.ParseUint(s[:6], 16, 32)
	if err != nil {
		return nil, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}
