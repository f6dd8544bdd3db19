package btnmatrix

import "image/color"

// State is the set of widget states a button is drawn in.
type State uint8

const (
	StateChecked State = 1 << iota
	StatePressed
	StateDisabled
	StateFocused
	StateEdited
)

// StateDefault is a button with no other state.
const StateDefault State = 0

// BorderSide selects the sides of a button that get a border.
type BorderSide uint8

const (
	BorderLeft BorderSide = 1 << iota
	BorderTop
	BorderRight
	BorderBottom
	// BorderInternal drops the border on sides that touch the container
	// edge so only the lines between buttons remain.
	BorderInternal

	BorderNone BorderSide = 0
	BorderFull            = BorderLeft | BorderTop | BorderRight | BorderBottom
)

// Paint is a resolved draw descriptor for one button state.
type Paint struct {
	Background  color.Color
	BorderColor color.Color
	BorderWidth int
	BorderSide  BorderSide
	TextColor   color.Color

	// Font is opaque to the matrix and handed back to the measurer and
	// canvas unchanged.
	Font        any
	LetterSpace int
	LineSpace   int

	// Recolor is set when the text may carry inline colour commands.
	Recolor bool
}

// Styler resolves the paint of a button state.
type Styler interface {
	Paint(s State) Paint
}

// TextMeasurer measures text drawn with a paint, wrapping at maxWidth.
type TextMeasurer interface {
	Measure(text string, p Paint, maxWidth int) (w, h int)
}

// Canvas draws button backgrounds and labels. Areas are absolute.
type Canvas interface {
	FillRect(a Area, p Paint)
	DrawText(a Area, p Paint, text string)
}

// PartDraw describes the button about to be drawn. Hooks may edit Paint.
type PartDraw struct {
	ID    int
	Area  Area
	State State
	Text  string
	Paint *Paint
}

func (m *Matrix) buttonState(i int) State {
	c := m.ctrl[i]
	var st State
	if c.Checked {
		st |= StateChecked
	}
	if c.Disabled {
		st |= StateDisabled
	}
	if m.pressed == At(i) {
		st |= StatePressed
	}
	if m.focused == At(i) {
		st |= StateFocused
		if m.editing {
			st |= StateEdited
		}
	}
	return st
}

// Draw paints every visible button that intersects clip.
func (m *Matrix) Draw(c Canvas, s Styler, tm TextMeasurer, clip Area) {
	if len(m.ctrl) == 0 {
		return
	}

	def := s.Paint(StateDefault)
	def.Recolor = m.recolor

	contentLeft := m.coords.X1 + m.padding.Left
	contentTop := m.coords.Y1 + m.padding.Top
	contentRight := m.coords.X2 - m.padding.Right
	contentBottom := m.coords.Y2 - m.padding.Bottom

	btn := 0
	for _, txt := range m.tokens.tokens() {
		if txt == RowBreak {
			continue
		}
		i := btn
		btn++
		if i >= len(m.ctrl) {
			break
		}
		if m.ctrl[i].Hidden {
			continue
		}

		area := m.areas[i].Offset(m.coords.X1, m.coords.Y1)
		if !area.Intersects(clip) {
			continue
		}

		st := m.buttonState(i)
		p := def
		if st != StateDefault {
			p = s.Paint(st)
			p.Recolor = m.recolor
		}

		if m.partHook != nil {
			m.partHook(&PartDraw{ID: i, Area: area, State: st, Text: txt, Paint: &p})
		}

		if p.BorderSide&BorderInternal != 0 {
			if area.X1 == contentLeft {
				p.BorderSide &^= BorderLeft
			}
			if area.X2 == contentRight {
				p.BorderSide &^= BorderRight
			}
			if area.Y1 == contentTop {
				p.BorderSide &^= BorderTop
			}
			if area.Y2 == contentBottom {
				p.BorderSide &^= BorderBottom
			}
		}

		c.FillRect(area, p)

		w, h := tm.Measure(txt, p, m.coords.Width())
		ta := Area{
			X1: area.X1 + (area.Width()-w)/2,
			Y1: area.Y1 + (area.Height()-h)/2,
		}
		ta.X2 = ta.X1 + w
		ta.Y2 = ta.Y1 + h
		c.DrawText(ta, p, txt)
	}
}
