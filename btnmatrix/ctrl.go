package btnmatrix

// widthMask keeps the width field to three bits.
const widthMask = 0x07

// Ctrl holds the control bits of one button.
type Ctrl struct {
	// Width is the relative horizontal weight, 1-7. Zero reads as 1.
	Width uint8

	Hidden    bool
	Disabled  bool
	Checkable bool
	Checked   bool
	NoRepeat  bool
	ClickTrig bool
}

// Units returns the effective width of the button in units.
func (c Ctrl) Units() int {
	w := int(c.Width & widthMask)
	if w == 0 {
		return 1
	}
	return w
}

// Flag selects one or more boolean control bits.
type Flag uint8

const (
	FlagHidden Flag = 1 << iota
	FlagDisabled
	FlagCheckable
	FlagChecked
	FlagNoRepeat
	FlagClickTrig
)

var flagNames = [...]string{"hidden", "disabled", "checkable", "checked", "no_repeat", "click_trig"}

func (f Flag) String() string {
	s := ""
	for i, name := range flagNames {
		if f&(1<<i) == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += name
	}
	if s == "" {
		return "none"
	}
	return s
}

// ParseFlag looks up a single flag by the name String uses.
func ParseFlag(name string) (Flag, bool) {
	for i, n := range flagNames {
		if n == name {
			return Flag(1 << i), true
		}
	}
	return 0, false
}

// Has reports whether every flag in f is set.
func (c Ctrl) Has(f Flag) bool {
	return f != 0 && c.flags()&f == f
}

func (c Ctrl) flags() Flag {
	var f Flag
	if c.Hidden {
		f |= FlagHidden
	}
	if c.Disabled {
		f |= FlagDisabled
	}
	if c.Checkable {
		f |= FlagCheckable
	}
	if c.Checked {
		f |= FlagChecked
	}
	if c.NoRepeat {
		f |= FlagNoRepeat
	}
	if c.ClickTrig {
		f |= FlagClickTrig
	}
	return f
}

// with returns c with the flags in f turned on or off.
func (c Ctrl) with(f Flag, on bool) Ctrl {
	if f&FlagHidden != 0 {
		c.Hidden = on
	}
	if f&FlagDisabled != 0 {
		c.Disabled = on
	}
	if f&FlagCheckable != 0 {
		c.Checkable = on
	}
	if f&FlagChecked != 0 {
		c.Checked = on
	}
	if f&FlagNoRepeat != 0 {
		c.NoRepeat = on
	}
	if f&FlagClickTrig != 0 {
		c.ClickTrig = on
	}
	return c
}

// interactive reports whether the button can be pressed.
func (c Ctrl) interactive() bool {
	return !c.Hidden && !c.Disabled
}
