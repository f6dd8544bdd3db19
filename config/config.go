// Package config loads the YAML description of a button matrix demo:
// the map and control bits, the style and the input timing.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/OpticalFlyer/btnmatrix/btnmatrix"
)

// Config mirrors the YAML file.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Matrix MatrixConfig `yaml:"matrix"`
	Style  StyleConfig  `yaml:"style"`
	Input  InputConfig  `yaml:"input"`
}

type WindowConfig struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Title  string `yaml:"title,omitempty"`
}

// MatrixConfig describes the buttons. Rows takes precedence over Map.
type MatrixConfig struct {
	Rows       [][]string         `yaml:"rows,omitempty"`
	Map        []string           `yaml:"map,omitempty"`
	Controls   map[int]CtrlConfig `yaml:"controls,omitempty"`
	OneChecked bool               `yaml:"one_checked,omitempty"`
	Recolor    bool               `yaml:"recolor,omitempty"`
	Direction  string             `yaml:"direction,omitempty"`
}

// CtrlConfig is the control bits of one button.
type CtrlConfig struct {
	Width     uint8 `yaml:"width,omitempty"`
	Hidden    bool  `yaml:"hidden,omitempty"`
	Disabled  bool  `yaml:"disabled,omitempty"`
	Checkable bool  `yaml:"checkable,omitempty"`
	Checked   bool  `yaml:"checked,omitempty"`
	NoRepeat  bool  `yaml:"no_repeat,omitempty"`
	ClickTrig bool  `yaml:"click_trig,omitempty"`
}

type StyleConfig struct {
	Padding        PaddingConfig          `yaml:"padding"`
	RowGap         *int                   `yaml:"row_gap,omitempty"`
	ColumnGap      *int                   `yaml:"column_gap,omitempty"`
	BorderWidth    *int                   `yaml:"border_width,omitempty"`
	BorderInternal bool                   `yaml:"border_internal,omitempty"`
	Colors         map[string]ColorConfig `yaml:"colors,omitempty"`
}

type PaddingConfig struct {
	Left   int `yaml:"left,omitempty"`
	Top    int `yaml:"top,omitempty"`
	Right  int `yaml:"right,omitempty"`
	Bottom int `yaml:"bottom,omitempty"`
}

// ColorConfig holds "#RRGGBB" or "#RRGGBBAA" strings.
type ColorConfig struct {
	Background string `yaml:"bg,omitempty"`
	Text       string `yaml:"text,omitempty"`
	Border     string `yaml:"border,omitempty"`
}

type InputConfig struct {
	LongPressMS int `yaml:"long_press_ms,omitempty"`
	RepeatMS    int `yaml:"repeat_ms,omitempty"`
}

// Load reads and parses a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOptional is Load, but a missing file yields an empty config.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Parse decodes YAML config data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Resolved is a config with defaults applied and values converted to the
// types the widget uses.
type Resolved struct {
	WindowWidth  int
	WindowHeight int
	Title        string

	Map        btnmatrix.Map
	Ctrl       []btnmatrix.Ctrl
	OneChecked bool
	Recolor    bool
	Direction  btnmatrix.Direction

	Padding   btnmatrix.Insets
	RowGap    int
	ColumnGap int
	Style     Style

	LongPress time.Duration
	Repeat    time.Duration
}

// Style holds the resolved colours per button state name.
type Style struct {
	BorderWidth    int
	BorderInternal bool
	Colors         map[string]Colors
}

// Colors is a resolved ColorConfig. Nil fields fall back to the theme.
type Colors struct {
	Background color.Color
	Text       color.Color
	Border     color.Color
}

// StateNames are the keys accepted under style.colors.
var StateNames = []string{"default", "pressed", "checked", "disabled", "focused", "edited"}

// Resolve applies defaults and validates the config.
func (c *Config) Resolve() (*Resolved, error) {
	r := &Resolved{
		WindowWidth:  c.Window.Width,
		WindowHeight: c.Window.Height,
		Title:        strings.TrimSpace(c.Window.Title),
		OneChecked:   c.Matrix.OneChecked,
		Recolor:      c.Matrix.Recolor,
		Padding: btnmatrix.Insets{
			Left:   c.Style.Padding.Left,
			Top:    c.Style.Padding.Top,
			Right:  c.Style.Padding.Right,
			Bottom: c.Style.Padding.Bottom,
		},
		RowGap:    intOr(c.Style.RowGap, 6),
		ColumnGap: intOr(c.Style.ColumnGap, 6),
		LongPress: msOr(c.Input.LongPressMS, 400),
		Repeat:    msOr(c.Input.RepeatMS, 100),
	}
	if r.WindowWidth <= 0 {
		r.WindowWidth = 800
	}
	if r.WindowHeight <= 0 {
		r.WindowHeight = 600
	}
	if r.Title == "" {
		r.Title = "Button Matrix"
	}

	switch strings.ToLower(strings.TrimSpace(c.Matrix.Direction)) {
	case "", "ltr":
		r.Direction = btnmatrix.LeftToRight
	case "rtl":
		r.Direction = btnmatrix.RightToLeft
	default:
		return nil, fmt.Errorf("unknown direction %q", c.Matrix.Direction)
	}

	switch {
	case len(c.Matrix.Rows) > 0:
		r.Map = btnmatrix.Rows(c.Matrix.Rows...)
	case len(c.Matrix.Map) > 0:
		r.Map = btnmatrix.Map(c.Matrix.Map)
	default:
		r.Map = btnmatrix.DefaultMap()
	}

	count := r.Map.ButtonCount()
	r.Ctrl = make([]btnmatrix.Ctrl, count)
	ids := make([]int, 0, len(c.Matrix.Controls))
	for id := range c.Matrix.Controls {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		cc := c.Matrix.Controls[id]
		if id < 0 || id >= count {
			return nil, fmt.Errorf("controls: button %d out of range (map has %d buttons)", id, count)
		}
		if cc.Width > 7 {
			return nil, fmt.Errorf("controls: button %d width %d out of range 1-7", id, cc.Width)
		}
		r.Ctrl[id] = btnmatrix.Ctrl{
			Width:     cc.Width,
			Hidden:    cc.Hidden,
			Disabled:  cc.Disabled,
			Checkable: cc.Checkable,
			Checked:   cc.Checked,
			NoRepeat:  cc.NoRepeat,
			ClickTrig: cc.ClickTrig,
		}
	}

	r.Style = Style{
		BorderWidth:    intOr(c.Style.BorderWidth, 1),
		BorderInternal: c.Style.BorderInternal,
		Colors:         make(map[string]Colors, len(c.Style.Colors)),
	}
	for name, cc := range c.Style.Colors {
		if !validState(name) {
			return nil, fmt.Errorf("style.colors: unknown state %q", name)
		}
		var (
			cols Colors
			err  error
		)
		if cols.Background, err = parseColor(cc.Background); err != nil {
			return nil, fmt.Errorf("style.colors.%s.bg: %w", name, err)
		}
		if cols.Text, err = parseColor(cc.Text); err != nil {
			return nil, fmt.Errorf("style.colors.%s.text: %w", name, err)
		}
		if cols.Border, err = parseColor(cc.Border); err != nil {
			return nil, fmt.Errorf("style.colors.%s.border: %w", name, err)
		}
		r.Style.Colors[name] = cols
	}

	return r, nil
}

func validState(name string) bool {
	for _, s := range StateNames {
		if s == name {
			return true
		}
	}
	return false
}

// parseColor reads "#RRGGBB" or "#RRGGBBAA". An empty string is a nil colour.
func parseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return nil, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func msOr(ms, def int) time.Duration {
	if ms <= 0 {
		ms = def
	}
	return time.Duration(ms) * time.Millisecond
}
