package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var ErrInvalidLayout = errors.New("prefabs: invalid layout")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LayoutSpec is the initial state of a scene plus its tuning knobs.
type LayoutSpec struct {
	Name       string     `yaml:"name"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Background *YAMLColor `yaml:"background"`
	Speed      float64    `yaml:"speed"`
	Arrow      ArrowSpec  `yaml:"arrow"`
	Lanes      []LaneSpec `yaml:"lanes"`
}

type ArrowSpec struct {
	HeadLength    float64    `yaml:"head_length"`
	HeadHalfWidth float64    `yaml:"head_half_width"`
	ShaftLength   float64    `yaml:"shaft_length"`
	LineWidth     float64    `yaml:"line_width"`
	Color         *YAMLColor `yaml:"color"`
}

type LaneSpec struct {
	Target TargetSpec `yaml:"target"`
	Arrow  PointSpec  `yaml:"arrow"`
}

type TargetSpec struct {
	X      float64   `yaml:"x"`
	Y      float64   `yaml:"y"`
	Radius float64   `yaml:"radius"`
	Base   YAMLColor `yaml:"base"`
	Hit    YAMLColor `yaml:"hit"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

const (
	DefaultWidth         = 800
	DefaultHeight        = 400
	DefaultSpeed         = 4.0
	DefaultHeadLength    = 14.0
	DefaultHeadHalfWidth = 5.0
	DefaultShaftLength   = 30.0
	DefaultLineWidth     = 2.0
)

var DefaultArrowColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

// LoadLayout reads, defaults and validates a layout file.
func LoadLayout(name string) (*LayoutSpec, error) {
	spec, err := LoadSpec[LayoutSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.finish(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

// ParseLayout decodes a layout document and fills in defaults.
func ParseLayout(data []byte) (*LayoutSpec, error) {
	var spec LayoutSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := spec.finish(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (l *LayoutSpec) finish() error {
	l.applyDefaults()
	return l.Validate()
}

func (l *LayoutSpec) applyDefaults() {
	if l.Width == 0 {
		l.Width = DefaultWidth
	}
	if l.Height == 0 {
		l.Height = DefaultHeight
	}
	if l.Speed == 0 {
		l.Speed = DefaultSpeed
	}
	if l.Arrow.HeadLength == 0 {
		l.Arrow.HeadLength = DefaultHeadLength
	}
	if l.Arrow.HeadHalfWidth == 0 {
		l.Arrow.HeadHalfWidth = DefaultHeadHalfWidth
	}
	if l.Arrow.ShaftLength == 0 {
		l.Arrow.ShaftLength = DefaultShaftLength
	}
	if l.Arrow.LineWidth == 0 {
		l.Arrow.LineWidth = DefaultLineWidth
	}
	if l.Arrow.Color == nil {
		l.Arrow.Color = &YAMLColor{Color: DefaultArrowColor}
	}
}

// Validate checks the invariants the scene relies on.
func (l *LayoutSpec) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidLayout, l.Width, l.Height)
	}
	if l.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %v", ErrInvalidLayout, l.Speed)
	}
	if len(l.Lanes) == 0 {
		return fmt.Errorf("%w: no lanes", ErrInvalidLayout)
	}
	for i, lane := range l.Lanes {
		if lane.Target.Radius <= 0 {
			return fmt.Errorf("%w: lane %d: radius must be positive", ErrInvalidLayout, i)
		}
		if lane.Target.Base.Color == nil || lane.Target.Hit.Color == nil {
			return fmt.Errorf("%w: lane %d: base and hit colors are required", ErrInvalidLayout, i)
		}
	}
	return nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or a CSS color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s, ok := strings.CutPrefix(value.Value, "#")
	if !ok || (len(s) != 6 && len(s) != 8) {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	return ColorName(c.Color), nil
}

// ColorName returns the CSS name of c when one matches exactly, otherwise a
// #rrggbb[aa] string.
func ColorName(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		for _, name := range colornames.Names {
			if colornames.Map[name] == (color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}) {
				return name
			}
		}
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
