package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SketchFile is the default config name.
const SketchFile = "sketch.yaml"

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

type SketchSpec struct {
	Name       string       `yaml:"name"`
	Viewport   ViewportSpec `yaml:"viewport"`
	Background *YAMLColor   `yaml:"background"`
	Physics    PhysicsSpec  `yaml:"physics"`
	Material   MaterialSpec `yaml:"material"`
	Brush      BrushSpec    `yaml:"brush"`
}

// LoadSketchSpec loads filename (SketchFile when empty) and fills unset
// fields with defaults.
func LoadSketchSpec(filename string) (*SketchSpec, error) {
	if filename == "" {
		filename = SketchFile
	}
	spec, err := LoadSpec[SketchSpec](filename)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

type ViewportSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PhysicsSpec struct {
	PTMRatio           float64   `yaml:"ptm_ratio"`
	Gravity            *Vec2Spec `yaml:"gravity"`
	Iterations         int       `yaml:"iterations"`
	Substeps           int       `yaml:"substeps"`
	SleepTimeThreshold float64   `yaml:"sleep_time_threshold"`
	WallThickness      float64   `yaml:"wall_thickness"`
}

type MaterialSpec struct {
	Density     *float64 `yaml:"density"`
	Friction    *float64 `yaml:"friction"`
	Restitution *float64 `yaml:"restitution"`
}

type BrushSpec struct {
	Image string `yaml:"image"`
}

func (s *SketchSpec) applyDefaults() {
	if s.Viewport.Width == 0 {
		s.Viewport.Width = 1024
	}
	if s.Viewport.Height == 0 {
		s.Viewport.Height = 768
	}
	if s.Background == nil {
		s.Background = &YAMLColor{Color: color.NRGBA{R: 0x00, G: 0x8F, B: 0xD8, A: 0xD8}}
	}
	p := &s.Physics
	if p.PTMRatio == 0 {
		p.PTMRatio = 32
	}
	if p.Gravity == nil {
		p.Gravity = &Vec2Spec{X: 0, Y: -9.8}
	}
	if p.Iterations == 0 {
		p.Iterations = 8
	}
	if p.Substeps == 0 {
		p.Substeps = 1
	}
	if p.SleepTimeThreshold == 0 {
		p.SleepTimeThreshold = 0.5
	}
	if p.WallThickness == 0 {
		p.WallThickness = 0.25
	}
	m := &s.Material
	if m.Density == nil {
		m.Density = float64Ptr(1.0)
	}
	if m.Friction == nil {
		m.Friction = float64Ptr(0.2)
	}
	if m.Restitution == nil {
		m.Restitution = float64Ptr(0.1)
	}
	if s.Brush.Image == "" {
		s.Brush.Image = "brush.png"
	}
}

// Validate rejects values the physics world cannot run with.
func (s *SketchSpec) Validate() error {
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", s.Viewport.Width, s.Viewport.Height)
	}
	if s.Physics.PTMRatio <= 0 {
		return fmt.Errorf("ptm_ratio must be positive, got %v", s.Physics.PTMRatio)
	}
	if s.Physics.Iterations < 1 || s.Physics.Substeps < 1 {
		return fmt.Errorf("iterations and substeps must be at least 1")
	}
	if *s.Material.Density <= 0 {
		return fmt.Errorf("material density must be positive, got %v", *s.Material.Density)
	}
	return nil
}

func float64Ptr(f float64) *float64 {
	return &f
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
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
