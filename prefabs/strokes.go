package prefabs

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// DemoStrokesFile is the embedded sample stroke script.
const DemoStrokesFile = "demo_strokes.yaml"

// StrokeScript is a list of recorded strokes in screen pixels with the
// origin at the bottom-left.
type StrokeScript struct {
	Name    string       `yaml:"name"`
	Strokes []StrokeSpec `yaml:"strokes"`
}

type StrokeSpec struct {
	Points []Vec2Spec `yaml:"points"`
}

// LoadStrokeScript loads and checks a stroke script. Every stroke needs at
// least one point.
func LoadStrokeScript(filename string) (*StrokeScript, error) {
	if filename == "" {
		filename = DemoStrokesFile
	}
	script, err := LoadSpec[StrokeScript](filename)
	if err != nil {
		return nil, err
	}
	if len(script.Strokes) == 0 {
		return nil, fmt.Errorf("prefabs: %s: no strokes", filename)
	}
	for i, s := range script.Strokes {
		if len(s.Points) == 0 {
			return nil, fmt.Errorf("prefabs: %s: stroke %d has no points", filename, i)
		}
	}
	return &script, nil
}

// Vectors returns the strokes as point lists.
func (s *StrokeScript) Vectors() [][]cp.Vector {
	out := make([][]cp.Vector, 0, len(s.Strokes))
	for _, stroke := range s.Strokes {
		pts := make([]cp.Vector, 0, len(stroke.Points))
		for _, p := range stroke.Points {
			pts = append(pts, cp.Vector{X: p.X, Y: p.Y})
		}
		out = append(out, pts)
	}
	return out
}
