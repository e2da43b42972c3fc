package render

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

type OpKind string

const (
	OpClear       OpKind = "clear"
	OpFillCircle  OpKind = "fill_circle"
	OpStrokeLine  OpKind = "stroke_line"
	OpFillPolygon OpKind = "fill_polygon"
)

// Op is one recorded draw call.
type Op struct {
	Kind   OpKind
	Points []cp.Vector
	Radius float64
	Width  float64
	Color  color.Color
}

// Recorder is a Surface that keeps the draw calls since the last Clear, plus
// the number of frames painted. Used by headless runs and tests.
type Recorder struct {
	Ops    []Op
	Frames int
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear})
	r.Frames++
}

func (r *Recorder) FillCircle(center cp.Vector, radius float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, Points: []cp.Vector{center}, Radius: radius, Color: clr})
}

func (r *Recorder) StrokeLine(from, to cp.Vector, width float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeLine, Points: []cp.Vector{from, to}, Width: width, Color: clr})
}

func (r *Recorder) FillPolygon(points []cp.Vector, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillPolygon, Points: append([]cp.Vector(nil), points...), Color: clr})
}

// Filter returns the recorded ops of one kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
