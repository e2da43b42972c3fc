package main

import (
	"fmt"
	"log"

	"github.com/milk9111/arrowlanes/ecs"
	"github.com/milk9111/arrowlanes/ecs/render"
	"github.com/milk9111/arrowlanes/prefabs"
	"github.com/milk9111/arrowlanes/scene"
)

// Report is the outcome of one headless run.
type Report struct {
	Layout  string       `yaml:"layout"`
	Session string       `yaml:"session"`
	Ticks   int          `yaml:"ticks"`
	Settled bool         `yaml:"settled"`
	Frames  int          `yaml:"frames_painted"`
	Lanes   []LaneReport `yaml:"lanes"`
}

type LaneReport struct {
	Index    int     `yaml:"index"`
	Launched bool    `yaml:"launched"`
	HitTick  int     `yaml:"hit_tick,omitempty"`
	State    string  `yaml:"state"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Color    string  `yaml:"color"`
}

// hitRecorder notes the tick on which each lane was hit.
type hitRecorder struct {
	tick *int
	hits map[int]int
}

func (r *hitRecorder) Update(w *ecs.World) {
	w.Events().Each(func(evt ecs.Event) {
		if hit, ok := evt.Data.(ecs.LaneHitEvent); ok {
			r.hits[hit.Lane] = *r.tick
		}
	})
}

// simulate launches the given lanes (all of them when lanes is empty) and
// pumps frames until the loop goes idle or maxTicks frames have run.
func simulate(layout *prefabs.LayoutSpec, lanes []int, maxTicks int, logger *log.Logger) (*Report, error) {
	var (
		frames ecs.FrameQueue
		rec    render.Recorder
		tick   int
	)
	hits := &hitRecorder{tick: &tick, hits: make(map[int]int)}
	s := scene.New(layout, &frames, &rec, scene.WithLogger(logger), scene.WithSystems(hits))

	if len(lanes) == 0 {
		for i := range layout.Lanes {
			lanes = append(lanes, i)
		}
	}
	launched := make(map[int]bool, len(lanes))
	for _, i := range lanes {
		if i < 0 || i >= len(layout.Lanes) {
			return nil, fmt.Errorf("lanesim: lane %d out of range [0, %d)", i, len(layout.Lanes))
		}
		if s.Launch(i) {
			launched[i] = true
		}
	}

	for tick < maxTicks && s.Running() {
		tick++
		frames.Run()
	}

	report := &Report{
		Layout:  layout.Name,
		Session: s.ID().String(),
		Ticks:   tick,
		Settled: !s.Running(),
		Frames:  rec.Frames,
	}
	for _, lane := range s.Lanes() {
		report.Lanes = append(report.Lanes, LaneReport{
			Index:    lane.Index,
			Launched: launched[lane.Index],
			HitTick:  hits.hits[lane.Index],
			State:    lane.Projectile.State.String(),
			X:        lane.Projectile.Pos.X,
			Y:        lane.Projectile.Pos.Y,
			Color:    prefabs.ColorName(lane.Target.Color),
		})
	}
	return report, nil
}
