package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arrowlanes/ecs"
	"github.com/milk9111/arrowlanes/ecs/component"
)

// FlightSystem advances moving projectiles by one tick and resolves hits.
type FlightSystem struct {
	moving bool
}

func NewFlightSystem() *FlightSystem {
	return &FlightSystem{}
}

// Update runs Step and keeps its result for Moving.
func (s *FlightSystem) Update(w *ecs.World) {
	s.moving = s.Step(w)
}

// Moving reports the result of the last Update.
func (s *FlightSystem) Moving() bool {
	return s.moving
}

// Step runs one tick and reports whether any projectile is still moving.
//
// A projectile hits once its tip is within the target radius of the target
// center. The tip is then pinned to the circle along the approach direction
// and the velocity is kept so the arrow keeps its heading.
func (s *FlightSystem) Step(w *ecs.World) bool {
	moving := false
	for _, e := range Lanes(w) {
		t, p, ok := laneParts(w, e)
		if !ok || p.State != component.ProjectileMoving {
			continue
		}

		p.Pos = p.Pos.Add(p.Vel)

		offset := p.Pos.Sub(t.Pos)
		d := offset.Length()
		if d > t.Radius {
			moving = true
			continue
		}

		// The tip landed exactly on the center. Pin it to the boundary on the
		// side it came from; a zero offset would otherwise leave it at the
		// center, unlike every other hit.
		unit := p.Vel.Neg().Normalize()
		if d > 0 {
			unit = cp.Vector{X: offset.X / d, Y: offset.Y / d}
		}
		p.Pos = t.Pos.Add(unit.Mult(t.Radius))
		p.State = component.ProjectileHit
		t.Color = t.HitColor

		lane, _ := ecs.Get(w, e, component.LaneComponent.Kind())
		w.Events().Push(ecs.Event{
			Type: ecs.EventLaneHit,
			Data: ecs.LaneHitEvent{Entity: e, Lane: lane.Index},
		})
	}
	return moving
}
