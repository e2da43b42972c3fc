package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arrowlanes/ecs"
	"github.com/milk9111/arrowlanes/ecs/component"
)

// LaunchSystem turns a pointer position into a projectile launch.
type LaunchSystem struct {
	// Speed is the launch speed in canvas units per tick.
	Speed float64
}

func NewLaunchSystem(speed float64) *LaunchSystem {
	return &LaunchSystem{Speed: speed}
}

// Pick returns the first lane, in index order, whose target disk contains p.
func (s *LaunchSystem) Pick(w *ecs.World, p cp.Vector) (ecs.Entity, bool) {
	for _, e := range Lanes(w) {
		t, ok := ecs.Get(w, e, component.TargetComponent.Kind())
		if ok && t.Contains(p) {
			return e, true
		}
	}
	return 0, false
}

// Launch fires the projectile of lane e at its target. Only idle projectiles
// launch; it reports whether this call changed anything.
func (s *LaunchSystem) Launch(w *ecs.World, e ecs.Entity) bool {
	t, p, ok := laneParts(w, e)
	if !ok || p.State != component.ProjectileIdle {
		return false
	}

	dir := t.Pos.Sub(p.Pos)
	d := dir.Length()
	if d == 0 {
		return false
	}

	p.Vel = cp.Vector{X: dir.X / d * s.Speed, Y: dir.Y / d * s.Speed}
	p.State = component.ProjectileMoving
	return true
}
