package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

type ProjectileState int

const (
	ProjectileIdle ProjectileState = iota
	ProjectileMoving
	ProjectileHit
)

func (s ProjectileState) String() string {
	switch s {
	case ProjectileIdle:
		return "idle"
	case ProjectileMoving:
		return "moving"
	case ProjectileHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Projectile is the arrow of a lane. Pos is the arrow tip. Vel stays zero
// while idle and is left untouched after a hit so the arrow keeps facing the
// way it flew.
type Projectile struct {
	Pos   cp.Vector
	Vel   cp.Vector
	State ProjectileState
}

// Facing returns the angle the arrow points at. Idle arrows wait pointing
// left.
func (p Projectile) Facing() float64 {
	if p.State == ProjectileIdle {
		return math.Pi
	}
	return p.Vel.ToAngle()
}

var ProjectileComponent = NewComponent[Projectile]()
