package system

import (
	"sort"

	"github.com/milk9111/arrowlanes/ecs"
	"github.com/milk9111/arrowlanes/ecs/component"
)

// Lanes returns every complete lane entity ordered by lane index.
func Lanes(w *ecs.World) []ecs.Entity {
	if w == nil {
		return nil
	}
	var ents []ecs.Entity
	index := make(map[ecs.Entity]int)
	ecs.ForEach3(w,
		component.LaneComponent.Kind(),
		component.TargetComponent.Kind(),
		component.ProjectileComponent.Kind(),
		func(e ecs.Entity, lane *component.Lane, _ *component.Target, _ *component.Projectile) {
			ents = append(ents, e)
			index[e] = lane.Index
		},
	)
	sort.SliceStable(ents, func(i, j int) bool { return index[ents[i]] < index[ents[j]] })
	return ents
}

func laneParts(w *ecs.World, e ecs.Entity) (*component.Target, *component.Projectile, bool) {
	t, ok := ecs.Get(w, e, component.TargetComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	return t, p, true
}
