package scene

import (
	"image/color"
	"log"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arrowlanes/ecs"
	"github.com/milk9111/arrowlanes/ecs/component"
	"github.com/milk9111/arrowlanes/ecs/render"
	"github.com/milk9111/arrowlanes/ecs/system"
	"github.com/milk9111/arrowlanes/prefabs"
)

// Scene is one play session: the lanes built from a layout, the loop driver
// and the surface it paints. All methods must be called from the game loop.
type Scene struct {
	id     uuid.UUID
	layout *prefabs.LayoutSpec
	world  *ecs.World

	loop    *LoopDriver
	surface render.Surface

	launch  *system.LaunchSystem
	flight  *system.FlightSystem
	render  *system.RenderSystem
	systems *ecs.Scheduler

	hits   int
	logger *log.Logger
}

// Option configures a Scene in New.
type Option func(*Scene)

// WithSystems adds systems that run after the flight system on every tick and
// may read that tick's events.
func WithSystems(systems ...ecs.System) Option {
	return func(s *Scene) {
		for _, sys := range systems {
			s.systems.Add(sys)
		}
	}
}

// WithLogger replaces the default logger. A nil logger is ignored.
func WithLogger(logger *log.Logger) Option {
	return func(s *Scene) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds a scene and resets it, which paints the first frame.
func New(layout *prefabs.LayoutSpec, frames FrameScheduler, surface render.Surface, opts ...Option) *Scene {
	if surface == nil {
		surface = render.Discard
	}
	flight := system.NewFlightSystem()
	s := &Scene{
		world:   ecs.NewWorld(),
		loop:    NewLoopDriver(frames),
		surface: surface,
		flight:  flight,
		systems: ecs.NewScheduler(flight),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.applyLayout(layout)
	s.Reset()
	return s
}

func (s *Scene) applyLayout(layout *prefabs.LayoutSpec) {
	s.layout = layout
	s.launch = system.NewLaunchSystem(layout.Speed)

	var arrowColor color.Color = prefabs.DefaultArrowColor
	if layout.Arrow.Color != nil && layout.Arrow.Color.Color != nil {
		arrowColor = layout.Arrow.Color.Color
	}
	s.render = system.NewRenderSystem(system.ArrowStyle{
		HeadLength:    layout.Arrow.HeadLength,
		HeadHalfWidth: layout.Arrow.HeadHalfWidth,
		ShaftLength:   layout.Arrow.ShaftLength,
		LineWidth:     layout.Arrow.LineWidth,
		Color:         arrowColor,
	})
}

// SetLayout swaps the layout and resets onto it.
func (s *Scene) SetLayout(layout *prefabs.LayoutSpec) {
	s.applyLayout(layout)
	s.Reset()
}

// Reset cancels any scheduled tick, destroys the lane entities, rebuilds
// every lane from the layout and paints once. The cancel comes first so a
// stale tick can never see the new lanes.
func (s *Scene) Reset() {
	s.loop.Stop()

	s.id = uuid.New()
	s.hits = 0
	ecs.ForEach(s.world, component.LaneComponent.Kind(), func(e ecs.Entity, _ *component.Lane) {
		ecs.DestroyEntity(s.world, e)
	})
	s.world.Events().Drain()
	for i, spec := range s.layout.Lanes {
		if err := s.spawnLane(i, spec); err != nil {
			// only reachable through an ECS bug; the world is brand new
			s.logger.Printf("scene %s: spawn lane %d: %v", s.id, i, err)
		}
	}

	s.logger.Printf("scene %s: reset with %d lanes", s.id, len(s.layout.Lanes))

	s.draw()
}

func (s *Scene) spawnLane(index int, spec prefabs.LaneSpec) error {
	e := ecs.CreateEntity(s.world)
	if err := ecs.Add(s.world, e, component.LaneComponent.Kind(), &component.Lane{Index: index}); err != nil {
		return err
	}
	if err := ecs.Add(s.world, e, component.TargetComponent.Kind(), &component.Target{
		Pos:       cp.Vector{X: spec.Target.X, Y: spec.Target.Y},
		Radius:    spec.Target.Radius,
		Color:     spec.Target.Base.Color,
		BaseColor: spec.Target.Base.Color,
		HitColor:  spec.Target.Hit.Color,
	}); err != nil {
		return err
	}
	return ecs.Add(s.world, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Pos:   cp.Vector{X: spec.Arrow.X, Y: spec.Arrow.Y},
		State: component.ProjectileIdle,
	})
}

// Click launches the lane whose target contains (x, y), if any. Points
// outside every target are ignored.
func (s *Scene) Click(x, y float64) bool {
	e, ok := s.launch.Pick(s.world, cp.Vector{X: x, Y: y})
	if !ok {
		return false
	}
	return s.launchEntity(e)
}

// Launch fires lane i. Out of range lanes and non-idle projectiles are
// ignored.
func (s *Scene) Launch(i int) bool {
	for _, e := range system.Lanes(s.world) {
		if lane, ok := ecs.Get(s.world, e, component.LaneComponent.Kind()); ok && lane.Index == i {
			return s.launchEntity(e)
		}
	}
	return false
}

func (s *Scene) launchEntity(e ecs.Entity) bool {
	if !s.launch.Launch(s.world, e) {
		return false
	}
	if lane, ok := ecs.Get(s.world, e, component.LaneComponent.Kind()); ok {
		s.logger.Printf("scene %s: lane %d launched", s.id, lane.Index)
	}
	s.loop.Schedule(s.tick)
	return true
}

// tick is the frame callback: run the systems, count hits, paint and
// reschedule while anything moves.
func (s *Scene) tick() {
	s.systems.Update(s.world)
	moving := s.flight.Moving()

	for _, evt := range s.world.Events().Drain() {
		if hit, ok := evt.Data.(ecs.LaneHitEvent); ok {
			s.hits++
			s.logger.Printf("scene %s: lane %d hit (%d/%d)", s.id, hit.Lane, s.hits, len(s.layout.Lanes))
		}
	}

	s.draw()

	if moving {
		s.loop.Schedule(s.tick)
	}
}

func (s *Scene) draw() {
	s.render.Draw(s.world, s.surface)
}

// Running reports whether the loop driver has a tick scheduled.
func (s *Scene) Running() bool {
	return s.loop.Running()
}

// ID identifies the session started by the last Reset.
func (s *Scene) ID() uuid.UUID {
	return s.id
}

// Hits returns how many lanes have been hit since the last Reset.
func (s *Scene) Hits() int {
	return s.hits
}

// Layout returns the layout the lanes were built from.
func (s *Scene) Layout() *prefabs.LayoutSpec {
	return s.layout
}

// LaneState is a value copy of one lane.
type LaneState struct {
	Index      int
	Target     component.Target
	Projectile component.Projectile
}

// Lanes returns copies of every lane in index order.
func (s *Scene) Lanes() []LaneState {
	ents := system.Lanes(s.world)
	out := make([]LaneState, 0, len(ents))
	for _, e := range ents {
		lane, _ := ecs.Get(s.world, e, component.LaneComponent.Kind())
		t, _ := ecs.Get(s.world, e, component.TargetComponent.Kind())
		p, _ := ecs.Get(s.world, e, component.ProjectileComponent.Kind())
		out = append(out, LaneState{Index: lane.Index, Target: *t, Projectile: *p})
	}
	return out
}
