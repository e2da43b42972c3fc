package scene

import "github.com/milk9111/arrowlanes/ecs"

// FrameScheduler is the host's "run this on the next frame" service.
type FrameScheduler interface {
	RequestFrame(fn func()) ecs.FrameID
	CancelFrame(id ecs.FrameID)
}

// LoopDriver keeps at most one tick callback outstanding. It is idle when
// nothing is scheduled and running while a callback waits for its frame.
type LoopDriver struct {
	frames  FrameScheduler
	pending ecs.FrameID
}

func NewLoopDriver(frames FrameScheduler) *LoopDriver {
	return &LoopDriver{frames: frames}
}

// Running reports whether a tick is scheduled.
func (d *LoopDriver) Running() bool {
	return d.pending != 0
}

// Schedule arranges for tick to run on the next frame. It does nothing and
// returns false while a tick is already pending.
func (d *LoopDriver) Schedule(tick func()) bool {
	if d.Running() {
		return false
	}
	var id ecs.FrameID
	id = d.frames.RequestFrame(func() {
		if d.pending != id {
			return
		}
		d.pending = 0
		tick()
	})
	d.pending = id
	return true
}

// Stop cancels the pending tick, if any.
func (d *LoopDriver) Stop() {
	if !d.Running() {
		return
	}
	d.frames.CancelFrame(d.pending)
	d.pending = 0
}
