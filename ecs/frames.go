package ecs

// FrameID identifies a pending frame callback. Zero is never issued.
type FrameID uint64

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameQueue is a requestAnimationFrame-style scheduler. Callbacks requested
// while Run is executing are deferred to the next Run.
type FrameQueue struct {
	next    FrameID
	pending []frameRequest
	running []frameRequest
}

// RequestFrame schedules fn for the next Run.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	q.pending = append(q.pending, frameRequest{id: q.next, fn: fn})
	return q.next
}

// CancelFrame drops a pending callback. Unknown or already fired ids are
// ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	for i := range q.pending {
		if q.pending[i].id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	// a callback in the batch being run may cancel a later one
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// Run fires every callback that was pending when it was called and returns
// how many fired.
func (q *FrameQueue) Run() int {
	q.running, q.pending = q.pending, nil
	fired := 0
	for i := 0; i < len(q.running); i++ {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		q.running[i].fn = nil
		fn()
		fired++
	}
	q.running = nil
	return fired
}

// Len returns the number of callbacks waiting for the next Run.
func (q *FrameQueue) Len() int {
	return len(q.pending)
}
