package particle

// FrameHandle identifies a pending frame request. The zero value is never
// returned by RequestFrame.
type FrameHandle uint64

// FrameScheduler runs callbacks once on the next frame.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameHandle
	CancelFrame(h FrameHandle)
}

// FrameQueue is a FrameScheduler flushed explicitly by the game loop.
//
// Callbacks requested while Tick is running are deferred to the following
// Tick, so a callback that re-requests itself runs exactly once per frame.
type FrameQueue struct {
	next    FrameHandle
	pending map[FrameHandle]func()
	order   []FrameHandle
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameHandle]func())}
}

// RequestFrame schedules fn for the next Tick.
func (q *FrameQueue) RequestFrame(fn func()) FrameHandle {
	q.next++
	h := q.next
	q.pending[h] = fn
	q.order = append(q.order, h)
	return h
}

// CancelFrame drops a pending request. Unknown or already-run handles are ignored.
func (q *FrameQueue) CancelFrame(h FrameHandle) {
	delete(q.pending, h)
}

// Pending returns the number of callbacks waiting for the next Tick.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Tick runs every callback requested before this call.
func (q *FrameQueue) Tick() {
	order := q.order
	q.order = nil
	for _, h := range order {
		fn, ok := q.pending[h]
		if !ok {
			continue
		}
		delete(q.pending, h)
		fn()
	}
}
