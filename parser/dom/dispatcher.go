package dom

import "github.com/sirupsen/logrus"

// Dispatcher delivers events into the tree under root. Pointer events
// without a target are hit-tested against node geometry first.
type Dispatcher struct {
	root  *Node
	queue []Event
	log   logrus.FieldLogger
}

type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger listener failures are reported to.
func WithLogger(log logrus.FieldLogger) DispatcherOption {
	return func(d *Dispatcher) {
		d.log = log
	}
}

func NewDispatcher(root *Node, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		root: root,
		log:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) Root() *Node {
	return d.root
}

// DispatchEvent resolves the target of e if needed and runs the capture,
// target and bubble phases to completion before returning.
func (d *Dispatcher) DispatchEvent(e Event) {
	if e.Target() == nil {
		if me, ok := e.(*MouseEvent); ok {
			e.SetTarget(d.HitTest(float64(me.X), float64(me.Y)))
		}
	}
	if e.Target() == nil {
		d.log.WithField("event", e.Type()).Trace("no target resolved")
		return
	}
	dispatch(d.root, e, d.log)
}

// HitTest returns the deepest node whose rectangle contains (x, y), or nil
// when the point is outside the root. Among overlapping siblings the first
// in child order wins.
func (d *Dispatcher) HitTest(x, y float64) *Node {
	if d.root == nil {
		return nil
	}
	return nodeAt(d.root, x, y)
}

func nodeAt(n *Node, x, y float64) *Node {
	if !n.Geometry.ContainsPoint(x, y) {
		return nil
	}
	for _, child := range n.childNodes {
		if hit := nodeAt(child, x, y); hit != nil {
			return hit
		}
	}
	return n
}

// EnqueueEvent appends e to the dispatcher's FIFO queue.
func (d *Dispatcher) EnqueueEvent(e Event) {
	d.queue = append(d.queue, e)
}

func (d *Dispatcher) QueueLen() int {
	return len(d.queue)
}

// DispatchEvents drains the queue in FIFO order, one complete dispatch at a
// time. Events enqueued by listeners are delivered in the same drain.
func (d *Dispatcher) DispatchEvents() {
	for len(d.queue) > 0 {
		e := d.queue[0]
		d.queue[0] = nil
		d.queue = d.queue[1:]
		d.DispatchEvent(e)
	}
}
