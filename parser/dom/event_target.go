package dom

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidEventType is returned when a listener is registered for an
	// empty event type.
	ErrInvalidEventType = errors.New("invalid event type")
	// ErrNilListener is returned when a nil listener is registered.
	ErrNilListener = errors.New("nil event listener")
	// ErrUncomparableListener is returned for listeners whose dynamic type
	// cannot be compared with ==, which removal relies on.
	ErrUncomparableListener = errors.New("event listener is not comparable")
)

func checkListener(eventType string, l EventListener) error {
	if eventType == "" {
		return ErrInvalidEventType
	}
	if l == nil {
		return ErrNilListener
	}
	if !reflect.TypeOf(l).Comparable() {
		return ErrUncomparableListener
	}
	return nil
}

// EventListener handles events delivered to a node. Implementations must be
// comparable: removal matches listeners by identity, and registering an
// uncomparable one fails with ErrUncomparableListener.
type EventListener interface {
	HandleEvent(Event)
}

type funcListener struct {
	fn func(Event)
}

func (f *funcListener) HandleEvent(e Event) { f.fn(e) }

// ListenerFunc wraps fn in a new listener. Every call returns a distinct
// listener, so keep the result to remove it later.
func ListenerFunc(fn func(Event)) EventListener {
	return &funcListener{fn: fn}
}

// Registration ties a listener to an event type and capture flag on one
// node. A deactivated registration stays in any snapshot already handed out
// but no longer runs.
type Registration struct {
	Type     string
	Capture  bool
	Listener EventListener

	active bool
}

func (r *Registration) Active() bool {
	return r.active
}

func (r *Registration) Deactivate() {
	r.active = false
}

// Execute runs the listener if the registration is still active. A panic
// inside the listener is logged and swallowed.
func (r *Registration) Execute(e Event, log logrus.FieldLogger) {
	if !r.active {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			if log == nil {
				log = logrus.StandardLogger()
			}
			log.WithFields(logrus.Fields{
				"event":   e.Type(),
				"phase":   e.Phase().String(),
				"capture": r.Capture,
			}).Errorf("event listener failed: %v", rec)
		}
	}()
	r.Listener.HandleEvent(e)
}

type listenerKey struct {
	eventType string
	capture   bool
}

// EventTarget is the per-node listener registry. Buckets are replaced, never
// edited in place, so a snapshot taken for a dispatch is stable.
type EventTarget struct {
	listeners map[listenerKey][]*Registration
}

// AddEventListener appends an active registration to the (eventType,
// capture) bucket.
func (t *EventTarget) AddEventListener(eventType string, l EventListener, capture bool) error {
	if err := checkListener(eventType, l); err != nil {
		return errors.Wrapf(err, "adding %q listener", eventType)
	}
	if t.listeners == nil {
		t.listeners = make(map[listenerKey][]*Registration)
	}

	key := listenerKey{eventType, capture}
	bucket := t.listeners[key]
	next := make([]*Registration, len(bucket), len(bucket)+1)
	copy(next, bucket)
	t.listeners[key] = append(next, &Registration{
		Type:     eventType,
		Capture:  capture,
		Listener: l,
		active:   true,
	})
	return nil
}

// RemoveEventListener deactivates every registration of l in the
// (eventType, capture) bucket and compacts the bucket.
func (t *EventTarget) RemoveEventListener(eventType string, l EventListener, capture bool) error {
	if err := checkListener(eventType, l); err != nil {
		return errors.Wrapf(err, "removing %q listener", eventType)
	}

	key := listenerKey{eventType, capture}
	bucket, ok := t.listeners[key]
	if !ok {
		return nil
	}
	kept := make([]*Registration, 0, len(bucket))
	for _, r := range bucket {
		if r.Listener == l {
			r.Deactivate()
			continue
		}
		if r.active {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		delete(t.listeners, key)
		return nil
	}
	t.listeners[key] = kept
	return nil
}

// EventListeners returns a snapshot of the active registrations for the
// bucket, or nil when there are none.
func (t *EventTarget) EventListeners(eventType string, capture bool) []*Registration {
	bucket := t.listeners[listenerKey{eventType, capture}]
	if len(bucket) == 0 {
		return nil
	}
	snapshot := make([]*Registration, 0, len(bucket))
	for _, r := range bucket {
		if r.active {
			snapshot = append(snapshot, r)
		}
	}
	return snapshot
}

// HasEventListeners reports whether any active listener exists for
// eventType in either bucket.
func (t *EventTarget) HasEventListeners(eventType string) bool {
	return len(t.EventListeners(eventType, true)) > 0 || len(t.EventListeners(eventType, false)) > 0
}
