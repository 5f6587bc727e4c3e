package dom

import "time"

type EventPhase uint

const (
	NonePhase EventPhase = iota
	CapturingPhase
	AtTargetPhase
	BubblingPhase
)

func (p EventPhase) String() string {
	switch p {
	case CapturingPhase:
		return "capturing"
	case AtTargetPhase:
		return "at-target"
	case BubblingPhase:
		return "bubbling"
	default:
		return "none"
	}
}

// Common event type names.
const (
	EventClick     = "click"
	EventDblClick  = "dblclick"
	EventMouseDown = "mousedown"
	EventMouseUp   = "mouseup"
	EventMouseMove = "mousemove"
	EventKeyDown   = "keydown"
	EventKeyUp     = "keyup"
	EventKeyPress  = "keypress"
)

// Event is the closed set of events the dispatcher understands: *BaseEvent,
// *MouseEvent and *KeyboardEvent. Dispatch only needs the shared header.
type Event interface {
	Type() string
	TimeStamp() time.Time
	Target() *Node
	SetTarget(*Node)
	Phase() EventPhase
	StopPropagation()
	PropagationStopped() bool

	header() *BaseEvent
}

// BaseEvent is the header shared by every event. Used on its own it is a
// generic custom event.
type BaseEvent struct {
	eventType string
	timeStamp time.Time
	target    *Node
	phase     EventPhase
	stopped   bool
}

// NewEvent creates a generic event of the given type, stamped now.
func NewEvent(eventType string) *BaseEvent {
	return &BaseEvent{
		eventType: eventType,
		timeStamp: time.Now(),
	}
}

func (e *BaseEvent) Type() string             { return e.eventType }
func (e *BaseEvent) TimeStamp() time.Time     { return e.timeStamp }
func (e *BaseEvent) Target() *Node            { return e.target }
func (e *BaseEvent) SetTarget(n *Node)        { e.target = n }
func (e *BaseEvent) Phase() EventPhase        { return e.phase }
func (e *BaseEvent) PropagationStopped() bool { return e.stopped }

// StopPropagation halts the dispatch in progress before the next node.
// It cannot be undone.
func (e *BaseEvent) StopPropagation() {
	e.stopped = true
}

func (e *BaseEvent) header() *BaseEvent { return e }

type MouseButton uint

const (
	LeftButton MouseButton = iota
	RightButton
	MiddleButton
	NoButton
)

func (b MouseButton) String() string {
	switch b {
	case LeftButton:
		return "left"
	case RightButton:
		return "right"
	case MiddleButton:
		return "middle"
	default:
		return "none"
	}
}

// MouseEvent is a pointer event. Dispatching one without a target resolves
// the target by hit-testing X and Y.
type MouseEvent struct {
	BaseEvent
	X, Y   int
	Button MouseButton
}

func NewMouseEvent(eventType string, x, y int, button MouseButton) *MouseEvent {
	return &MouseEvent{
		BaseEvent: *NewEvent(eventType),
		X:         x,
		Y:         y,
		Button:    button,
	}
}

// KeyboardEvent carries the key symbol, its code and modifier state.
type KeyboardEvent struct {
	BaseEvent
	Key      string
	KeyCode  KeyCode
	CtrlKey  bool
	ShiftKey bool
	AltKey   bool
	MetaKey  bool
}

// Modifiers holds the modifier keys held during a keyboard event.
type Modifiers struct {
	Ctrl, Shift, Alt, Meta bool
}

func NewKeyboardEvent(eventType, key string, code KeyCode, mods Modifiers) *KeyboardEvent {
	return &KeyboardEvent{
		BaseEvent: *NewEvent(eventType),
		Key:       key,
		KeyCode:   code,
		CtrlKey:   mods.Ctrl,
		ShiftKey:  mods.Shift,
		AltKey:    mods.Alt,
		MetaKey:   mods.Meta,
	}
}
