package emplace

import "sync"

// EventType identifies a slot lifecycle transition.
type EventType uint8

const (
	// EventReserved fires when a driver builds the Uninit for a
	// freshly minted brand.
	EventReserved EventType = iota
	// EventInitialized fires when the driver has verified the
	// returned evidence against the reserved slot.
	EventInitialized
	// EventFailed fires when the initializer returned an error or the
	// evidence failed verification.
	EventFailed
	// EventReleased fires when the evidence is converted into an
	// owned value or a scoped call returns.
	EventReleased
)

func (t EventType) String() string {
	switch t {
	case EventReserved:
		return "reserved"
	case EventInitialized:
		return "initialized"
	case EventFailed:
		return "failed"
	case EventReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Event describes a slot lifecycle transition. Err is set only for
// EventFailed.
type Event struct {
	Err    error
	GoType string
	Brand  Brand
	Addr   uintptr
	Type   EventType
}

// Observer receives slot lifecycle events from all driver calls.
type Observer interface {
	OnSlotEvent(Event)
}

var (
	obsMu     sync.RWMutex
	observers []Observer
)

// Subscribe registers an observer for slot lifecycle events.
func Subscribe(o Observer) {
	obsMu.Lock()
	defer obsMu.Unlock()
	observers = append(observers, o)
}

// Unsubscribe removes a previously registered observer.
func Unsubscribe(o Observer) {
	obsMu.Lock()
	defer obsMu.Unlock()
	for i, obs := range observers {
		if obs == o {
			observers = append(observers[:i], observers[i+1:]...)
			return
		}
	}
}

func notify(ev Event) {
	obsMu.RLock()
	defer obsMu.RUnlock()
	for _, o := range observers {
		o.OnSlotEvent(ev)
	}
}
