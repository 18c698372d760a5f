package plume

import (
	"github.com/akmonengine/plume/collision"
)

type EventType uint8

const (
	COLLISION_ENTER EventType = iota
	COLLISION_STAY
	COLLISION_EXIT
)

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

type CollisionEnterEvent struct {
	A, B int
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

type CollisionStayEvent struct {
	A, B int
}

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

type CollisionExitEvent struct {
	A, B int
}

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

// Events turns the per-step manifold set into enter/stay/exit events by
// diffing against the previous step's active pairs. The queue is polled
// with Drain; nothing is delivered through callbacks.
type Events struct {
	previousActivePairs map[Pair]struct{}
	queue               []Event
}

// recordCollisions diffs the contacting pairs of this step against the
// previous step
func (e *Events) recordCollisions(manifolds []collision.Manifold) {
	if e.previousActivePairs == nil {
		e.previousActivePairs = map[Pair]struct{}{}
	}

	activePairs := make(map[Pair]struct{}, len(manifolds))
	for _, m := range manifolds {
		pair := Pair{A: m.A, B: m.B}
		if _, dup := activePairs[pair]; dup {
			continue
		}
		activePairs[pair] = struct{}{}

		if _, was := e.previousActivePairs[pair]; was {
			e.queue = append(e.queue, CollisionStayEvent{A: pair.A, B: pair.B})
		} else {
			e.queue = append(e.queue, CollisionEnterEvent{A: pair.A, B: pair.B})
		}
	}

	for pair := range e.previousActivePairs {
		if _, still := activePairs[pair]; !still {
			e.queue = append(e.queue, CollisionExitEvent{A: pair.A, B: pair.B})
		}
	}

	e.previousActivePairs = activePairs
}

// Drain returns the queued events and empties the queue
func (e *Events) Drain() []Event {
	events := e.queue
	e.queue = nil

	return events
}
