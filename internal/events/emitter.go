// Package events is a small synchronous publish/subscribe hub, decoupling
// the review loop from whatever surface (admin UI, bot, log sink) wants to
// hear about it.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeIntakeCreated  Type = "intake.created"
	TypeFormatCreated  Type = "format.created"
	TypeFormatPromoted Type = "format.promoted"
)

// Event carries the subject id plus optional context.
type Event struct {
	Type      Type
	ID        uuid.UUID
	RelatedID uuid.UUID
	Name      string
	At        time.Time
}

type Handler func(Event)

// Emitter fans events out to subscribers synchronously. Handlers must not
// block; anything slow belongs behind the subscriber's own queue.
type Emitter struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[Type]map[int]Handler
}

func NewEmitter() *Emitter {
	return &Emitter{handlers: make(map[Type]map[int]Handler)}
}

// Subscribe registers a handler for one event type and returns an
// unsubscribe func.
func (e *Emitter) Subscribe(t Type, h Handler) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handlers[t] == nil {
		e.handlers[t] = make(map[int]Handler)
	}
	id := e.nextID
	e.nextID++
	e.handlers[t][id] = h
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.handlers[t], id)
	}
}

// Publish delivers ev to every subscriber of its type.
func (e *Emitter) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	e.mu.RLock()
	hs := make([]Handler, 0, len(e.handlers[ev.Type]))
	for _, h := range e.handlers[ev.Type] {
		hs = append(hs, h)
	}
	e.mu.RUnlock()
	for _, h := range hs {
		h(ev)
	}
}
