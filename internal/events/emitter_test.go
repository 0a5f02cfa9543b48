package events

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	e := NewEmitter()
	var got []Event
	e.Subscribe(TypeIntakeCreated, func(ev Event) { got = append(got, ev) })

	id := uuid.New()
	e.Publish(Event{Type: TypeIntakeCreated, ID: id})

	assert.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID)
	assert.False(t, got[0].At.IsZero())
}

func TestPublishFiltersByType(t *testing.T) {
	e := NewEmitter()
	var intake, promoted int
	e.Subscribe(TypeIntakeCreated, func(Event) { intake++ })
	e.Subscribe(TypeFormatPromoted, func(Event) { promoted++ })

	e.Publish(Event{Type: TypeFormatPromoted})
	e.Publish(Event{Type: TypeFormatPromoted})
	e.Publish(Event{Type: TypeIntakeCreated})

	assert.Equal(t, 1, intake)
	assert.Equal(t, 2, promoted)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	e := NewEmitter()
	var n int
	cancel := e.Subscribe(TypeFormatCreated, func(Event) { n++ })

	e.Publish(Event{Type: TypeFormatCreated})
	cancel()
	e.Publish(Event{Type: TypeFormatCreated})

	assert.Equal(t, 1, n)
}

func TestPublishWithNoSubscribers(t *testing.T) {
	e := NewEmitter()
	e.Publish(Event{Type: TypeIntakeCreated}) // must not panic
}
