package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderedIDIsVersion7(t *testing.T) {
	id := NewOrderedID()
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestNewOrderedIDIsMonotonic(t *testing.T) {
	prev := NewOrderedID()
	for i := 0; i < 100; i++ {
		next := NewOrderedID()
		require.Greater(t, next.String(), prev.String(),
			"ids generated back to back must sort in creation order")
		prev = next
	}
}
