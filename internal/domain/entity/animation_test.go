package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnimation_Update(t *testing.T) {
	a := NewAnimation(4, 100*time.Millisecond)

	// First update with no pending cooldown advances immediately
	assert.False(t, a.Update(16*time.Millisecond))
	assert.Equal(t, 1, a.Frame())

	// Cooldown consumed across several short ticks
	for i := 0; i < 6; i++ {
		a.Update(16 * time.Millisecond)
	}
	assert.Equal(t, 1, a.Frame(), "96ms of a 100ms frame should not advance")

	a.Update(16 * time.Millisecond)
	assert.Equal(t, 2, a.Frame())
}

func TestAnimation_WrapReportsCycle(t *testing.T) {
	a := NewAnimation(3, 10*time.Millisecond)
	a.Reset()

	wrapped := []bool{}
	for i := 0; i < 3; i++ {
		wrapped = append(wrapped, a.Update(10*time.Millisecond))
	}

	assert.Equal(t, []bool{false, false, true}, wrapped)
	assert.Equal(t, 0, a.Frame())
}

func TestAnimation_ZeroFrames(t *testing.T) {
	var a Animation
	assert.False(t, a.Update(time.Second))
	assert.Equal(t, 0, a.Frame())
}
