package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OpticalFlyer/cleangui/geom"
)

func TestTouchTracker(t *testing.T) {
	log := &eventLog{}
	tracker := NewTouchTracker(newRecordingListener("target", log))

	tracker.Sample(false, geom.V(0, 0))
	assert.Empty(t, log.events)
	assert.False(t, tracker.IsDown())

	tracker.Sample(true, geom.V(10, 10))
	tracker.Sample(true, geom.V(12, 14))
	tracker.Sample(true, geom.V(15, 18))
	assert.True(t, tracker.IsDown())

	tracker.Sample(false, geom.V(0, 0))
	tracker.Sample(false, geom.V(0, 0))

	assert.Equal(t, []touchEvent{
		{who: "target", pressed: true, pos: geom.V(10, 10)},
		{who: "target", pressed: false, pos: geom.V(15, 18)},
	}, log.events)
	assert.False(t, tracker.IsDown())
}
