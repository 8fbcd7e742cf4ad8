package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/cleangui/geom"
)

func TestControllerPages(t *testing.T) {
	display := &fakeDisplay{size: geom.V(240, 320)}
	log := &eventLog{}
	c := NewController(nil)
	assert.Nil(t, c.ActivePage())

	home := NewRoot("home", display, 1)
	homeEntry := newRecordingListener("home-entry", log)
	require.NoError(t, home.AttachChild(homeEntry))
	settings := NewRoot("settings", display, 1)
	settingsEntry := newRecordingListener("settings-entry", log)
	require.NoError(t, settings.AttachChild(settingsEntry))

	c.AddPage(home, homeEntry)
	c.AddPage(settings, settingsEntry)
	assert.Same(t, home, c.ActivePage())
	assert.Equal(t, []*Root{home, settings}, c.Pages())

	require.NoError(t, c.ShowPage("settings"))
	assert.Same(t, settings, c.ActivePage())
	assert.True(t, settingsEntry.IsShown())
	assert.False(t, homeEntry.IsShown())
	assert.False(t, homeEntry.IsEnabled())

	c.TouchPressed(geom.V(1, 2))
	c.TouchReleased(geom.V(3, 4))
	assert.Equal(t, []touchEvent{
		{who: "settings-entry", pressed: true, pos: geom.V(1, 2)},
		{who: "settings-entry", pressed: false, pos: geom.V(3, 4)},
	}, log.events)

	assert.ErrorIs(t, c.ShowPage("missing"), ErrUnknownPage)
	assert.Same(t, settings, c.ActivePage())
}

func TestControllerUpdateWindowSize(t *testing.T) {
	display := &fakeDisplay{size: geom.V(240, 320)}
	c := NewController(nil)
	root := NewRoot("main", display, 1)
	leaf := NewNode(fillParent("leaf", 0))
	require.NoError(t, root.AttachChild(leaf))
	c.AddPage(root, nil)

	display.size = geom.V(480, 272)
	c.UpdateWindowSize()

	assert.Equal(t, geom.V(480, 272), leaf.SizePix())
	c.TouchPressed(geom.V(1, 1))
}

func TestControllerShowsFirstPage(t *testing.T) {
	display := &fakeDisplay{size: geom.V(240, 320)}
	log := &eventLog{}
	c := NewController(nil)

	first := NewRoot("first", display, 1)
	entry := newRecordingListener("first-entry", log)
	require.NoError(t, first.AttachChild(entry))
	second := NewRoot("second", display, 0)

	c.AddPage(first, entry)
	c.AddPage(second, nil)

	assert.Same(t, first, c.ActivePage())
	assert.True(t, first.IsShown())
	assert.True(t, entry.IsShown())
	assert.True(t, entry.IsEnabled())
	assert.False(t, second.IsShown())

	c.TouchPressed(geom.V(2, 2))
	assert.Len(t, log.events, 1)
}
