package anime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDropOutcome(t *testing.T) {
	// Dropping the first pass marks the item dropped, dropping a rewatch
	// keeps the earlier completion visible.
	assert.Equal(t, StatusDropped, DropOutcome(1))
	assert.Equal(t, StatusFinished, DropOutcome(2))
	assert.Equal(t, StatusFinished, DropOutcome(7))
}

func TestNextWatchCount(t *testing.T) {
	assert.Equal(t, 1, NextWatchCount(0))
	assert.Equal(t, 2, NextWatchCount(1))
	assert.Equal(t, 5, NextWatchCount(4))
}

func TestStatusActionValid(t *testing.T) {
	for _, a := range []StatusAction{ActionToWatching, ActionReWatch, ActionToDropped, ActionToWait, ActionToFinished} {
		assert.True(t, a.Valid(), string(a))
	}
	for _, a := range []StatusAction{"", "FINISH", "to_watching", "DELETE"} {
		assert.False(t, a.Valid(), string(a))
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusWait, StatusWatching, StatusFinished, StatusDropped} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("PAUSED").Valid())
}
