package anime

import (
	"github.com/shopspring/decimal"
)

// StatusAction is a client intent entering the transition engine.
type StatusAction string

const (
	ActionToWatching StatusAction = "TO_WATCHING"
	ActionReWatch    StatusAction = "RE_WATCH"
	ActionToDropped  StatusAction = "TO_DROPPED"
	ActionToWait     StatusAction = "TO_WAIT"
	ActionToFinished StatusAction = "TO_FINISHED"
)

// Valid reports whether a names one of the five known actions.
func (a StatusAction) Valid() bool {
	switch a {
	case ActionToWatching, ActionReWatch, ActionToDropped, ActionToWait, ActionToFinished:
		return true
	}
	return false
}

// TransitionPayload carries the optional per-action fields. Only
// TO_FINISHED reads it: rating is stored on the closing session and a
// non-empty review is appended as a FINAL_REVIEW comment.
type TransitionPayload struct {
	Rating *decimal.Decimal `json:"rating,omitempty"`
	Review string           `json:"review,omitempty"`
}

// DropOutcome returns the item status after the open session with the
// given watch count is dropped. Dropping a rewatch does not erase the
// earlier completion, so anything past the first pass lands on FINISHED.
func DropOutcome(watchCount int) Status {
	if watchCount > 1 {
		return StatusFinished
	}
	return StatusDropped
}

// NextWatchCount returns the ordinal for a freshly opened rewatch session
// given the highest watch count ever recorded for the item (zero when no
// history exists).
func NextWatchCount(maxEver int) int {
	return maxEver + 1
}
