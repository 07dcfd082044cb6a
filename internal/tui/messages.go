package tui

import (
	"github.com/MKhiriev/go-lightpack/models"
)

// refreshedMsg carries the result of a full device read.
type refreshedMsg struct {
	state    models.DeviceState
	profiles []string
	err      error
}

// actionDoneMsg reports a finished mutation. action is shown in the status
// line on success.
type actionDoneMsg struct {
	action string
	err    error
}

// stateChangedMsg is pushed by the light service subscription.
type stateChangedMsg struct {
	state models.DeviceState
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
