package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionLeft) {
		t.Error("Zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionUp)
	if !f.Has(ActionLeft) || !f.Has(ActionUp) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("Unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionUp) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
