package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionStart)
	if !f.Has(ActionLeft) || !f.Has(ActionStart) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported as present")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionStart) {
		t.Error("Clear should drop all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionButtonRight.String() != "ButtonRight" {
		t.Errorf("ActionButtonRight.String() = %q", ActionButtonRight.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
