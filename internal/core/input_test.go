package core

import "testing"

func TestInputFramePressedAndHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	f.Hold(ActionLeft)

	if !f.Has(ActionConfirm) {
		t.Error("Confirm should be pressed")
	}
	if f.Has(ActionLeft) {
		t.Error("held action must not count as pressed")
	}
	if !f.Holding(ActionLeft) || !f.Holding(ActionConfirm) {
		t.Error("Holding should include held and pressed actions")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !clone.Has(ActionConfirm) || !clone.Holding(ActionLeft) {
		t.Error("Clone must not share maps with the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) || f.Holding(ActionUp) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionUp)
	f.Hold(ActionBoost)
	if !f.Has(ActionUp) || !f.Holding(ActionBoost) {
		t.Error("zero frame should allocate lazily")
	}
}

func TestInputFrameListsSorted(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionBoost)
	f.Hold(ActionUp)
	f.Hold(ActionRight)

	got := f.HeldList()
	want := []Action{ActionUp, ActionRight, ActionBoost}
	if len(got) != len(want) {
		t.Fatalf("HeldList() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("HeldList()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
	if len(f.PressedList()) != 0 {
		t.Error("PressedList should be empty")
	}
}

func TestActionString(t *testing.T) {
	if ActionBoost.String() != "Boost" || Action(999).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
