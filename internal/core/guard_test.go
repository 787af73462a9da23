package core

import (
	"errors"
	"testing"
)

func TestGuardPassesThrough(t *testing.T) {
	sentinel := errors.New("bad frame")

	if err := Guard(func() error { return nil }); err != nil {
		t.Errorf("Guard(nil) = %v", err)
	}
	if err := Guard(func() error { return sentinel }); !errors.Is(err, sentinel) {
		t.Errorf("Guard should return the update error, got %v", err)
	}
}

func TestGuardRecoversPanic(t *testing.T) {
	err := Guard(func() error {
		var tubes []int
		_ = tubes[3]
		return nil
	})

	var fe *FrameError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FrameError, got %v", err)
	}
	if len(fe.Stack) == 0 {
		t.Error("FrameError should carry a stack")
	}
}

func TestInputFrameList(t *testing.T) {
	f := NewInputFrame(ActionPause, ActionJump)
	got := f.List()

	if len(got) != 2 || got[0] != ActionJump || got[1] != ActionPause {
		t.Errorf("List() = %v", got)
	}
	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
}
