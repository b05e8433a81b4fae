package inspect

import (
	"testing"

	"alsflags/internal/locomotion"
)

func TestInspectorSections(t *testing.T) {
	ch := locomotion.NewCharacter()
	ch.Apply(locomotion.ToOverlayState(locomotion.OverlayStateRifle))
	in := New(ch, 4)

	sections := in.Sections()
	if len(sections) != 8 {
		t.Fatalf("expected 8 sections, got %d", len(sections))
	}
	if !sections[0].Selected || sections[1].Selected {
		t.Error("first section should be selected initially")
	}

	for _, s := range sections {
		if s.Domain != "OverlayState" {
			continue
		}
		if s.Header() != "OverlayState = Rifle" {
			t.Errorf("unexpected header %q", s.Header())
		}
		if len(s.Flags) != 19 {
			t.Errorf("OverlayState should list 19 flags, got %d", len(s.Flags))
		}
		for _, f := range s.Flags {
			if f.Set != (f.Name == "Rifle") {
				t.Errorf("flag %s = %v", f.Name, f.Set)
			}
		}
	}
}

func TestInspectorCursorWraps(t *testing.T) {
	in := New(locomotion.NewCharacter(), 4)

	in.MoveCursor(-1)
	if in.Selected() != "GroundedEntryState" {
		t.Errorf("moving up from the first domain should wrap, got %s", in.Selected())
	}
	in.MoveCursor(1)
	if in.Selected() != "MovementState" {
		t.Errorf("expected MovementState, got %s", in.Selected())
	}
	in.MoveCursor(17)
	if in.Selected() != "Stance" {
		t.Errorf("expected Stance after 17 steps, got %s", in.Selected())
	}
}

func TestInspectorStepAndHistory(t *testing.T) {
	ch := locomotion.NewCharacter()
	in := New(ch, 2)
	in.MoveCursor(5) // Gait

	if _, moved := in.Step(1); !moved {
		t.Fatal("Step should move Gait")
	}
	if !ch.Gait.Running() {
		t.Errorf("expected Running, got %s", ch.Gait)
	}

	in.Step(1)
	in.Step(1)

	history := in.History()
	if len(history) != 2 {
		t.Fatalf("history should be capped at 2, got %d", len(history))
	}
	if history[0].To != "Walking" || history[1].To != "Sprinting" {
		t.Errorf("history should be newest first: %v", history)
	}
}

func TestInspectorReset(t *testing.T) {
	ch := locomotion.NewCharacter()
	ch.Apply(locomotion.ToMovementState(locomotion.MovementStateGrounded))
	in := New(ch, 8)

	ch.Apply(
		locomotion.ToMovementState(locomotion.MovementStateInAir),
		locomotion.ToStance(locomotion.StanceCrouching),
	)

	changes := in.Reset()
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes on reset, got %v", changes)
	}
	if !ch.MovementState.Grounded() || !ch.Stance.Standing() {
		t.Errorf("reset did not restore the initial values: %+v", ch.Domains())
	}
	if len(in.Reset()) != 0 {
		t.Error("second reset should change nothing")
	}
}
