package locomotion

import (
	"errors"
	"testing"

	"alsflags/internal/enumstate"
)

func TestNewCharacterDefaults(t *testing.T) {
	c := NewCharacter()

	want := map[string]string{
		"MovementState":      "None",
		"Stance":             "Standing",
		"RotationMode":       "VelocityDirection",
		"MovementDirection":  "Forward",
		"MovementAction":     "None",
		"Gait":               "Walking",
		"OverlayState":       "Default",
		"GroundedEntryState": "None",
	}

	views := c.Domains()
	if len(views) != len(want) {
		t.Fatalf("expected %d domains, got %d", len(want), len(views))
	}
	for _, v := range views {
		if v.Value != want[v.Domain] {
			t.Errorf("%s defaults to %s, want %s", v.Domain, v.Value, want[v.Domain])
		}
	}
}

func TestDomainNamesOrder(t *testing.T) {
	names := DomainNames()
	views := NewCharacter().Domains()
	for i := range names {
		if names[i] != views[i].Domain {
			t.Errorf("position %d: DomainNames %s, Domains %s", i, names[i], views[i].Domain)
		}
	}
}

func TestCharacterApply(t *testing.T) {
	c := NewCharacter()

	changes := c.Apply(
		ToMovementState(MovementStateGrounded),
		ToGait(GaitRunning),
		ToStance(StanceStanding), // already standing
	)

	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %v", changes)
	}
	if changes[0] != (Change{Domain: "MovementState", From: "None", To: "Grounded"}) {
		t.Errorf("unexpected first change %v", changes[0])
	}
	if changes[1].String() != "Gait: Walking -> Running" {
		t.Errorf("unexpected second change %s", changes[1])
	}
	if !c.MovementState.Grounded() || !c.Gait.Running() || !c.Stance.Standing() {
		t.Error("character flags do not reflect the applied transitions")
	}

	again := c.Apply(ToMovementState(MovementStateGrounded), ToGait(GaitRunning))
	if len(again) != 0 {
		t.Errorf("repeated transitions reported changes: %v", again)
	}
}

func TestCharacterApplyEveryDomain(t *testing.T) {
	c := NewCharacter()
	changes := c.Apply(
		ToMovementState(MovementStateRagdoll),
		ToStance(StanceCrouching),
		ToRotationMode(RotationModeAiming),
		ToMovementDirection(MovementDirectionLeft),
		ToMovementAction(MovementActionRolling),
		ToGait(GaitSprinting),
		ToOverlayState(OverlayStateTorch),
		ToGroundedEntryState(GroundedEntryStateRoll),
	)

	if len(changes) != 8 {
		t.Fatalf("expected 8 changes, got %d", len(changes))
	}
	if !c.MovementState.Ragdoll() || !c.Stance.Crouching() || !c.RotationMode.Aiming() ||
		!c.MovementDirection.Left() || !c.MovementAction.Rolling() || !c.Gait.Sprinting() ||
		!c.OverlayState.Torch() || !c.GroundedEntryState.Roll() {
		t.Errorf("flags out of sync after applying every domain: %+v", c.Domains())
	}
}

func TestCharacterSetByName(t *testing.T) {
	c := NewCharacter()

	ch, moved, err := c.SetByName("OverlayState", "Rifle")
	if err != nil {
		t.Fatalf("SetByName failed: %v", err)
	}
	if !moved || ch.To != "Rifle" || ch.From != "Default" {
		t.Errorf("unexpected change %v moved=%v", ch, moved)
	}
	if !c.OverlayState.Rifle() {
		t.Error("OverlayState flags not updated")
	}

	if _, moved, _ := c.SetByName("OverlayState", "Rifle"); moved {
		t.Error("setting the held value should not report a move")
	}

	_, _, err = c.SetByName("Posture", "Prone")
	if !errors.Is(err, ErrUnknownDomain) {
		t.Errorf("expected ErrUnknownDomain, got %v", err)
	}

	_, _, err = c.SetByName("Gait", "Jogging")
	if !errors.Is(err, enumstate.ErrUnknownEnumerator) {
		t.Errorf("expected ErrUnknownEnumerator, got %v", err)
	}
	if !c.Gait.Walking() {
		t.Error("failed SetByName must leave the value untouched")
	}
}

func TestCharacterDomain(t *testing.T) {
	c := NewCharacter()
	c.Apply(ToRotationMode(RotationModeLookingDirection))

	v, err := c.Domain("RotationMode")
	if err != nil {
		t.Fatalf("Domain failed: %v", err)
	}
	if v.Value != "LookingDirection" || len(v.Flags) != 3 || !v.Flags[1].Set {
		t.Errorf("unexpected view %+v", v)
	}

	if _, err := c.Domain("Posture"); !errors.Is(err, ErrUnknownDomain) {
		t.Errorf("expected ErrUnknownDomain, got %v", err)
	}
}

func TestCharacterStep(t *testing.T) {
	c := NewCharacter()

	tests := []struct {
		delta int
		want  Gait
	}{
		{1, GaitRunning},
		{1, GaitSprinting},
		{1, GaitWalking},
		{-1, GaitSprinting},
		{3, GaitSprinting},
	}

	for _, tt := range tests {
		if _, _, err := c.Step("Gait", tt.delta); err != nil {
			t.Fatalf("Step: %v", err)
		}
		if c.Gait.Value() != tt.want || !c.Gait.Flag(tt.want) {
			t.Errorf("after Step(%d) gait is %s, want %s", tt.delta, c.Gait, tt.want)
		}
	}

	if _, moved, _ := c.Step("Gait", 0); moved {
		t.Error("Step(0) should not move")
	}
	if _, _, err := c.Step("Posture", 1); !errors.Is(err, ErrUnknownDomain) {
		t.Errorf("expected ErrUnknownDomain, got %v", err)
	}
}
