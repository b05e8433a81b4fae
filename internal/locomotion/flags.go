// Package locomotion defines the character locomotion enums and their
// flag-caching wrappers read by animation and gameplay code.
package locomotion

import "alsflags/internal/enumstate"

// MovementStateFlags holds a MovementState with a cached flag per value.
type MovementStateFlags struct {
	enumstate.State[MovementState]
}

func NewMovementStateFlags(v MovementState) MovementStateFlags {
	return MovementStateFlags{enumstate.Of(v)}
}

func (f MovementStateFlags) None() bool     { return f.Flag(MovementStateNone) }
func (f MovementStateFlags) Grounded() bool { return f.Flag(MovementStateGrounded) }
func (f MovementStateFlags) InAir() bool    { return f.Flag(MovementStateInAir) }
func (f MovementStateFlags) Mantling() bool { return f.Flag(MovementStateMantling) }
func (f MovementStateFlags) Ragdoll() bool  { return f.Flag(MovementStateRagdoll) }

// StanceFlags holds a Stance with a cached flag per value.
type StanceFlags struct {
	enumstate.State[Stance]
}

func NewStanceFlags(v Stance) StanceFlags {
	return StanceFlags{enumstate.Of(v)}
}

func (f StanceFlags) Standing() bool  { return f.Flag(StanceStanding) }
func (f StanceFlags) Crouching() bool { return f.Flag(StanceCrouching) }

// RotationModeFlags holds a RotationMode with a cached flag per value.
type RotationModeFlags struct {
	enumstate.State[RotationMode]
}

func NewRotationModeFlags(v RotationMode) RotationModeFlags {
	return RotationModeFlags{enumstate.Of(v)}
}

func (f RotationModeFlags) VelocityDirection() bool {
	return f.Flag(RotationModeVelocityDirection)
}
func (f RotationModeFlags) LookingDirection() bool { return f.Flag(RotationModeLookingDirection) }
func (f RotationModeFlags) Aiming() bool           { return f.Flag(RotationModeAiming) }

// MovementDirectionFlags holds a MovementDirection with a cached flag per value.
type MovementDirectionFlags struct {
	enumstate.State[MovementDirection]
}

func NewMovementDirectionFlags(v MovementDirection) MovementDirectionFlags {
	return MovementDirectionFlags{enumstate.Of(v)}
}

func (f MovementDirectionFlags) Forward() bool  { return f.Flag(MovementDirectionForward) }
func (f MovementDirectionFlags) Right() bool    { return f.Flag(MovementDirectionRight) }
func (f MovementDirectionFlags) Left() bool     { return f.Flag(MovementDirectionLeft) }
func (f MovementDirectionFlags) Backward() bool { return f.Flag(MovementDirectionBackward) }

// MovementActionFlags holds a MovementAction with a cached flag per value.
type MovementActionFlags struct {
	enumstate.State[MovementAction]
}

func NewMovementActionFlags(v MovementAction) MovementActionFlags {
	return MovementActionFlags{enumstate.Of(v)}
}

func (f MovementActionFlags) None() bool       { return f.Flag(MovementActionNone) }
func (f MovementActionFlags) LowMantle() bool  { return f.Flag(MovementActionLowMantle) }
func (f MovementActionFlags) HighMantle() bool { return f.Flag(MovementActionHighMantle) }
func (f MovementActionFlags) Rolling() bool    { return f.Flag(MovementActionRolling) }
func (f MovementActionFlags) GettingUp() bool  { return f.Flag(MovementActionGettingUp) }

// GaitFlags holds a Gait with a cached flag per value.
type GaitFlags struct {
	enumstate.State[Gait]
}

func NewGaitFlags(v Gait) GaitFlags {
	return GaitFlags{enumstate.Of(v)}
}

func (f GaitFlags) Walking() bool   { return f.Flag(GaitWalking) }
func (f GaitFlags) Running() bool   { return f.Flag(GaitRunning) }
func (f GaitFlags) Sprinting() bool { return f.Flag(GaitSprinting) }

// OverlayStateFlags holds an OverlayState with a cached flag per value.
type OverlayStateFlags struct {
	enumstate.State[OverlayState]
}

func NewOverlayStateFlags(v OverlayState) OverlayStateFlags {
	return OverlayStateFlags{enumstate.Of(v)}
}

func (f OverlayStateFlags) Default() bool         { return f.Flag(OverlayStateDefault) }
func (f OverlayStateFlags) Masculine() bool       { return f.Flag(OverlayStateMasculine) }
func (f OverlayStateFlags) Feminine() bool        { return f.Flag(OverlayStateFeminine) }
func (f OverlayStateFlags) Injured() bool         { return f.Flag(OverlayStateInjured) }
func (f OverlayStateFlags) HandsTied() bool       { return f.Flag(OverlayStateHandsTied) }
func (f OverlayStateFlags) Rifle() bool           { return f.Flag(OverlayStateRifle) }
func (f OverlayStateFlags) PistolOneHanded() bool { return f.Flag(OverlayStatePistolOneHanded) }
func (f OverlayStateFlags) PistolTwoHanded() bool { return f.Flag(OverlayStatePistolTwoHanded) }
func (f OverlayStateFlags) Bow() bool             { return f.Flag(OverlayStateBow) }
func (f OverlayStateFlags) Torch() bool           { return f.Flag(OverlayStateTorch) }
func (f OverlayStateFlags) Binoculars() bool      { return f.Flag(OverlayStateBinoculars) }
func (f OverlayStateFlags) Box() bool             { return f.Flag(OverlayStateBox) }
func (f OverlayStateFlags) Barrel() bool          { return f.Flag(OverlayStateBarrel) }
func (f OverlayStateFlags) RifleNoGrip() bool     { return f.Flag(OverlayStateRifleNoGrip) }
func (f OverlayStateFlags) OneHandedItem() bool   { return f.Flag(OverlayStateOneHandedItem) }
func (f OverlayStateFlags) TwoHandedItem() bool   { return f.Flag(OverlayStateTwoHandedItem) }
func (f OverlayStateFlags) OneHandedMelee() bool  { return f.Flag(OverlayStateOneHandedMelee) }
func (f OverlayStateFlags) TwoHandedMelee() bool  { return f.Flag(OverlayStateTwoHandedMelee) }
func (f OverlayStateFlags) Fighter() bool         { return f.Flag(OverlayStateFighter) }

// GroundedEntryStateFlags holds a GroundedEntryState with a cached flag per value.
type GroundedEntryStateFlags struct {
	enumstate.State[GroundedEntryState]
}

func NewGroundedEntryStateFlags(v GroundedEntryState) GroundedEntryStateFlags {
	return GroundedEntryStateFlags{enumstate.Of(v)}
}

func (f GroundedEntryStateFlags) None() bool { return f.Flag(GroundedEntryStateNone) }
func (f GroundedEntryStateFlags) Roll() bool { return f.Flag(GroundedEntryStateRoll) }
