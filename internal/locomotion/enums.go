package locomotion

import "alsflags/internal/enumstate"

// MovementState is the character's top level movement mode.
type MovementState uint8

const (
	MovementStateNone MovementState = iota
	MovementStateGrounded
	MovementStateInAir
	MovementStateMantling
	MovementStateRagdoll
)

// Stance is standing or crouching.
type Stance uint8

const (
	StanceStanding Stance = iota
	StanceCrouching
)

// RotationMode decides what the character's facing follows.
type RotationMode uint8

const (
	RotationModeVelocityDirection RotationMode = iota
	RotationModeLookingDirection
	RotationModeAiming
)

// MovementDirection is the direction of travel relative to facing.
type MovementDirection uint8

const (
	MovementDirectionForward MovementDirection = iota
	MovementDirectionRight
	MovementDirectionLeft
	MovementDirectionBackward
)

// MovementAction is a one-shot action that overrides regular movement.
type MovementAction uint8

const (
	MovementActionNone MovementAction = iota
	MovementActionLowMantle
	MovementActionHighMantle
	MovementActionRolling
	MovementActionGettingUp
)

// Gait is the speed tier while grounded.
type Gait uint8

const (
	GaitWalking Gait = iota
	GaitRunning
	GaitSprinting
)

// OverlayState selects the upper body pose layered over locomotion.
type OverlayState uint8

const (
	OverlayStateDefault OverlayState = iota
	OverlayStateMasculine
	OverlayStateFeminine
	OverlayStateInjured
	OverlayStateHandsTied
	OverlayStateRifle
	OverlayStatePistolOneHanded
	OverlayStatePistolTwoHanded
	OverlayStateBow
	OverlayStateTorch
	OverlayStateBinoculars
	OverlayStateBox
	OverlayStateBarrel
	OverlayStateRifleNoGrip
	OverlayStateOneHandedItem
	OverlayStateTwoHandedItem
	OverlayStateOneHandedMelee
	OverlayStateTwoHandedMelee
	OverlayStateFighter
)

// GroundedEntryState is how the character entered the grounded state.
type GroundedEntryState uint8

const (
	GroundedEntryStateNone GroundedEntryState = iota
	GroundedEntryStateRoll
)

// Enumerator names, listed in const order.
var (
	movementStateDomain = enumstate.NewDomain("MovementState",
		"None", "Grounded", "InAir", "Mantling", "Ragdoll")
	stanceDomain = enumstate.NewDomain("Stance",
		"Standing", "Crouching")
	rotationModeDomain = enumstate.NewDomain("RotationMode",
		"VelocityDirection", "LookingDirection", "Aiming")
	movementDirectionDomain = enumstate.NewDomain("MovementDirection",
		"Forward", "Right", "Left", "Backward")
	movementActionDomain = enumstate.NewDomain("MovementAction",
		"None", "LowMantle", "HighMantle", "Rolling", "GettingUp")
	gaitDomain = enumstate.NewDomain("Gait",
		"Walking", "Running", "Sprinting")
	overlayStateDomain = enumstate.NewDomain("OverlayState",
		"Default", "Masculine", "Feminine", "Injured", "HandsTied",
		"Rifle", "PistolOneHanded", "PistolTwoHanded", "Bow", "Torch",
		"Binoculars", "Box", "Barrel", "RifleNoGrip", "OneHandedItem",
		"TwoHandedItem", "OneHandedMelee", "TwoHandedMelee", "Fighter")
	groundedEntryStateDomain = enumstate.NewDomain("GroundedEntryState",
		"None", "Roll")
)

func (MovementState) Domain() *enumstate.Domain      { return movementStateDomain }
func (Stance) Domain() *enumstate.Domain             { return stanceDomain }
func (RotationMode) Domain() *enumstate.Domain       { return rotationModeDomain }
func (MovementDirection) Domain() *enumstate.Domain  { return movementDirectionDomain }
func (MovementAction) Domain() *enumstate.Domain     { return movementActionDomain }
func (Gait) Domain() *enumstate.Domain               { return gaitDomain }
func (OverlayState) Domain() *enumstate.Domain       { return overlayStateDomain }
func (GroundedEntryState) Domain() *enumstate.Domain { return groundedEntryStateDomain }

func (v MovementState) String() string      { return movementStateDomain.NameOf(int(v)) }
func (v Stance) String() string             { return stanceDomain.NameOf(int(v)) }
func (v RotationMode) String() string       { return rotationModeDomain.NameOf(int(v)) }
func (v MovementDirection) String() string  { return movementDirectionDomain.NameOf(int(v)) }
func (v MovementAction) String() string     { return movementActionDomain.NameOf(int(v)) }
func (v Gait) String() string               { return gaitDomain.NameOf(int(v)) }
func (v OverlayState) String() string       { return overlayStateDomain.NameOf(int(v)) }
func (v GroundedEntryState) String() string { return groundedEntryStateDomain.NameOf(int(v)) }
