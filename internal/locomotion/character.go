package locomotion

import (
	"errors"
	"fmt"

	"alsflags/internal/enumstate"
)

// ErrUnknownDomain is returned when a domain name matches none of the
// Character's state domains.
var ErrUnknownDomain = errors.New("unknown state domain")

// Character owns one flag wrapper per locomotion domain. The zero value
// holds every domain's default.
type Character struct {
	MovementState      MovementStateFlags
	Stance             StanceFlags
	RotationMode       RotationModeFlags
	MovementDirection  MovementDirectionFlags
	MovementAction     MovementActionFlags
	Gait               GaitFlags
	OverlayState       OverlayStateFlags
	GroundedEntryState GroundedEntryStateFlags
}

// NewCharacter returns a Character with every domain at its default.
func NewCharacter() *Character {
	return &Character{}
}

// Change records one domain whose value moved.
type Change struct {
	Domain string
	From   string
	To     string
}

func (c Change) String() string {
	return fmt.Sprintf("%s: %s -> %s", c.Domain, c.From, c.To)
}

// DomainView is a read-only view of one domain of a Character.
type DomainView struct {
	Domain string
	Value  string
	Flags  []enumstate.Flag
}

// Transition assigns one domain of a Character. It reports the change,
// if the value moved.
type Transition func(c *Character) (Change, bool)

// Apply runs every transition in order and returns the changes that
// moved a value. Transitions to the value already held are not reported.
func (c *Character) Apply(transitions ...Transition) []Change {
	var changes []Change
	for _, t := range transitions {
		if ch, ok := t(c); ok {
			changes = append(changes, ch)
		}
	}
	return changes
}

func ToMovementState(v MovementState) Transition {
	return func(c *Character) (Change, bool) { return assign(&c.MovementState.State, v) }
}

func ToStance(v Stance) Transition {
	return func(c *Character) (Change, bool) { return assign(&c.Stance.State, v) }
}

func ToRotationMode(v RotationMode) Transition {
	return func(c *Character) (Change, bool) { return assign(&c.RotationMode.State, v) }
}

func ToMovementDirection(v MovementDirection) Transition {
	return func(c *Character) (Change, bool) { return assign(&c.MovementDirection.State, v) }
}

func ToMovementAction(v MovementAction) Transition {
	return func(c *Character) (Change, bool) { return assign(&c.MovementAction.State, v) }
}

func ToGait(v Gait) Transition {
	return func(c *Character) (Change, bool) { return assign(&c.Gait.State, v) }
}

func ToOverlayState(v OverlayState) Transition {
	return func(c *Character) (Change, bool) { return assign(&c.OverlayState.State, v) }
}

func ToGroundedEntryState(v GroundedEntryState) Transition {
	return func(c *Character) (Change, bool) { return assign(&c.GroundedEntryState.State, v) }
}

func assign[E enumstate.Enum](s *enumstate.State[E], v E) (Change, bool) {
	from := s.Value()
	s.Set(v)
	if from == v {
		return Change{}, false
	}
	d := v.Domain()
	return Change{Domain: d.Name(), From: d.NameOf(int(from)), To: d.NameOf(int(v))}, true
}

// slot gives name-driven access to one domain of a Character.
type slot struct {
	domain *enumstate.Domain
	view   func() DomainView
	set    func(name string) (Change, bool, error)
	step   func(delta int) (Change, bool)
}

func slotFor[E enumstate.Enum](s *enumstate.State[E]) slot {
	var zero E
	return slot{
		domain: zero.Domain(),
		view: func() DomainView {
			return DomainView{Domain: s.Domain().Name(), Value: s.String(), Flags: s.Flags()}
		},
		set: func(name string) (Change, bool, error) {
			v, err := enumstate.Parse[E](name)
			if err != nil {
				return Change{}, false, err
			}
			ch, moved := assign(s, v)
			return ch, moved, nil
		},
		step: func(delta int) (Change, bool) {
			v := s.Value()
			for ; delta > 0; delta-- {
				v = enumstate.Next(v)
			}
			for ; delta < 0; delta++ {
				v = enumstate.Prev(v)
			}
			return assign(s, v)
		},
	}
}

func (c *Character) slots() []slot {
	return []slot{
		slotFor(&c.MovementState.State),
		slotFor(&c.Stance.State),
		slotFor(&c.RotationMode.State),
		slotFor(&c.MovementDirection.State),
		slotFor(&c.MovementAction.State),
		slotFor(&c.Gait.State),
		slotFor(&c.OverlayState.State),
		slotFor(&c.GroundedEntryState.State),
	}
}

// DomainNames lists the Character's domains in display order.
func DomainNames() []string {
	var c Character
	slots := c.slots()
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = s.domain.Name()
	}
	return names
}

// Domains returns a view of every domain in display order.
func (c *Character) Domains() []DomainView {
	slots := c.slots()
	views := make([]DomainView, len(slots))
	for i, s := range slots {
		views[i] = s.view()
	}
	return views
}

// Domain returns the view of the named domain.
func (c *Character) Domain(domain string) (DomainView, error) {
	for _, s := range c.slots() {
		if s.domain.Name() == domain {
			return s.view(), nil
		}
	}
	return DomainView{}, fmt.Errorf("%q: %w", domain, ErrUnknownDomain)
}

// SetByName assigns the named enumerator to the named domain. The
// returned bool reports whether the value moved.
func (c *Character) SetByName(domain, enumerator string) (Change, bool, error) {
	for _, s := range c.slots() {
		if s.domain.Name() != domain {
			continue
		}
		ch, moved, err := s.set(enumerator)
		if err != nil {
			return Change{}, false, fmt.Errorf("set %s: %w", domain, err)
		}
		return ch, moved, nil
	}
	return Change{}, false, fmt.Errorf("set %q: %w", domain, ErrUnknownDomain)
}

// Step moves the named domain delta enumerators forward (or backward when
// negative), wrapping at either end.
func (c *Character) Step(domain string, delta int) (Change, bool, error) {
	for _, s := range c.slots() {
		if s.domain.Name() == domain {
			ch, moved := s.step(delta)
			return ch, moved, nil
		}
	}
	return Change{}, false, fmt.Errorf("step %q: %w", domain, ErrUnknownDomain)
}
