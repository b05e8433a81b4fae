// Package enumstate holds an enum value together with one cached boolean
// flag per enumerator of its domain.
package enumstate

import "fmt"

// Enum is satisfied by small iota enums that can describe their domain.
// Enumerator ordinals must run from 0 to Domain().Len()-1.
type Enum interface {
	~uint8
	Domain() *Domain
}

// Flag is one named entry of a State's flag cache.
type Flag struct {
	Name string
	Set  bool
}

// State is a value holder for an enumerator of E with a flag per
// enumerator, kept equal to (Value() == enumerator) after every Set.
//
// State is a plain value: copy it freely. The zero State holds the
// domain's first enumerator.
type State[E Enum] struct {
	current E
	// flag bits XOR 1, so the zero State reports ordinal 0.
	cache uint64
}

// New returns a State holding the domain default (first enumerator).
func New[E Enum]() State[E] {
	var s State[E]
	s.Set(0)
	return s
}

// Of returns a State holding v.
func Of[E Enum](v E) State[E] {
	var s State[E]
	s.Set(v)
	return s
}

// Set replaces the held value and recomputes every flag.
func (s *State[E]) Set(v E) {
	var bits uint64
	n := v.Domain().Len()
	for i := 0; i < n; i++ {
		if E(i) == v {
			bits |= 1 << uint(i)
		}
	}
	s.current = v
	s.cache = bits ^ 1
}

// Value returns the held enumerator.
func (s State[E]) Value() E {
	return s.current
}

// Flag reports whether the held value is v.
func (s State[E]) Flag(v E) bool {
	if int(v) >= MaxEnumerators {
		return false
	}
	return (s.cache^1)&(1<<uint(v)) != 0
}

// Is reports the flag of the named enumerator. Unknown names are false.
func (s State[E]) Is(name string) bool {
	i, ok := s.current.Domain().Index(name)
	if !ok {
		return false
	}
	return s.Flag(E(i))
}

// Flags lists every enumerator of the domain with its flag, in ordinal
// order.
func (s State[E]) Flags() []Flag {
	d := s.current.Domain()
	flags := make([]Flag, d.Len())
	for i := range flags {
		flags[i] = Flag{Name: d.NameOf(i), Set: s.Flag(E(i))}
	}
	return flags
}

// Domain returns the domain of E.
func (s State[E]) Domain() *Domain {
	return s.current.Domain()
}

func (s State[E]) String() string {
	return s.current.Domain().NameOf(int(s.current))
}

// Parse returns the enumerator of E with the given name.
func Parse[E Enum](name string) (E, error) {
	var zero E
	d := zero.Domain()
	i, ok := d.Index(name)
	if !ok {
		return zero, fmt.Errorf("%s %q: %w", d.Name(), name, ErrUnknownEnumerator)
	}
	return E(i), nil
}

// Next returns the enumerator after v, wrapping to the first.
func Next[E Enum](v E) E {
	n := v.Domain().Len()
	return E((int(v) + 1) % n)
}

// Prev returns the enumerator before v, wrapping to the last.
func Prev[E Enum](v E) E {
	n := v.Domain().Len()
	return E((int(v) + n - 1) % n)
}

// Values returns every enumerator of E in ordinal order.
func Values[E Enum]() []E {
	var zero E
	values := make([]E, zero.Domain().Len())
	for i := range values {
		values[i] = E(i)
	}
	return values
}
