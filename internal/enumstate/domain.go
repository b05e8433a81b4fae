package enumstate

import (
	"errors"
	"fmt"
)

// MaxEnumerators is the largest domain a State can cache flags for.
const MaxEnumerators = 64

// ErrUnknownEnumerator is returned when a name is not part of a domain.
var ErrUnknownEnumerator = errors.New("unknown enumerator")

// Domain is the closed, ordered list of enumerators of one enum type.
// Enumerator i has ordinal i.
type Domain struct {
	name  string
	names []string
	index map[string]int
}

// NewDomain builds a domain from its enumerator names in ordinal order.
// The first name is the domain's default. It panics on an empty list,
// duplicate names or more than MaxEnumerators entries.
func NewDomain(name string, names ...string) *Domain {
	if len(names) == 0 {
		panic(fmt.Sprintf("enumstate: domain %s has no enumerators", name))
	}
	if len(names) > MaxEnumerators {
		panic(fmt.Sprintf("enumstate: domain %s has %d enumerators, max is %d", name, len(names), MaxEnumerators))
	}

	d := &Domain{
		name:  name,
		names: append([]string(nil), names...),
		index: make(map[string]int, len(names)),
	}
	for i, n := range d.names {
		if _, dup := d.index[n]; dup {
			panic(fmt.Sprintf("enumstate: domain %s lists %s twice", name, n))
		}
		d.index[n] = i
	}
	return d
}

// Name returns the domain name, e.g. "Gait".
func (d *Domain) Name() string {
	return d.name
}

// Len returns the number of enumerators.
func (d *Domain) Len() int {
	return len(d.names)
}

// Names returns the enumerator names in ordinal order.
func (d *Domain) Names() []string {
	return append([]string(nil), d.names...)
}

// NameOf returns the name of the enumerator with the given ordinal,
// or "Unknown" when the ordinal is outside the domain.
func (d *Domain) NameOf(ordinal int) string {
	if ordinal < 0 || ordinal >= len(d.names) {
		return "Unknown"
	}
	return d.names[ordinal]
}

// Index returns the ordinal of the named enumerator.
func (d *Domain) Index(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}
