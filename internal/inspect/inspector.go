// Package inspect is the read-only inspection layer over a locomotion
// Character: it lists every domain with its flags, tracks a selected
// domain and keeps a short log of applied changes.
package inspect

import (
	"fmt"

	"alsflags/internal/enumstate"
	"alsflags/internal/locomotion"
)

// Section is one domain as shown by the inspector.
type Section struct {
	Domain   string
	Value    string
	Selected bool
	Flags    []enumstate.Flag
}

// Header returns the section title line, e.g. "Gait = Running".
func (s Section) Header() string {
	return fmt.Sprintf("%s = %s", s.Domain, s.Value)
}

// Inspector drives a Character from the inspector UI.
type Inspector struct {
	character *locomotion.Character
	initial   locomotion.Character
	domains   []string
	cursor    int
	history   []locomotion.Change
	capacity  int
}

// New returns an inspector over ch. Reset returns ch to the values it
// holds now. historySize bounds the change log.
func New(ch *locomotion.Character, historySize int) *Inspector {
	if historySize < 1 {
		historySize = 1
	}
	return &Inspector{
		character: ch,
		initial:   *ch,
		domains:   locomotion.DomainNames(),
		capacity:  historySize,
	}
}

// Character returns the inspected character.
func (in *Inspector) Character() *locomotion.Character {
	return in.character
}

// Selected returns the name of the selected domain.
func (in *Inspector) Selected() string {
	return in.domains[in.cursor]
}

// MoveCursor moves the domain selection by delta, wrapping around.
func (in *Inspector) MoveCursor(delta int) {
	n := len(in.domains)
	in.cursor = ((in.cursor+delta)%n + n) % n
}

// Step moves the selected domain's value by delta and logs the change.
func (in *Inspector) Step(delta int) (locomotion.Change, bool) {
	ch, moved, err := in.character.Step(in.Selected(), delta)
	if err != nil || !moved {
		return locomotion.Change{}, false
	}
	in.Record(ch)
	return ch, true
}

// Reset returns every domain to its initial value and logs the changes.
func (in *Inspector) Reset() []locomotion.Change {
	var changes []locomotion.Change
	for _, v := range in.initial.Domains() {
		ch, moved, err := in.character.SetByName(v.Domain, v.Value)
		if err == nil && moved {
			changes = append(changes, ch)
		}
	}
	in.Record(changes...)
	return changes
}

// Record adds changes to the log, newest first.
func (in *Inspector) Record(changes ...locomotion.Change) {
	for _, ch := range changes {
		in.history = append([]locomotion.Change{ch}, in.history...)
	}
	if len(in.history) > in.capacity {
		in.history = in.history[:in.capacity]
	}
}

// History returns the logged changes, newest first.
func (in *Inspector) History() []locomotion.Change {
	return append([]locomotion.Change(nil), in.history...)
}

// Sections returns every domain of the character in display order.
func (in *Inspector) Sections() []Section {
	views := in.character.Domains()
	sections := make([]Section, len(views))
	for i, v := range views {
		sections[i] = Section{
			Domain:   v.Domain,
			Value:    v.Value,
			Selected: i == in.cursor,
			Flags:    v.Flags,
		}
	}
	return sections
}
