package automaton

import "github.com/coregx/madfa/internal/conv"

// Arena owns every State ever created during construction, addressed by
// stable StateID. It never shrinks: a canonicalized state that turns out to
// be a duplicate of one already in the register is simply abandoned (its
// slot is never referenced by a surviving edge) rather than compacted away,
// matching the spec's "old c becomes garbage" note on ReplaceOrRegister —
// reclaiming it would require renumbering every StateID that refers to
// surviving states, which the spec does not ask for.
type Arena struct {
	states []State
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// New allocates a fresh, non-final state with no edges and returns its ID.
func (a *Arena) New() StateID {
	id := conv.IntToUint32(len(a.states))
	a.states = append(a.states, State{})
	return StateID(id)
}

// Get returns a mutable pointer to the state with the given ID.
func (a *Arena) Get(id StateID) *State {
	return &a.states[id]
}

// Len returns the number of states ever allocated, including any later
// abandoned as register duplicates.
func (a *Arena) Len() int { return len(a.states) }
