// Package automaton holds the arena-of-states representation of a minimal
// acyclic deterministic finite-state automaton (MADFA).
//
// States are addressed by a stable uint32 index into an Arena rather than by
// pointer. This gives O(1) identity comparison between already-canonicalized
// states — the property the register (internal/register) relies on to test
// state equivalence without recursing into children — and sidesteps any
// cyclic-ownership concern in a graph that is acyclic but heavily sharing.
package automaton

import "fmt"

// StateID uniquely identifies a state within an Arena.
type StateID uint32

// InvalidState marks the absence of a state, e.g. a failed transition or an
// automaton built from empty input with no initial state.
const InvalidState StateID = 0xFFFFFFFF

// Edge is a (label, target) pair. Labels are abstract code units (runes);
// within one state's edge list labels are unique and, because construction
// consumes sorted input, appear in ascending order.
type Edge struct {
	Label  rune
	Target StateID
}

// State is a node in the automaton: a finality bit plus an ordered list of
// out-edges. Edge order is load-bearing — it is part of what makes two
// states equivalent (internal/register) and is the order the enumerator
// visits children in.
type State struct {
	final bool
	edges []Edge
}

// IsFinal reports whether the string formed by the path from the initial
// state to this state is a member of the recognized set.
func (s *State) IsFinal() bool { return s.final }

// SetFinal sets the finality bit. Only valid on states still owned by the
// builder's rightmost path — once a state is registered it must never be
// mutated again (spec: "Lifecycle").
func (s *State) SetFinal(final bool) { s.final = final }

// Edges returns the state's out-edges in insertion (lexicographic) order.
// The returned slice aliases the state's storage and must not be mutated by
// the caller.
func (s *State) Edges() []Edge { return s.edges }

// NumEdges returns the number of out-edges.
func (s *State) NumEdges() int { return len(s.edges) }

// Transition performs a linear scan of the edge list for a matching label.
// Edge lists are tiny in realistic dictionaries (average fan-out is far
// below alphabet size), so a linear scan beats hashing while preserving
// insertion order for free.
func (s *State) Transition(label rune) (StateID, bool) {
	for _, e := range s.edges {
		if e.Label == label {
			return e.Target, true
		}
	}
	return InvalidState, false
}

// AddEdge appends a new out-edge. The caller guarantees label is strictly
// greater than every existing label on this state — true by construction
// because the builder consumes sorted input.
func (s *State) AddEdge(label rune, target StateID) {
	s.edges = append(s.edges, Edge{Label: label, Target: target})
}

// LastChild returns the most recently added edge. The incremental builder
// hangs the "current word's path" off this edge at every state along the
// rightmost chain.
func (s *State) LastChild() (Edge, bool) {
	if len(s.edges) == 0 {
		return Edge{}, false
	}
	return s.edges[len(s.edges)-1], true
}

// ReplaceLastChildTarget rewrites the target of the most recently added
// edge. Used when the previous last-child is replaced by its canonical
// equivalent from the register.
func (s *State) ReplaceLastChildTarget(target StateID) {
	if len(s.edges) == 0 {
		panic("automaton: ReplaceLastChildTarget on a state with no edges")
	}
	s.edges[len(s.edges)-1].Target = target
}

// String returns a debugging representation of the state.
func (s *State) String() string {
	return fmt.Sprintf("State(final=%v, edges=%d)", s.final, len(s.edges))
}
