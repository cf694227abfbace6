package madfa

import "github.com/coregx/madfa/internal/automaton"

// pendingEdge records the (label, depth) of an edge that led to a pending
// state: depth is how far into the buffer the edge's label belongs, so
// Advance can truncate the buffer back to depth before appending label.
type pendingEdge struct {
	label rune
	depth int
	valid bool // false only for the initial state's synthetic entry
}

// Enumerator produces the strings recognized by an Automaton in strictly
// ascending lexicographic order, one at a time. It is restartable via
// Reset, and each call to Advance does work proportional only to the depth
// of tree walked since the last yielded string (spec §4.5).
//
// An Enumerator owns its own buffer and stacks and is not safe for
// concurrent use; independent Enumerators over the same Automaton are
// independent and may be driven from different goroutines.
type Enumerator struct {
	a *Automaton

	buf        []rune
	stateStack []automaton.StateID
	edgeStack  []pendingEdge

	current string
}

// Iterate returns a fresh Enumerator positioned before the first string.
func (a *Automaton) Iterate() *Enumerator {
	e := &Enumerator{a: a}
	e.Reset()
	return e
}

// Reset returns the enumerator to the position before the first string,
// from any state. Two successive full enumerations with a Reset between
// them produce identical sequences (spec P3).
func (e *Enumerator) Reset() {
	e.buf = e.buf[:0]
	e.stateStack = e.stateStack[:0]
	e.edgeStack = e.edgeStack[:0]
	e.current = ""

	if e.a.initial != automaton.InvalidState {
		e.stateStack = append(e.stateStack, e.a.initial)
		e.edgeStack = append(e.edgeStack, pendingEdge{})
	}
}

// Advance moves to the next string in lexicographic order and reports
// whether one was found. Once Advance returns false the enumerator is
// exhausted; only Reset can make it yield again.
func (e *Enumerator) Advance() bool {
	for len(e.stateStack) > 0 {
		n := len(e.stateStack) - 1
		state := e.stateStack[n]
		edge := e.edgeStack[n]
		e.stateStack = e.stateStack[:n]
		e.edgeStack = e.edgeStack[:n]

		if edge.valid {
			e.buf = append(e.buf[:edge.depth], edge.label)
		}

		// Push every child edge in reverse order so the smallest label is
		// the next one popped.
		edges := e.a.arena.Get(state).Edges()
		for i := len(edges) - 1; i >= 0; i-- {
			e.stateStack = append(e.stateStack, edges[i].Target)
			e.edgeStack = append(e.edgeStack, pendingEdge{label: edges[i].Label, depth: len(e.buf), valid: true})
		}

		if e.a.arena.Get(state).IsFinal() {
			e.current = string(e.buf)
			return true
		}
	}

	e.current = ""
	return false
}

// Current returns the string at the enumerator's current position. Only
// valid after a call to Advance that returned true; otherwise the return
// value is unspecified (here: the empty string).
func (e *Enumerator) Current() string {
	return e.current
}
