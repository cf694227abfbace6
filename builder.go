package madfa

import (
	"fmt"

	"github.com/coregx/madfa/internal/automaton"
	"github.com/coregx/madfa/internal/register"
)

// buildFromPointers implements spec §4.3: the incremental minimizer.
//
// The control flow — walk the common prefix, freeze the diverged tail via
// ReplaceOrRegister, graft the new suffix, and at the end freeze whatever is
// left on the rightmost path — follows the same shape as Steve Hanov's Go
// DAWG (Add/minimize/Finish), adapted from his string-keyed minimizedNodes
// map to an identity-based register over an explicit state arena.
func buildFromPointers(words []*string, cfg BuildConfig) (*Automaton, error) {
	if words == nil {
		return nil, ErrMissingCollection
	}

	arena := automaton.NewArena()
	reg := register.New(arena, cfg.RegisterSizeHint)

	var initial automaton.StateID = automaton.InvalidState
	var previous string
	havePrevious := false
	count := 0

	for i, wp := range words {
		if wp == nil {
			return nil, &BuildError{
				Kind:    InvalidElement,
				Message: fmt.Sprintf("madfa: element %d of input sequence is nil", i),
				Cause:   ErrInvalidElement,
			}
		}
		w := *wp

		if cfg.ValidateSorted && havePrevious && w <= previous {
			return nil, &BuildError{
				Kind:    UnsortedInput,
				Message: fmt.Sprintf("madfa: element %d (%q) is not strictly greater than the previous element (%q)", i, w, previous),
				Cause:   ErrUnsortedInput,
			}
		}

		if initial == automaton.InvalidState {
			initial = arena.New()
		}

		insertWord(arena, reg, initial, w)

		previous = w
		havePrevious = true
		count++
	}

	if initial != automaton.InvalidState {
		replaceOrRegister(arena, reg, initial)
	}

	return &Automaton{arena: arena, initial: initial, count: count}, nil
}

// insertWord performs one iteration of the per-word procedure of §4.3 for a
// single word w against the automaton built so far, rooted at initial.
func insertWord(arena *automaton.Arena, reg *register.Register, initial automaton.StateID, w string) {
	runes := []rune(w)

	// 1. Common-prefix walk: follow edges matching successive characters of
	// w as long as they exist. s is the last state of the common prefix.
	s := initial
	k := 0
	for k < len(runes) {
		next, ok := arena.Get(s).Transition(runes[k])
		if !ok {
			break
		}
		s = next
		k++
	}

	// 2. Freeze the diverged tail: the portion of the previous word beyond
	// the common prefix can never be extended again, because every future
	// word is ≥ w and shares only the prefix up to k with the previous one.
	if arena.Get(s).NumEdges() > 0 {
		replaceOrRegister(arena, reg, s)
	}

	// 3. Graft the new suffix: fresh, still-mutable states for w[k..].
	for _, r := range runes[k:] {
		next := arena.New()
		arena.Get(s).AddEdge(r, next)
		s = next
	}

	// The state reached by the full word accepts it.
	arena.Get(s).SetFinal(true)
}

// replaceOrRegister freezes the rightmost chain hanging off state's last
// child, bottom-up, per spec §4.3.
//
// Let c be the last child of state. If c has children, recurse into c first
// (bottom-up, so c's own children are already canonical by the time c is
// looked up in the register). Then either redirect state's last edge to an
// equivalent state already in the register, or insert c itself as a new
// canonical state.
func replaceOrRegister(arena *automaton.Arena, reg *register.Register, state automaton.StateID) {
	edge, ok := arena.Get(state).LastChild()
	if !ok {
		return
	}
	c := edge.Target

	if arena.Get(c).NumEdges() > 0 {
		replaceOrRegister(arena, reg, c)
	}

	if canonical, found := reg.Find(c); found {
		arena.Get(state).ReplaceLastChildTarget(canonical)
		return
	}
	reg.Insert(c)
}
