package madfa

import "github.com/coregx/madfa/internal/automaton"

// Contains reports whether w is a member of the set recognized by the
// automaton. Walks transition(state, w[i]) for each character of w; if any
// step fails, returns false immediately. An empty w returns whether the
// initial state is final. An empty automaton (no initial state) always
// returns false. Never allocates and never fails.
func (a *Automaton) Contains(w string) bool {
	if a.initial == automaton.InvalidState {
		return false
	}
	s := a.initial
	for _, r := range w {
		next, ok := a.arena.Get(s).Transition(r)
		if !ok {
			return false
		}
		s = next
	}
	return a.arena.Get(s).IsFinal()
}

// CountStates is a diagnostic: it performs a depth-first traversal from the
// initial state and returns the number of distinct states reachable from
// it. For a correctly minimized automaton this equals the state count of
// the unique minimal DFA accepting the stored set (spec §4.6, P5).
func (a *Automaton) CountStates() int {
	if a.initial == automaton.InvalidState {
		return 0
	}

	visited := make(map[automaton.StateID]bool)
	stack := []automaton.StateID{a.initial}
	visited[a.initial] = true

	for len(stack) > 0 {
		n := len(stack) - 1
		id := stack[n]
		stack = stack[:n]

		for _, e := range a.arena.Get(id).Edges() {
			if !visited[e.Target] {
				visited[e.Target] = true
				stack = append(stack, e.Target)
			}
		}
	}

	return len(visited)
}
