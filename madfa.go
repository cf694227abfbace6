// Package madfa builds and queries a memory-efficient, immutable set of
// strings represented as a Minimal Acyclic Deterministic Finite-State
// Automaton (MADFA).
//
// Given a strictly increasing lexicographically sorted sequence of strings,
// Build constructs the unique minimal DFA that recognizes exactly that set.
// The result supports O(|w|) membership queries via Contains and enumerates
// the stored strings in lexicographic order via Iterate.
//
// The construction algorithm is the incremental minimization of Daciuk,
// Mihov, Watson & Watson: as each word arrives in sorted order, the longest
// common prefix with the automaton built so far is found, the diverged
// suffix of the previous word is frozen into a canonical register, and the
// new word's suffix is grafted on as a fresh, still-mutable chain.
//
// Basic usage:
//
//	a, err := madfa.Build([]string{"bats", "cats", "rats"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	a.Contains("cats") // true
//	a.Count()          // 3
//
// An Automaton is immutable once built and may be shared across goroutines
// for Contains and for any number of independent Enumerators without
// synchronization; only construction is exclusive.
package madfa

import (
	"github.com/coregx/madfa/internal/automaton"
)

// Automaton is a built, immutable minimal DFA recognizing a finite set of
// strings. The zero value is not usable; obtain one via Build, BuildPointers
// or BuildWithConfig.
type Automaton struct {
	arena   *automaton.Arena
	initial automaton.StateID // automaton.InvalidState if the input was empty
	count   int
}

// Build constructs the minimal automaton recognizing exactly the strings in
// words, using DefaultBuildConfig.
//
// words must be strictly increasing in lexicographic order (a nil words
// fails with ErrMissingCollection; a non-nil, possibly-empty slice is a
// valid empty input). See BuildPointers for the general form of the
// contract in which individual elements may themselves be absent.
func Build(words []string) (*Automaton, error) {
	return BuildWithConfig(words, DefaultBuildConfig())
}

// BuildWithConfig is like Build but with an explicit BuildConfig.
func BuildWithConfig(words []string, cfg BuildConfig) (*Automaton, error) {
	if words == nil {
		return buildFromPointers(nil, cfg)
	}
	ptrs := make([]*string, len(words))
	for i := range words {
		ptrs[i] = &words[i]
	}
	return buildFromPointers(ptrs, cfg)
}

// BuildPointers is the general form of construction named in spec §6: the
// source sequence may itself be absent (nil, fails with
// ErrMissingCollection) and any individual element may itself be absent
// (a nil *string, fails with ErrInvalidElement). This is the entry point a
// streaming source with possibly-missing tokens should use.
func BuildPointers(words []*string, cfg BuildConfig) (*Automaton, error) {
	return buildFromPointers(words, cfg)
}

// MustBuild is like Build but panics if construction fails. Useful for
// automata built from a fixed, known-good set at package init time.
func MustBuild(words []string) *Automaton {
	a, err := Build(words)
	if err != nil {
		panic("madfa: Build: " + err.Error())
	}
	return a
}

// Count returns the number of strings recognized by the automaton.
func (a *Automaton) Count() int { return a.count }
