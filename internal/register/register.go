// Package register implements the canonical-state register used by the
// incremental MADFA minimizer.
//
// The register maps a "canonical state shape" to the StateID of a
// representative state already frozen into the automaton. Two states are
// equivalent iff they have the same finality, the same number of edges, and
// for every position the i-th edges carry equal labels and identical
// (already-canonicalized) targets. Because the builder canonicalizes
// bottom-up, identity comparison of targets is sufficient — no recursive
// structural comparison is ever needed, which is what keeps the algorithm
// linear in the size of the input.
//
// The hashing/keying technique mirrors coregex's dfa/lazy StateKey: an
// FNV-1a digest over a canonical byte encoding of the shape, used as a map
// key with an equality check to resolve collisions.
package register

import (
	"hash/fnv"

	"github.com/coregx/madfa/internal/automaton"
)

// Key is a hash-based key for a candidate canonical state shape. Like
// dfa/lazy's StateKey, it is consistent with equality but not injective:
// distinct shapes may collide, so the register must still verify full
// equality against the states stored under a key before treating two
// states as the same.
type Key uint64

// ComputeKey hashes the shape of the state at id: its finality followed by
// each (label, target) edge in order. Edge order matters for the hash the
// same way it matters for equality (spec §3: "Ordering is a load-bearing
// invariant").
func ComputeKey(arena *automaton.Arena, id automaton.StateID) Key {
	s := arena.Get(id)
	h := fnv.New64a()

	var finalByte byte
	if s.IsFinal() {
		finalByte = 1
	}
	_, _ = h.Write([]byte{finalByte})

	for _, e := range s.Edges() {
		var buf [8]byte
		putUint32(buf[0:4], uint32(e.Label))
		putUint32(buf[4:8], uint32(e.Target))
		_, _ = h.Write(buf[:])
	}

	return Key(h.Sum64())
}

func putUint32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// Register is the canonical-state lookup table. Each key maps to every
// distinct state currently registered under that key (plural only to
// resolve hash collisions; in practice almost always a single entry).
type Register struct {
	arena   *automaton.Arena
	buckets map[Key][]automaton.StateID
}

// New creates an empty register over the given arena. sizeHint preallocates
// the bucket map for roughly that many distinct canonical states; 0 lets it
// grow on demand.
func New(arena *automaton.Arena, sizeHint int) *Register {
	return &Register{
		arena:   arena,
		buckets: make(map[Key][]automaton.StateID, sizeHint),
	}
}

// Find looks up a state equivalent to id already present in the register.
// Returns (canonical, true) if found, or (InvalidState, false) otherwise.
func (r *Register) Find(id automaton.StateID) (automaton.StateID, bool) {
	key := ComputeKey(r.arena, id)
	for _, candidate := range r.buckets[key] {
		if r.equivalent(candidate, id) {
			return candidate, true
		}
	}
	return automaton.InvalidState, false
}

// Insert enters id into the register as a new canonical state, keyed by its
// own shape. Callers must have already confirmed (via Find) that no
// equivalent state exists.
func (r *Register) Insert(id automaton.StateID) {
	key := ComputeKey(r.arena, id)
	r.buckets[key] = append(r.buckets[key], id)
}

// equivalent implements the equality relation of spec §4.2: same finality,
// same edge count, and pairwise equal labels with identical (by StateID)
// targets.
func (r *Register) equivalent(a, b automaton.StateID) bool {
	if a == b {
		return true
	}
	sa, sb := r.arena.Get(a), r.arena.Get(b)
	if sa.IsFinal() != sb.IsFinal() {
		return false
	}
	ea, eb := sa.Edges(), sb.Edges()
	if len(ea) != len(eb) {
		return false
	}
	for i := range ea {
		if ea[i].Label != eb[i].Label || ea[i].Target != eb[i].Target {
			return false
		}
	}
	return true
}
