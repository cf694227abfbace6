package automaton

import "testing"

func TestArena_NewAndGet(t *testing.T) {
	a := NewArena()
	if a.Len() != 0 {
		t.Fatalf("new arena Len() = %d, want 0", a.Len())
	}

	id0 := a.New()
	id1 := a.New()
	if id0 == id1 {
		t.Fatal("distinct New() calls must return distinct IDs")
	}
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}

	a.Get(id0).SetFinal(true)
	a.Get(id0).AddEdge('a', id1)

	if !a.Get(id0).IsFinal() {
		t.Error("mutation through Get should persist")
	}
	if next, ok := a.Get(id0).Transition('a'); !ok || next != id1 {
		t.Errorf("Transition('a') = (%d, %v), want (%d, true)", next, ok, id1)
	}
	if a.Get(id1).IsFinal() {
		t.Error("id1 should remain non-final")
	}
}
