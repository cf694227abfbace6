package madfa

import "testing"

func TestBuild_EmptyInput(t *testing.T) {
	a, err := Build([]string{})
	if err != nil {
		t.Fatalf("Build(empty) error: %v", err)
	}
	if a.Count() != 0 {
		t.Errorf("Count() = %d, want 0", a.Count())
	}
	if a.Contains("anything") {
		t.Error("empty automaton should not contain anything")
	}
	if a.Iterate().Advance() {
		t.Error("empty automaton should enumerate nothing")
	}
}

func TestBuild_NilInputFailsWithMissingCollection(t *testing.T) {
	_, err := Build(nil)
	if err == nil {
		t.Fatal("expected an error for nil input")
	}
	be, ok := err.(*BuildError)
	if !ok || be.Kind != MissingCollection {
		t.Errorf("err = %v, want a BuildError with Kind MissingCollection", err)
	}
}

func TestBuildPointers_NilElementFailsWithInvalidElement(t *testing.T) {
	a, b := "a", "c"
	words := []*string{&a, nil, &b}
	automaton, err := BuildPointers(words, DefaultBuildConfig())
	if err == nil {
		t.Fatal("expected an error for a nil element")
	}
	if automaton != nil {
		t.Error("no automaton should be returned on construction failure")
	}
	be, ok := err.(*BuildError)
	if !ok || be.Kind != InvalidElement {
		t.Errorf("err = %v, want a BuildError with Kind InvalidElement", err)
	}
}

func TestBuild_OnlyEmptyString(t *testing.T) {
	a, err := Build([]string{""})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if a.Count() != 1 {
		t.Errorf("Count() = %d, want 1", a.Count())
	}
	if !a.Contains("") {
		t.Error(`Contains("") should be true`)
	}
	if a.Contains("a") {
		t.Error(`Contains("a") should be false`)
	}

	it := a.Iterate()
	if !it.Advance() || it.Current() != "" {
		t.Fatalf("expected first (and only) string to be empty, got %q", it.Current())
	}
	if it.Advance() {
		t.Error("expected enumeration to end after the empty string")
	}
}

func TestBuild_EmptyStringPlusA(t *testing.T) {
	a, err := Build([]string{"", "a"})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if a.Count() != 2 {
		t.Errorf("Count() = %d, want 2", a.Count())
	}
	if !a.Contains("") || !a.Contains("a") {
		t.Error("expected both \"\" and \"a\" to be contained")
	}
	if a.Contains("b") {
		t.Error(`Contains("b") should be false`)
	}

	got := collect(t, a)
	want := []string{"", "a"}
	assertStringSlicesEqual(t, got, want)
}

func TestBuild_BatsCatsRats(t *testing.T) {
	words := []string{"bats", "cats", "rats"}
	a, err := Build(words)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if a.Count() != 3 {
		t.Errorf("Count() = %d, want 3", a.Count())
	}
	if a.CountStates() != 5 {
		t.Errorf("CountStates() = %d, want 5 (minimality)", a.CountStates())
	}

	for _, w := range words {
		if !a.Contains(w) {
			t.Errorf("Contains(%q) should be true", w)
		}
	}
	for _, w := range []string{"ats", "bat", ""} {
		if a.Contains(w) {
			t.Errorf("Contains(%q) should be false", w)
		}
	}

	assertStringSlicesEqual(t, collect(t, a), words)
}

func TestBuild_UnsortedInputDetected(t *testing.T) {
	_, err := Build([]string{"b", "a"})
	if err == nil {
		t.Fatal("expected an error for unsorted input")
	}
	be, ok := err.(*BuildError)
	if !ok || be.Kind != UnsortedInput {
		t.Errorf("err = %v, want a BuildError with Kind UnsortedInput", err)
	}
}

func TestBuild_DuplicateAdjacentKeysRejected(t *testing.T) {
	_, err := Build([]string{"a", "a", "b"})
	if err == nil {
		t.Fatal("expected an error for duplicate adjacent keys")
	}
	be, ok := err.(*BuildError)
	if !ok || be.Kind != UnsortedInput {
		t.Errorf("err = %v, want a BuildError with Kind UnsortedInput (duplicate policy)", err)
	}
}

func TestBuildWithConfig_ValidateSortedDisabled(t *testing.T) {
	cfg := DefaultBuildConfig()
	cfg.ValidateSorted = false

	// Unsorted input is undefined behavior when validation is off; we only
	// assert that construction itself does not fail.
	a, err := BuildWithConfig([]string{"z", "a"}, cfg)
	if err != nil {
		t.Fatalf("unexpected error with ValidateSorted=false: %v", err)
	}
	if a == nil {
		t.Fatal("expected a non-nil automaton")
	}
}

func TestBuild_Determinism(t *testing.T) {
	words := []string{"an", "and", "ant", "bat", "bats", "cat", "cats"}

	a1, err := Build(words)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	a2, err := Build(words)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if a1.Count() != a2.Count() {
		t.Errorf("Count mismatch: %d vs %d", a1.Count(), a2.Count())
	}
	if a1.CountStates() != a2.CountStates() {
		t.Errorf("CountStates mismatch: %d vs %d", a1.CountStates(), a2.CountStates())
	}
	assertStringSlicesEqual(t, collect(t, a1), collect(t, a2))
}

func TestBuild_LargeDictionarySharing(t *testing.T) {
	words := []string{
		"bat", "bath", "bathe", "bathed", "bats", "cat", "cater", "catering",
		"cats", "rat", "rate", "rates", "rats",
	}
	a, err := Build(words)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if a.Count() != len(words) {
		t.Errorf("Count() = %d, want %d", a.Count(), len(words))
	}
	assertStringSlicesEqual(t, collect(t, a), words)

	totalChars := 0
	for _, w := range words {
		totalChars += len(w)
	}
	if a.CountStates() >= totalChars {
		t.Errorf("CountStates() = %d should be strictly less than total character count %d (proves sharing)", a.CountStates(), totalChars)
	}
}

func collect(t *testing.T, a *Automaton) []string {
	t.Helper()
	var out []string
	it := a.Iterate()
	for it.Advance() {
		out = append(out, it.Current())
	}
	return out
}

func assertStringSlicesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v (len %d), want %v (len %d)", got, len(got), want, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %q, want %q (got=%v want=%v)", i, got[i], want[i], got, want)
		}
	}
}
