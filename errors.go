package madfa

import "fmt"

// BuildErrorKind classifies construction failures into categories.
type BuildErrorKind uint8

const (
	// MissingCollection indicates the input sequence itself was absent
	// (a nil slice passed to Build, BuildWithConfig or BuildPointers).
	MissingCollection BuildErrorKind = iota

	// InvalidElement indicates an element of the input sequence was
	// absent (e.g. a nil *string from a streaming source).
	InvalidElement

	// UnsortedInput indicates two adjacent elements were not in strictly
	// increasing lexicographic order. Spec §7 leaves detection optional;
	// madfa opts in by default (see BuildConfig.ValidateSorted).
	UnsortedInput
)

// String returns a human-readable error kind name.
func (k BuildErrorKind) String() string {
	switch k {
	case MissingCollection:
		return "MissingCollection"
	case InvalidElement:
		return "InvalidElement"
	case UnsortedInput:
		return "UnsortedInput"
	default:
		return fmt.Sprintf("UnknownBuildErrorKind(%d)", k)
	}
}

// BuildError represents a failure of automaton construction. No automaton
// is produced when a BuildError is returned; any state allocated so far is
// discarded along with the failed builder.
type BuildError struct {
	Kind    BuildErrorKind
	Message string
	Cause   error // optional underlying error, e.g. the sentinel for this Kind
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any, for errors.Is/errors.As.
func (e *BuildError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison for errors.Is: two BuildErrors match by
// Kind alone, regardless of Message or Cause.
func (e *BuildError) Is(target error) bool {
	t, ok := target.(*BuildError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// ErrMissingCollection is returned when the input sequence itself is nil.
var ErrMissingCollection = &BuildError{
	Kind:    MissingCollection,
	Message: "madfa: input sequence is missing",
}

// ErrInvalidElement is returned when an element of the input sequence is
// absent.
var ErrInvalidElement = &BuildError{
	Kind:    InvalidElement,
	Message: "madfa: input sequence contains a missing element",
}

// ErrUnsortedInput is returned when ValidateSorted is enabled and two
// adjacent elements are not in strictly increasing lexicographic order
// (this also covers duplicate adjacent keys — see SPEC_FULL.md Open
// Question (b)).
var ErrUnsortedInput = &BuildError{
	Kind:    UnsortedInput,
	Message: "madfa: input sequence is not strictly sorted",
}
