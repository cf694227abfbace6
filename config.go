package madfa

// BuildConfig controls how the incremental minimizer builds an Automaton.
//
// Example:
//
//	cfg := madfa.DefaultBuildConfig()
//	cfg.ValidateSorted = false // trust the caller, skip the linear check
//	a, err := madfa.BuildWithConfig(words, cfg)
type BuildConfig struct {
	// ValidateSorted enables a running check, as each word arrives, that it
	// is strictly greater than the previous word. Spec §9 Open Question (a)
	// leaves detection optional; madfa defaults to detecting it, since an
	// undetected violation silently produces a non-minimal or incorrect
	// automaton with no indication anything went wrong.
	//
	// Default: true
	ValidateSorted bool

	// RegisterSizeHint preallocates the register's bucket map to roughly
	// this many distinct canonical states, amortizing growth for large
	// dictionaries where the final state count is known in advance.
	//
	// Default: 0 (let the map grow on demand)
	RegisterSizeHint int
}

// DefaultBuildConfig returns a configuration with sensible defaults: sorted
// input is validated, and no register size hint is given.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		ValidateSorted:   true,
		RegisterSizeHint: 0,
	}
}
