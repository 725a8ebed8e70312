package engine

// Config controls compilation behavior: how much work prefix literal
// extraction may do, whether the resulting literals are turned into a
// prefilter, and how deeply the parser may recurse on a nested pattern.
//
// This is a subset of the teacher's meta.Config: the DFA-specific fields
// (EnableDFA, MaxDFAStates, DeterminizationLimit, EnableASCIIOptimization)
// have no referent here, since there is exactly one execution strategy in
// this module (the backtracking matcher) and nothing to select between.
type Config struct {
	// EnablePrefilter enables literal-based prefiltering. When false, the
	// compiled Program has no prefilter even if good literals exist, and
	// the outer search loop falls back to the unaccelerated rightward scan.
	// Default: true
	EnablePrefilter bool

	// MaxPrefilterLiterals caps the number of literal alternation branches
	// considered for the Aho-Corasick prefilter before the extractor gives
	// up on a precise literal set.
	// Default: 32
	MaxPrefilterLiterals int

	// MinPrefilterLiteralLen is the shortest literal worth prefiltering on.
	// Shorter literals match too often to narrow the search usefully.
	// Default: 1
	MinPrefilterLiteralLen int

	// MaxRecursionDepth bounds parser recursion on nested patterns such as
	// "((((((...))))))" .
	// Default: 1000
	MaxRecursionDepth int
}

// DefaultConfig returns a configuration suited to ordinary patterns:
// prefiltering on, a permissive literal budget, and
// parser.DefaultMaxRecursionDepth.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:        true,
		MaxPrefilterLiterals:   32,
		MinPrefilterLiteralLen: 1,
		MaxRecursionDepth:      1000,
	}
}

// Validate checks that every field is in range, mirroring meta.Config.Validate.
func (c Config) Validate() error {
	if c.MaxRecursionDepth < 10 || c.MaxRecursionDepth > 1_000 {
		return &ConfigError{Field: "MaxRecursionDepth", Message: "must be between 10 and 1,000"}
	}
	if c.EnablePrefilter {
		if c.MinPrefilterLiteralLen < 1 || c.MinPrefilterLiteralLen > 64 {
			return &ConfigError{Field: "MinPrefilterLiteralLen", Message: "must be between 1 and 64"}
		}
		if c.MaxPrefilterLiterals < 1 || c.MaxPrefilterLiterals > 1_000 {
			return &ConfigError{Field: "MaxPrefilterLiterals", Message: "must be between 1 and 1,000"}
		}
	}
	return nil
}

// ConfigError reports an out-of-range Config field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "rex: invalid config: " + e.Field + ": " + e.Message
}
