package regexgen

// Config controls resource limits applied before and during compilation.
// These exist to bound the cost of compiling a pattern from an untrusted
// or generated source, not to change matching semantics — two Regex values
// compiled from the same pattern under different (valid) Configs behave
// identically at match time.
type Config struct {
	// MaxPatternLength caps the length in bytes of a pattern string.
	// Default: 4096
	MaxPatternLength int

	// MaxRecursionDepth caps how deeply nested alternation/concatenation
	// groups may be, checked on the parsed AST before NFA compilation. The
	// depth counts every node on the deepest path, including the top-level
	// concatenation and the leaf, so "a" already has depth 2.
	// Default: 100
	MaxRecursionDepth int

	// MaxStates caps the number of states the Thompson NFA may allocate.
	// Checked after nfa.Compile returns, before the table compactor runs.
	// Default: 10000
	MaxStates int
}

// DefaultConfig returns a Config with limits generous enough for any
// pattern a human would reasonably write by hand.
func DefaultConfig() Config {
	return Config{
		MaxPatternLength:  4096,
		MaxRecursionDepth: 100,
		MaxStates:         10000,
	}
}

// Validate checks that every field of c is within its documented range.
func (c Config) Validate() error {
	if c.MaxPatternLength < 1 || c.MaxPatternLength > 1_000_000 {
		return &ConfigError{Field: "MaxPatternLength", Message: "must be between 1 and 1,000,000"}
	}
	if c.MaxRecursionDepth < 1 || c.MaxRecursionDepth > 10_000 {
		return &ConfigError{Field: "MaxRecursionDepth", Message: "must be between 1 and 10,000"}
	}
	if c.MaxStates < 1 || c.MaxStates > 10_000_000 {
		return &ConfigError{Field: "MaxStates", Message: "must be between 1 and 10,000,000"}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "regexgen: invalid config: " + e.Field + ": " + e.Message
}
