// Package regexgen is a byte-level regular expression engine built from
// four stages: a recursive-descent parser (package ast), a Thompson NFA
// builder (package nfa), an epsilon-free transition table compactor
// (package table), and a deterministic match engine (package match).
//
// regexgen checks only whether a pattern matches an entire input exactly —
// there is no partial/leftmost search, no capture groups, and no
// backreferences or lookaround. The supported syntax is a small subset:
// literals, `.` (any byte but newline), character classes (`[abc]`,
// `[^abc]`, `[a-z]`), the `\d` digit-range shorthand, alternation (`|`),
// grouping (`(...)`), and the `?`, `+`, `*` quantifiers.
//
// Basic usage:
//
//	re, err := regexgen.Compile(`[a-z]+\d*`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("abc123") {
//	    fmt.Println("matched!")
//	}
package regexgen

import (
	"strings"

	"github.com/sbwtw/regex-gen/ast"
	"github.com/sbwtw/regex-gen/match"
	"github.com/sbwtw/regex-gen/nfa"
	"github.com/sbwtw/regex-gen/table"
)

// Regex represents a compiled pattern: a parsed, compiled, and compacted
// transition table paired with its own matcher.
//
// A Regex is immutable after Compile returns and is safe to use
// concurrently from multiple goroutines.
type Regex struct {
	pattern string
	matcher *match.Matcher
	table   *table.Compiled
}

// Compile parses and compiles pattern using DefaultConfig.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it fails. Useful for patterns
// known to be valid at compile time, e.g. package-level variables.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexgen: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig parses and compiles pattern, applying config's resource
// limits before handing the pattern to the NFA builder.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(pattern) > config.MaxPatternLength {
		return nil, &nfa.CompileError{Pattern: pattern, Err: nfa.ErrTooComplex}
	}

	root, err := ast.Parse(pattern)
	if err != nil {
		return nil, err
	}
	if depth := maxDepth(root); depth > config.MaxRecursionDepth {
		return nil, &nfa.CompileError{Pattern: pattern, Err: nfa.ErrTooComplex}
	}

	n := nfa.Compile(root)
	if n.NumStates() > config.MaxStates {
		return nil, &nfa.CompileError{Pattern: pattern, Err: nfa.ErrTooComplex}
	}

	compiled := table.FromNFA(n).Compact()
	return &Regex{
		pattern: pattern,
		matcher: match.New(compiled),
		table:   compiled,
	}, nil
}

// Match reports whether b is an exact match of the compiled pattern.
func (r *Regex) Match(b []byte) bool {
	return r.matcher.Match(b)
}

// MatchString reports whether s is an exact match of the compiled pattern.
func (r *Regex) MatchString(s string) bool {
	return r.matcher.Match([]byte(s))
}

// String returns the source text the Regex was compiled from.
func (r *Regex) String() string {
	return r.pattern
}

// NumStates returns the number of states in the compacted transition
// table backing this Regex — exposed for diagnostics such as the CLI
// REPL's compile message, not part of the matching semantics.
func (r *Regex) NumStates() int {
	return r.table.NumStates()
}

// WriteDOT renders the compiled transition table as Graphviz DOT source,
// for visual inspection of how a pattern compiled (e.g. via `dot -Tpng`).
func (r *Regex) WriteDOT() string {
	var b strings.Builder
	r.table.WriteDOT(&b)
	return b.String()
}

// maxDepth walks the AST and returns the number of nodes on its deepest
// root-to-leaf path: each ItemList / ItemChoice (the two recursive node
// kinds, which a pathological, deeply parenthesized pattern stacks up)
// counts one level, and the leaf counts one more. "a" has depth 2.
func maxDepth(it *ast.Item) int {
	switch it.Kind {
	case ast.ItemList, ast.ItemChoice:
		best := 0
		for _, child := range it.Items {
			if d := maxDepth(child); d > best {
				best = d
			}
		}
		return best + 1
	default:
		return 1
	}
}
