package ast

import "testing"

func TestParseValid(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"literal", "hello"},
		{"digit escape", `\d`},
		{"digit plus", `a\d+b`},
		{"bracket class", "[ab]+"},
		{"negated class", `[^\dab]+`},
		{"leading hyphen class", "[-abc]"},
		{"az range", "[a-z]"},
		{"AZ range", "[A-Z]"},
		{"09 range", "[0-9]"},
		{"alternation group", "(a+|b?)"},
		{"dot", "."},
		{"dot plus", ".+"},
		{"nested group", "(ab(cd)?)+"},
		{"escaped meta", `\.\[\]\(\)\|`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.pattern, err)
			}
			if item.Kind != ItemList || item.Quant != One {
				t.Fatalf("Parse(%q) top level = %v/%v, want ItemList/One", tt.pattern, item.Kind, item.Quant)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    ErrorKind
	}{
		{"unterminated class", "[abc", UnexpectedEnd},
		{"unterminated group", "(a|b", UnexpectedEnd},
		{"stray close paren", "a)b", UnexpectedEnd},
		{"trailing backslash", `a\`, InvalidEscape},
		{"trailing backslash in class", `[a\`, InvalidEscape},
		{"bad az range", "[a-x]", InvalidRange},
		{"bad AZ range", "[A-0]", InvalidRange},
		{"bad 09 range", "[0-a]", InvalidRange},
		{"incomplete range at eof", "[a-", UnexpectedEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) = nil error, want %v", tt.pattern, tt.want)
			}
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("Parse(%q) error type = %T, want *ParseError", tt.pattern, err)
			}
			if pe.Kind != tt.want {
				t.Errorf("Parse(%q) kind = %v, want %v", tt.pattern, pe.Kind, tt.want)
			}
		})
	}
}

func TestParseDotExcludesNewline(t *testing.T) {
	item, err := Parse(".")
	if err != nil {
		t.Fatalf("Parse(.) error: %v", err)
	}
	dot := item.Items[0]
	if dot.Kind != NotChar || dot.Byte != '\n' {
		t.Fatalf(". parsed as %+v, want NotChar('\\n')", dot)
	}
}

func TestParseEmptyAlternative(t *testing.T) {
	// "(a+|b?)" against "" is a testable scenario from spec.md section 8:
	// the b? branch matches empty, so the group must parse to a two-branch
	// ItemChoice whose second branch is an optional b, not an error.
	item, err := Parse("(a+|b?)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	group := item.Items[0]
	if group.Kind != ItemChoice || len(group.Items) != 2 {
		t.Fatalf("group = %+v, want ItemChoice of 2", group)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []string{
		"hello",
		"a+b",
		"[ab]+",
		"[^abc]",
		".+",
		"(a|b|c)",
		`\.`,
	}
	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			item, err := Parse(pattern)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", pattern, err)
			}
			if got := item.String(); got != pattern {
				t.Errorf("round trip: got %q, want %q", got, pattern)
			}
		})
	}
}

func TestRoundTripNormalizesDigitEscape(t *testing.T) {
	// \d round-trips as 0-9, a documented normalization (spec.md section 8,
	// property 6).
	item, err := Parse(`\d`)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got, want := item.String(), "0-9"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRoundTripQuantifiedGroup(t *testing.T) {
	// A quantified group must keep its parens: (ab)+ is not the same
	// pattern as ab+.
	item, err := Parse("(ab)+")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got, want := item.String(), "(ab)+"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
