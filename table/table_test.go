package table

import (
	"testing"

	"github.com/sbwtw/regex-gen/ast"
	"github.com/sbwtw/regex-gen/nfa"
)

func compile(t *testing.T, pattern string) *Compiled {
	t.Helper()
	item, err := ast.Parse(pattern)
	if err != nil {
		t.Fatalf("ast.Parse(%q): %v", pattern, err)
	}
	n := nfa.Compile(item)
	return FromNFA(n).Compact()
}

func TestCompactIsEpsilonFree(t *testing.T) {
	patterns := []string{"a", "a+", "a*", "a?", "(a|b)+c", "([ab]+|c*)?", `a\db`, "[^ab]"}
	for _, p := range patterns {
		c := compile(t, p)
		for id := 0; id < c.NumStates(); id++ {
			for _, e := range c.Edges(StateID(id)) {
				if e.Pred.IsEpsilon() {
					t.Errorf("pattern %q: state %d has an epsilon edge after compaction", p, id)
				}
			}
		}
	}
}

func TestCompactStatesAreConsecutive(t *testing.T) {
	c := compile(t, "(a|b)+c")
	seen := make([]bool, c.NumStates())
	for id := 0; id < c.NumStates(); id++ {
		for _, e := range c.Edges(StateID(id)) {
			if int(e.To) >= c.NumStates() {
				t.Fatalf("edge targets state %d, out of range [0,%d)", e.To, c.NumStates())
			}
			seen[e.To] = true
		}
	}
	seen[c.Start()] = true
	for id, ok := range seen {
		if !ok {
			t.Errorf("state %d is never referenced; renumbering should have pruned it", id)
		}
	}
}

func TestCompactAllReachableFromStart(t *testing.T) {
	c := compile(t, "(a|b)+c")
	visited := map[StateID]bool{c.Start(): true}
	stack := []StateID{c.Start()}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range c.Edges(cur) {
			if !visited[e.To] {
				visited[e.To] = true
				stack = append(stack, e.To)
			}
		}
	}
	if len(visited) != c.NumStates() {
		t.Errorf("only %d of %d states reachable from start", len(visited), c.NumStates())
	}
}

func TestCompactDeterministicAcrossRuns(t *testing.T) {
	a := compile(t, "(a|b)+c")
	b := compile(t, "(a|b)+c")
	if a.NumStates() != b.NumStates() || a.Start() != b.Start() {
		t.Fatalf("two compactions of the same pattern diverged: %d/%d states, start %d/%d",
			a.NumStates(), b.NumStates(), a.Start(), b.Start())
	}
	for id := 0; id < a.NumStates(); id++ {
		ea, eb := a.Edges(StateID(id)), b.Edges(StateID(id))
		if len(ea) != len(eb) {
			t.Fatalf("state %d: edge count diverged: %d vs %d", id, len(ea), len(eb))
		}
	}
}

// TestStructuralAssertions exercises the two worked examples named directly
// by the concrete scenario table: "(a|b)+c" compacts to 4 states / 8 edges,
// and "([ab]+|c*)?" compacts to 4 states / 8 edges.
func TestStructuralAssertions(t *testing.T) {
	tests := []struct {
		pattern   string
		numStates int
		numEdges  int
	}{
		{"(a|b)+c", 4, 8},
		{"([ab]+|c*)?", 4, 8},
	}
	for _, tt := range tests {
		c := compile(t, tt.pattern)
		if c.NumStates() != tt.numStates {
			t.Errorf("pattern %q: NumStates() = %d, want %d", tt.pattern, c.NumStates(), tt.numStates)
		}
		edges := 0
		for id := 0; id < c.NumStates(); id++ {
			edges += len(c.Edges(StateID(id)))
		}
		if edges != tt.numEdges {
			t.Errorf("pattern %q: total edges = %d, want %d", tt.pattern, edges, tt.numEdges)
		}
	}
}

func TestAcceptingClosureIncludesTrailingOptional(t *testing.T) {
	// "ab?" must accept after just "a": the trailing optional "b" means the
	// state after "a" sits on an epsilon-only path to the original accept.
	c := compile(t, "ab?")
	afterA, found := StateID(0), false
	for _, e := range c.Edges(c.Start()) {
		if e.Pred.Matches('a') {
			afterA, found = e.To, true
			break
		}
	}
	if !found {
		t.Fatal(`"ab?": no edge on "a" out of the start state`)
	}
	if !c.IsAccepting(afterA) {
		t.Error(`"ab?": the state reached on "a" is not accepting`)
	}
}

func TestCompactTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on double Compact")
		}
	}()
	item, _ := ast.Parse("a")
	tbl := FromNFA(nfa.Compile(item))
	tbl.Compact()
	tbl.Compact()
}
