package table

import (
	"fmt"
	"sort"
	"strings"
)

// Compiled is the final, immutable output of Compact: an epsilon-free
// transition table with consecutively numbered states, ready to drive a
// match.Matcher. There is no exported constructor other than Table.Compact —
// a Compiled table is only ever produced by running the full pipeline.
type Compiled struct {
	start     StateID
	accepting []bool
	trans     [][]Edge
}

// Start returns the table's single start state.
func (c *Compiled) Start() StateID { return c.start }

// NumStates returns the number of states in the table.
func (c *Compiled) NumStates() int { return len(c.trans) }

// IsAccepting reports whether id is an accepting state.
func (c *Compiled) IsAccepting(id StateID) bool { return c.accepting[id] }

// Edges returns the outgoing edges of id, in construction order.
func (c *Compiled) Edges(id StateID) []Edge { return c.trans[id] }

// AmbiguousStates returns every state that has more than one outgoing edge
// whose predicates overlap on at least one byte value. The compactor does
// not itself resolve such overlaps — match.Matcher takes the first edge
// whose predicate matches, in construction order — so this is a diagnostic
// for callers who want to know whether a pattern's compiled table has any
// states where that tie-breaking rule actually does work.
func (c *Compiled) AmbiguousStates() []StateID {
	var out []StateID
	for id, edges := range c.trans {
		if edgesOverlap(edges) {
			out = append(out, StateID(id))
		}
	}
	return out
}

func edgesOverlap(edges []Edge) bool {
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			for b := 0; b < 256; b++ {
				c := byte(b)
				if edges[i].Pred.Matches(c) && edges[j].Pred.Matches(c) {
					return true
				}
			}
		}
	}
	return false
}

// WriteDOT renders the table as Graphviz DOT source, for visual inspection
// of compiled patterns (e.g. via `dot -Tpng`). Accepting states are drawn
// with a double circle, matching Graphviz's conventional rendering of
// automaton diagrams.
func (c *Compiled) WriteDOT(w *strings.Builder) {
	fmt.Fprintln(w, "digraph regexgen {")
	fmt.Fprintln(w, "\trankdir=LR;")
	fmt.Fprintf(w, "\tstart [shape=point]; start -> %d;\n", c.start)

	ids := make([]int, len(c.trans))
	for i := range ids {
		ids[i] = i
	}
	sort.Ints(ids)

	for _, id := range ids {
		shape := "circle"
		if c.accepting[id] {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "\t%d [shape=%s];\n", id, shape)
	}
	for _, id := range ids {
		for _, e := range c.trans[id] {
			fmt.Fprintf(w, "\t%d -> %d [label=%q];\n", id, e.To, e.Pred.String())
		}
	}
	fmt.Fprintln(w, "}")
}
