// Package match implements the match engine: a deterministic, single
// active-state walk over a compacted transition table (package table).
// Because the compactor has already resolved every epsilon edge and
// grafted every reachable consuming transition onto its source state,
// matching tracks a single state id rather than a set of active NFA states
// the way a Thompson/Pike simulation does. Where a state has several edges
// matching the same byte, only the first is followed and the others are
// never tried, so a pattern whose alternatives share a prefix is not
// recognized in full: (ab|ac) matches "ac" but not "ab".
package match

import "github.com/sbwtw/regex-gen/table"

// Matcher walks a compiled table byte by byte. It holds no mutable state of
// its own between calls to Match; each call starts fresh from the table's
// start state.
type Matcher struct {
	tbl *table.Compiled
}

// New returns a Matcher over tbl.
func New(tbl *table.Compiled) *Matcher {
	return &Matcher{tbl: tbl}
}

// Match reports whether input is an exact match for the pattern the
// Matcher was built from: starting at the table's start state, step once
// per input byte, accept only if the final state (after every byte is
// consumed) is an accepting state. An empty input accepts iff the start
// state itself is accepting.
func (m *Matcher) Match(input []byte) bool {
	state := m.tbl.Start()
	for _, b := range input {
		next, ok := m.step(state, b)
		if !ok {
			return false
		}
		state = next
	}
	return m.tbl.IsAccepting(state)
}

// step follows the first edge out of state whose predicate matches b, per
// construction order — the compactor never deduplicates or reorders
// overlapping edges, so "first match wins" is the same tie-break a caller
// would observe by inspecting table.Compiled.Edges directly.
func (m *Matcher) step(state table.StateID, b byte) (table.StateID, bool) {
	for _, e := range m.tbl.Edges(state) {
		if e.Pred.Matches(b) {
			return e.To, true
		}
	}
	return 0, false
}
