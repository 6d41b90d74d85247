// Package table implements the transition table compactor: the pipeline
// stage that turns a cyclic, epsilon-carrying Thompson NFA (package nfa)
// into an epsilon-free, renumbered, fully-reachable transition table ready
// for matching (package match).
//
// This is the hard part of the pipeline (spec.md section 2 puts its share
// of the core at roughly 40%). FromNFA performs Phase A (flatten); Compact
// performs Phases B through F: expand the accepting set through epsilon
// closure, graft non-epsilon transitions across epsilon edges, prune
// unreachable states, strip epsilon edges, and renumber to consecutive ids.
package table

import (
	"sort"

	"github.com/sbwtw/regex-gen/nfa"
)

// StateID identifies a state within a Table. Before renumbering it mirrors
// the nfa.StateID it was flattened from; Compact's final phase remaps
// surviving ids to a dense range starting at 0.
type StateID uint32

// Edge pairs a predicate with its destination state.
type Edge struct {
	Pred nfa.Pred
	To   StateID
}

// Table is the compactor's working structure — the mutable form that
// Phases A-F operate on directly, per spec.md section 4.3. Call Compact
// exactly once to obtain the final, immutable Compiled table.
type Table struct {
	start      StateID
	origAccept StateID
	accepting  map[StateID]bool
	states     map[StateID]bool
	trans      map[StateID][]Edge
	compacted  bool
}

// FromNFA performs Phase A: flatten the NFA's fragment tree into a table
// seeded with start/accepting and every state's raw (still possibly
// epsilon) edge list. Infallible — every nfa.NFA is already well-formed.
func FromNFA(n *nfa.NFA) *Table {
	t := &Table{
		start:      StateID(n.Start()),
		origAccept: StateID(n.End()),
		accepting:  make(map[StateID]bool),
		states:     make(map[StateID]bool, n.NumStates()),
		trans:      make(map[StateID][]Edge, n.NumStates()),
	}
	for id := 0; id < n.NumStates(); id++ {
		sid := StateID(id)
		t.states[sid] = true
		for _, e := range n.Edges(nfa.StateID(id)) {
			t.trans[sid] = append(t.trans[sid], Edge{Pred: e.Pred, To: StateID(e.To)})
		}
	}
	t.accepting[t.origAccept] = true
	return t
}

// Compact runs Phases B-F in place and returns the resulting Compiled
// table. Infallible and in-place per spec.md section 6; panics if called
// more than once on the same Table.
func (t *Table) Compact() *Compiled {
	if t.compacted {
		panic("table: Compact called twice on the same Table")
	}
	t.compacted = true

	t.expandAccepting()
	t.graft()
	t.prune()
	t.stripEpsilon()
	compiled := t.renumber()

	if len(compiled.accepting) == 0 {
		// Can't happen for a well-formed NFA: prune may drop origAccept
		// (when only epsilon edges lead into it), but start always
		// survives, and either start accepts or the last consuming edge on
		// some start-to-end path leads to a state expandAccepting marked.
		panic("table: compaction produced an empty accepting set")
	}
	return compiled
}

// closure computes ε*(q): every state reachable from q by following only
// epsilon edges, excluding q itself. The DFS and its visited-set dedup
// mirror the standard epsilon-closure walk used to determinize an NFA with
// epsilon transitions (stack + membership set, terminates on cycles because
// visited states are never pushed twice).
func (t *Table) closure(q StateID) []StateID {
	seen := map[StateID]bool{q: true}

	var stack []StateID
	push := func(id StateID) {
		if !seen[id] {
			seen[id] = true
			stack = append(stack, id)
		}
	}
	for _, e := range t.trans[q] {
		if e.Pred.IsEpsilon() {
			push(e.To)
		}
	}

	var out []StateID
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		for _, e := range t.trans[cur] {
			if e.Pred.IsEpsilon() {
				push(e.To)
			}
		}
	}
	return out
}

// expandAccepting is Phase B: a state with an epsilon-only path to the
// original accepting state must itself accept, since that path will cost
// no input bytes.
func (t *Table) expandAccepting() {
	for _, q := range t.sortedStates() {
		if q == t.origAccept {
			continue
		}
		for _, r := range t.closure(q) {
			if r == t.origAccept {
				t.accepting[q] = true
				break
			}
		}
	}
}

// graft is Phase C: for every state with an epsilon out-edge, copy in every
// non-epsilon edge reachable through its epsilon closure. After this phase
// a state's non-epsilon edges represent the union of everything reachable
// from it without consuming input — the original non-epsilon edges are
// untouched, only added to. Only each closure member's own edges from
// before this phase are copied, never edges already grafted onto it.
func (t *Table) graft() {
	orig := make(map[StateID][]Edge, len(t.trans))
	for id, edges := range t.trans {
		orig[id] = edges
	}
	for _, q := range t.sortedStates() {
		hasEpsilon := false
		for _, e := range t.trans[q] {
			if e.Pred.IsEpsilon() {
				hasEpsilon = true
				break
			}
		}
		if !hasEpsilon {
			continue
		}
		for _, r := range t.closure(q) {
			for _, e := range orig[r] {
				if !e.Pred.IsEpsilon() {
					t.trans[q] = append(t.trans[q], e)
				}
			}
		}
	}
}

// prune is Phase D: discard every state not reachable from start by
// following non-epsilon edges only.
func (t *Table) prune() {
	visited := map[StateID]bool{t.start: true}
	stack := []StateID{t.start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range t.trans[cur] {
			if e.Pred.IsEpsilon() || visited[e.To] {
				continue
			}
			visited[e.To] = true
			stack = append(stack, e.To)
		}
	}
	for id := range t.states {
		if !visited[id] {
			delete(t.states, id)
			delete(t.accepting, id)
			delete(t.trans, id)
		}
	}
}

// stripEpsilon is Phase E: delete every remaining epsilon edge.
func (t *Table) stripEpsilon() {
	for id, edges := range t.trans {
		kept := edges[:0]
		for _, e := range edges {
			if !e.Pred.IsEpsilon() {
				kept = append(kept, e)
			}
		}
		t.trans[id] = kept
	}
}

// renumber is Phase F: sort surviving ids ascending and remap them to
// consecutive indices starting at 0, producing the final Compiled table.
func (t *Table) renumber() *Compiled {
	ids := t.sortedStates()
	remap := make(map[StateID]StateID, len(ids))
	for i, id := range ids {
		remap[id] = StateID(i)
	}

	trans := make([][]Edge, len(ids))
	accepting := make([]bool, len(ids))
	for i, id := range ids {
		old := t.trans[id]
		edges := make([]Edge, len(old))
		for j, e := range old {
			edges[j] = Edge{Pred: e.Pred, To: remap[e.To]}
		}
		trans[i] = edges
		accepting[i] = t.accepting[id]
	}

	return &Compiled{
		start:     remap[t.start],
		accepting: accepting,
		trans:     trans,
	}
}

func (t *Table) sortedStates() []StateID {
	ids := make([]StateID, 0, len(t.states))
	for id := range t.states {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
