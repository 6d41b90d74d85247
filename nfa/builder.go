package nfa

// Builder constructs an NFA incrementally via structural induction over an
// AST (see compile.go). Unlike a fixed-shape state record, each state here
// is just an edge list — spec.md's "edge map" — so quantifier wiring can
// freely append an extra epsilon edge to a state that already carries a
// consuming one.
type Builder struct {
	edges [][]Edge
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewState allocates a fresh state with no outgoing edges and returns its id.
func (b *Builder) NewState() StateID {
	id := StateID(len(b.edges))
	b.edges = append(b.edges, nil)
	return id
}

// AddEdge appends an outgoing edge from -> to carrying pred to from's edge
// list. Both states must already have been allocated via NewState.
func (b *Builder) AddEdge(from StateID, pred Pred, to StateID) {
	b.edges[from] = append(b.edges[from], Edge{Pred: pred, To: to})
}

// NumStates returns the number of states allocated so far.
func (b *Builder) NumStates() int { return len(b.edges) }

// Fragment is a sub-NFA built bottom-up by one AST node: a single start and
// a single end state, with everything in between wired into the builder's
// shared arena. Fragments nest: composing two fragments only ever adds new
// epsilon edges between their start/end states, never touches internals.
type Fragment struct {
	Start, End StateID
}

// Build finalizes the arena into an immutable NFA rooted at frag.
func (b *Builder) Build(frag Fragment) *NFA {
	return &NFA{edges: b.edges, start: frag.Start, end: frag.End}
}
