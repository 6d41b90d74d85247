package nfa

import "github.com/sbwtw/regex-gen/ast"

// Compile translates an AST into a Thompson NFA by structural induction
// (spec.md section 4.2). It is infallible when root was produced by
// ast.Parse: every construction rule below always terminates and always
// produces a fragment with exactly one start and one end state.
func Compile(root *ast.Item) *NFA {
	b := NewBuilder()
	frag := compileItem(b, root)
	return b.Build(frag)
}

func compileItem(b *Builder, it *ast.Item) Fragment {
	frag := compileUnit(b, it)
	return applyQuantifier(b, frag, it.Quant)
}

func compileUnit(b *Builder, it *ast.Item) Fragment {
	switch it.Kind {
	case ast.Char:
		return compileLeaf(b, Char(it.Byte))
	case ast.CharRange:
		return compileLeaf(b, Range(it.Lo, it.Hi))
	case ast.NotChar:
		return compileLeaf(b, Not(Char(it.Byte)))
	case ast.NotUnits:
		return compileLeaf(b, Not(flattenUnits(it.Units)...))
	case ast.Choice:
		return compileUnitChoice(b, it.Units)
	case ast.ItemList:
		return compileList(b, it.Items)
	case ast.ItemChoice:
		return compileItemChoice(b, it.Items)
	default:
		panic("nfa: unknown ast.Kind")
	}
}

func compileLeaf(b *Builder, pred Pred) Fragment {
	s := b.NewState()
	e := b.NewState()
	b.AddEdge(s, pred, e)
	return Fragment{Start: s, End: e}
}

// flattenUnits converts a class's flat Char/CharRange units into the inner
// predicate list of a single Not predicate.
func flattenUnits(units []*ast.Item) []Pred {
	preds := make([]Pred, len(units))
	for i, u := range units {
		switch u.Kind {
		case ast.Char:
			preds[i] = Char(u.Byte)
		case ast.CharRange:
			preds[i] = Range(u.Lo, u.Hi)
		}
	}
	return preds
}

// compileUnitChoice builds [abc]-style bracket alternation: a fresh
// start/end pair with an epsilon branch to and from each unit's own
// single-edge fragment.
func compileUnitChoice(b *Builder, units []*ast.Item) Fragment {
	start := b.NewState()
	end := b.NewState()
	for _, u := range units {
		frag := compileUnit(b, u) // units never carry their own quantifier
		b.AddEdge(start, Epsilon, frag.Start)
		b.AddEdge(frag.End, Epsilon, end)
	}
	return Fragment{Start: start, End: end}
}

// compileList builds a concatenation: each child fragment's end is wired to
// the next child's start by an epsilon edge. An empty list (a degenerate
// empty group, e.g. one alternative of "(a|)") is a single state that
// matches the empty string.
func compileList(b *Builder, items []*ast.Item) Fragment {
	if len(items) == 0 {
		s := b.NewState()
		return Fragment{Start: s, End: s}
	}
	frags := make([]Fragment, len(items))
	for i, it := range items {
		frags[i] = compileItem(b, it)
	}
	for i := 0; i < len(frags)-1; i++ {
		b.AddEdge(frags[i].End, Epsilon, frags[i+1].Start)
	}
	return Fragment{Start: frags[0].Start, End: frags[len(frags)-1].End}
}

// compileItemChoice builds (a|b|c)-style pipe alternation: same wiring
// shape as compileUnitChoice, but over full sub-items (each may itself be
// a multi-byte concatenation with its own quantifiers).
func compileItemChoice(b *Builder, items []*ast.Item) Fragment {
	start := b.NewState()
	end := b.NewState()
	for _, it := range items {
		frag := compileItem(b, it)
		b.AddEdge(start, Epsilon, frag.Start)
		b.AddEdge(frag.End, Epsilon, end)
	}
	return Fragment{Start: start, End: end}
}

// applyQuantifier wires Optional/Plus/Star onto an already-built fragment,
// per the canonical Thompson variants in spec.md section 4.2. One is a
// no-op: the fragment is used exactly as built.
func applyQuantifier(b *Builder, f Fragment, q ast.Quantifier) Fragment {
	switch q {
	case ast.Optional:
		b.AddEdge(f.Start, Epsilon, f.End)
	case ast.Plus:
		b.AddEdge(f.End, Epsilon, f.Start)
	case ast.Star:
		b.AddEdge(f.Start, Epsilon, f.End)
		b.AddEdge(f.End, Epsilon, f.Start)
	}
	return f
}
