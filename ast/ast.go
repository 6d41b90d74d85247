// Package ast defines the pattern abstract syntax tree and the recursive
// descent parser that produces it.
//
// The parser's output is a contract the later compilation stages (package
// nfa, then package table) consume: a tree of Item nodes rooted at a single
// concatenation whose quantifier is always One. Nothing downstream
// re-validates pattern syntax; a malformed pattern is rejected here or not
// at all.
package ast

import "fmt"

// Kind identifies the shape of an Item's unit.
type Kind uint8

const (
	// Char matches exactly one byte.
	Char Kind = iota
	// CharRange matches one byte within an inclusive [Lo, Hi] range.
	CharRange
	// NotChar matches any byte except Byte. Produced by '.'.
	NotChar
	// NotUnits matches any byte that matches none of Units. Produced by [^...].
	NotUnits
	// Choice matches any one of Units. Produced by [...] (bracket alternation).
	Choice
	// ItemList is a concatenation of Items, in order.
	ItemList
	// ItemChoice is a pipe-alternation over Items.
	ItemChoice
)

func (k Kind) String() string {
	switch k {
	case Char:
		return "Char"
	case CharRange:
		return "CharRange"
	case NotChar:
		return "NotChar"
	case NotUnits:
		return "NotUnits"
	case Choice:
		return "Choice"
	case ItemList:
		return "ItemList"
	case ItemChoice:
		return "ItemChoice"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Quantifier is applied to an Item as a whole (the atom it was parsed from).
type Quantifier uint8

const (
	// One means exactly once (no quantifier suffix was present).
	One Quantifier = iota
	// Optional means zero or one ('?').
	Optional
	// Plus means one or more ('+').
	Plus
	// Star means zero or more ('*').
	Star
)

func (q Quantifier) String() string {
	switch q {
	case Optional:
		return "?"
	case Plus:
		return "+"
	case Star:
		return "*"
	default:
		return ""
	}
}

// Item is one node of the pattern AST: a unit paired with a quantifier.
//
// Which fields are populated depends on Kind:
//   - Char, NotChar: Byte
//   - CharRange: Lo, Hi
//   - NotUnits, Choice: Units (each a Char or CharRange item, Quant always One)
//   - ItemList, ItemChoice: Items
type Item struct {
	Kind  Kind
	Quant Quantifier

	Byte   byte // Char, NotChar
	Lo, Hi byte // CharRange

	Units []*Item // NotUnits, Choice: flat list of simple (Char/CharRange) items
	Items []*Item // ItemList, ItemChoice
}

// String renders the item back to pattern syntax. Round-tripping holds for
// patterns already in canonical form; otherwise the output is normalized:
// \d inside or outside a class is always printed back as the range 0-9,
// since the parser discards the distinction immediately on parse (outside
// a class, 0-9 does not parse back as a range); parentheses around an
// unquantified group without '|' are dropped; and metacharacters inside a
// class are printed escaped.
func (it *Item) String() string {
	var s string
	switch it.Kind {
	case Char:
		s = escapeLiteral(it.Byte)
	case CharRange:
		s = fmt.Sprintf("%c-%c", it.Lo, it.Hi)
	case NotChar:
		if it.Byte == '\n' {
			s = "."
		} else {
			s = "[^" + escapeLiteral(it.Byte) + "]"
		}
	case NotUnits:
		s = "[^" + unitsString(it.Units) + "]"
	case Choice:
		s = "[" + unitsString(it.Units) + "]"
	case ItemList:
		var inner string
		for _, c := range it.Items {
			inner += c.String()
		}
		// A quantified concatenation needs explicit grouping to round-trip
		// correctly (e.g. (ab)+ must not print as ab+, which means something
		// else). An unquantified one is semantically identical concatenated
		// flat or parenthesized, so the redundant parens are dropped.
		if it.Quant != One {
			s = "(" + inner + ")"
		} else {
			s = inner
		}
	case ItemChoice:
		for i, c := range it.Items {
			if i > 0 {
				s += "|"
			}
			s += c.String()
		}
		s = "(" + s + ")"
	}
	return s + it.Quant.String()
}

func unitsString(units []*Item) string {
	var s string
	for _, u := range units {
		switch u.Kind {
		case Char:
			s += escapeLiteral(u.Byte)
		case CharRange:
			s += fmt.Sprintf("%c-%c", u.Lo, u.Hi)
		}
	}
	return s
}

// metaChars are the bytes that must be escaped to round-trip as a literal
// outside a character class.
const metaChars = `.[]()|?+*\`

func escapeLiteral(b byte) string {
	for i := 0; i < len(metaChars); i++ {
		if metaChars[i] == b {
			return `\` + string(b)
		}
	}
	return string(b)
}
