package ast

// Parse compiles a pattern string into its AST. The returned Item's top
// level unit is always an ItemList with Quant One, per spec.md section 4.1.
//
// Grammar (recursive descent, single-pass, one-byte lookahead except for
// class ranges, which look two bytes ahead):
//
//	pattern    := item*
//	item       := atom quantifier?
//	atom       := '[' class ']' | '(' alt ')' | '\' escape | '.' | literal
//	alt        := pattern ('|' pattern)*
//	class      := '^'? '-'? classItem*
//	classItem  := '\' classEscape | a-z range? | A-Z range? | 0-9 range? | literal
//	escape     := 'd' -> Range('0','9'); any other c -> Char(c)
//	quantifier := '?' | '+' | '*'
func Parse(pattern string) (*Item, error) {
	p := &parser{pattern: pattern}
	items, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.pattern) {
		// parseConcat stopped at a stray, unmatched ')' or at a '|'
		// outside any group: alternation is only parsed inside parentheses
		// (parseAlt), so both are rejected here.
		return nil, p.errorAt(UnexpectedEnd)
	}
	return &Item{Kind: ItemList, Quant: One, Items: items}, nil
}

type parser struct {
	pattern string
	pos     int
}

func (p *parser) errorAt(kind ErrorKind) *ParseError {
	return &ParseError{Kind: kind, Pattern: p.pattern, Offset: p.pos}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.pattern)
}

func (p *parser) peek() byte {
	return p.pattern[p.pos]
}

// parseConcat parses item* until it hits '|', ')', or end of input. It does
// not consume the stopping byte.
func (p *parser) parseConcat() ([]*Item, error) {
	var items []*Item
	for !p.eof() && p.peek() != '|' && p.peek() != ')' {
		it, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// parseAlt parses pattern ('|' pattern)* and folds the result down to a
// single Item: a plain ItemList when there was no '|', an ItemChoice over
// one ItemList branch per alternative otherwise.
func (p *parser) parseAlt() (*Item, error) {
	first, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	branches := [][]*Item{first}
	for !p.eof() && p.peek() == '|' {
		p.pos++
		branch, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}
	if len(branches) == 1 {
		return &Item{Kind: ItemList, Quant: One, Items: branches[0]}, nil
	}
	choices := make([]*Item, len(branches))
	for i, b := range branches {
		choices[i] = &Item{Kind: ItemList, Quant: One, Items: b}
	}
	return &Item{Kind: ItemChoice, Quant: One, Items: choices}, nil
}

func (p *parser) parseItem() (*Item, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	atom.Quant = p.parseQuantifier()
	return atom, nil
}

func (p *parser) parseQuantifier() Quantifier {
	if p.eof() {
		return One
	}
	switch p.peek() {
	case '?':
		p.pos++
		return Optional
	case '+':
		p.pos++
		return Plus
	case '*':
		p.pos++
		return Star
	default:
		return One
	}
}

func (p *parser) parseAtom() (*Item, error) {
	c := p.peek()
	switch c {
	case '[':
		p.pos++
		return p.parseClass()
	case '(':
		p.pos++
		inner, err := p.parseAlt()
		if err != nil {
			return nil, err
		}
		if p.eof() || p.peek() != ')' {
			return nil, p.errorAt(UnexpectedEnd)
		}
		p.pos++
		return inner, nil
	case '\\':
		p.pos++
		return p.parseEscape()
	case '.':
		p.pos++
		return &Item{Kind: NotChar, Byte: '\n', Quant: One}, nil
	default:
		p.pos++
		return &Item{Kind: Char, Byte: c, Quant: One}, nil
	}
}

// parseEscape handles the escape grammar both inside and outside classes;
// the mapping is identical in both places ('d' -> digit range, everything
// else -> itself), so there is a single implementation.
func (p *parser) parseEscape() (*Item, error) {
	if p.eof() {
		return nil, p.errorAt(InvalidEscape)
	}
	c := p.peek()
	p.pos++
	if c == 'd' {
		return &Item{Kind: CharRange, Lo: '0', Hi: '9', Quant: One}, nil
	}
	return &Item{Kind: Char, Byte: c, Quant: One}, nil
}

// parseClass parses the body of a bracket expression up to and including
// the closing ']'. p.pos is positioned just past the opening '['.
func (p *parser) parseClass() (*Item, error) {
	negate := false
	if !p.eof() && p.peek() == '^' {
		negate = true
		p.pos++
	}

	var units []*Item
	atStart := true
	for !p.eof() && p.peek() != ']' {
		// A '-' immediately after '[' or '[^' is a literal hyphen, not the
		// start of a range.
		if atStart && p.peek() == '-' {
			units = append(units, &Item{Kind: Char, Byte: '-', Quant: One})
			p.pos++
			atStart = false
			continue
		}
		atStart = false

		c := p.peek()
		if c == '\\' {
			p.pos++
			u, err := p.parseEscape()
			if err != nil {
				return nil, err
			}
			units = append(units, u)
			continue
		}

		if (c == 'a' || c == 'A' || c == '0') && p.pos+1 < len(p.pattern) && p.pattern[p.pos+1] == '-' {
			want := byte('z')
			if c == 'A' {
				want = 'Z'
			} else if c == '0' {
				want = '9'
			}
			if p.pos+2 >= len(p.pattern) {
				return nil, p.errorAt(UnexpectedEnd)
			}
			hi := p.pattern[p.pos+2]
			if hi != want {
				return nil, p.errorAt(InvalidRange)
			}
			units = append(units, &Item{Kind: CharRange, Lo: c, Hi: hi, Quant: One})
			p.pos += 3
			continue
		}

		units = append(units, &Item{Kind: Char, Byte: c, Quant: One})
		p.pos++
	}
	if p.eof() {
		return nil, p.errorAt(UnexpectedEnd)
	}
	p.pos++ // consume ']'

	kind := Choice
	if negate {
		kind = NotUnits
	}
	return &Item{Kind: kind, Units: units, Quant: One}, nil
}
