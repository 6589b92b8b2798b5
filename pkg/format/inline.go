package format

import "github.com/aka-chestnut/sql-formatter/pkg/token"

// inlineBlock decides whether a parenthesized group is rendered on one line.
// A block is inline when it is short enough and contains no clause keywords,
// no CASE and no block comments. Nested blocks inside an inline block are
// inline by construction, tracked with a depth counter.
type inlineBlock struct {
	level    int
	maxWidth int
}

func newInlineBlock(maxWidth int) *inlineBlock {
	return &inlineBlock{maxWidth: maxWidth}
}

// beginIfPossible is called at each BLOCK_START. It opens an inline block
// when the group starting at index fits, or tracks nesting when one is
// already open.
func (b *inlineBlock) beginIfPossible(tokens []token.Token, index int) {
	if b.level == 0 && b.isInlineBlock(tokens, index) {
		b.level = 1
	} else if b.level > 0 {
		b.level++
	} else {
		b.level = 0
	}
}

// end is called at each BLOCK_END while active.
func (b *inlineBlock) end() {
	if b.level > 0 {
		b.level--
	}
}

// isActive reports whether the formatter is inside an inline block.
func (b *inlineBlock) isActive() bool {
	return b.level > 0
}

// isInlineBlock looks ahead from the opening bracket to the matching close
// and checks the content and rendered width.
func (b *inlineBlock) isInlineBlock(tokens []token.Token, index int) bool {
	width := 0
	depth := 0
	for i := index; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok.Type {
		case token.BLOCK_START:
			depth++
		case token.BLOCK_END:
			depth--
			if depth == 0 {
				return width+len(tok.Value) <= b.maxWidth
			}
		case token.RESERVED_COMMAND, token.RESERVED_BINARY_COMMAND,
			token.RESERVED_CASE_START, token.BLOCK_COMMENT:
			return false
		case token.OPERATOR:
			if tok.Value == ";" {
				return false
			}
		}

		if i == index {
			width += len(tok.Value)
		} else {
			width += sepWidth(tokens[i-1], tok) + len(tok.Value)
		}
		if width > b.maxWidth {
			return false
		}
	}
	return false // unbalanced: no matching close
}

// sepWidth is the natural separation between two adjacent tokens on one
// line: a single space, except where tokens glue (after an opening bracket
// or a dot, and before a closing bracket, comma or dot). Commas keep their
// trailing space via the gap in front of the following token.
func sepWidth(prev, tok token.Token) int {
	switch {
	case tok.Type == token.BLOCK_END, tok.Is(","), tok.Type == token.PROPERTY_ACCESS_OPERATOR:
		return 0
	case prev.Type == token.BLOCK_START, prev.Type == token.PROPERTY_ACCESS_OPERATOR:
		return 0
	}
	return 1
}
