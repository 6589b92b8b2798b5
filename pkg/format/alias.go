package format

import (
	"strings"

	"github.com/aka-chestnut/sql-formatter/pkg/token"
)

// aliasEngine decides where AS keywords are inserted or stripped. It is a set
// of pure predicates over the raw token stream; the formatter owns emission.
type aliasEngine struct {
	mode AliasAs
}

// expressionEnd reports whether the token can end a select-list element or
// table expression: an identifier, a literal, a star, or a closed call.
func expressionEnd(tok token.Token) bool {
	switch tok.Type {
	case token.IDENT, token.QUOTED_IDENT, token.ARRAY_IDENT,
		token.NUMBER, token.STRING, token.BLOCK_END:
		return true
	case token.OPERATOR:
		return tok.Value == "*"
	}
	return false
}

func aliasCandidate(tok token.Token) bool {
	switch tok.Type {
	case token.IDENT, token.QUOTED_IDENT:
		return true
	}
	return false
}

// shouldAddBefore reports whether a synthesized AS belongs in front of cur:
// cur is a plain identifier written directly after a finished expression,
// i.e. an implicit alias.
func (a *aliasEngine) shouldAddBefore(prev, cur token.Token) bool {
	return a.mode == AliasAlways && aliasCandidate(cur) && expressionEnd(prev)
}

// shouldAddAfter reports whether a synthesized AS belongs right after cur:
// the implicit alias that follows is a string literal, which cannot be
// detected from its own side.
func (a *aliasEngine) shouldAddAfter(cur, next token.Token) bool {
	return a.mode == AliasAlways && expressionEnd(cur) &&
		cur.Type != token.STRING && next.Type == token.STRING
}

// shouldRemove reports whether an explicit AS between prev and next is an
// alias marker that the never policy strips. AS in other positions (such as
// a CAST target) stays.
func (a *aliasEngine) shouldRemove(prev, next token.Token) bool {
	if a.mode != AliasNever {
		return false
	}
	if !expressionEnd(prev) {
		return false
	}
	switch next.Type {
	case token.IDENT, token.QUOTED_IDENT, token.STRING:
		return true
	}
	return false
}

// asToken synthesizes the AS keyword, matching the statement's observed
// keyword style: uppercase when the majority of reserved tokens are written
// uppercase.
func asToken(statement []token.Token) token.Token {
	upper, lower := 0, 0
	for _, tok := range statement {
		if !tok.IsReserved() {
			continue
		}
		switch {
		case tok.Text == strings.ToUpper(tok.Text):
			upper++
		case tok.Text == strings.ToLower(tok.Text):
			lower++
		}
	}
	text := "AS"
	if lower > upper {
		text = "as"
	}
	return token.Token{Type: token.RESERVED_KEYWORD, Text: text, Value: text}
}
