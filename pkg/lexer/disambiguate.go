package lexer

import "github.com/aka-chestnut/sql-formatter/pkg/token"

// Disambiguate rewrites token categories based on the nearest non-comment
// neighbor on each side. It is pure: the input slice is not modified and the
// result has the same length. Passes run in order over the whole stream, so
// earlier rewrites are visible to later ones.
func Disambiguate(tokens []token.Token) []token.Token {
	out := make([]token.Token, len(tokens))
	copy(out, tokens)

	demoteReservedNearPropertyAccess(out)
	demoteFunctionNames(out)
	promoteParameterizedDataTypes(out)
	promoteArrayIdentifiers(out)
	promoteArrayKeywords(out)

	return out
}

// demoteReservedNearPropertyAccess turns any reserved token adjacent to a "."
// into an identifier: in tbl.order or order.col, ORDER is a name, not a keyword.
func demoteReservedNearPropertyAccess(tokens []token.Token) {
	for i := range tokens {
		if !tokens[i].IsReserved() {
			continue
		}
		prev, prevOK := neighbor(tokens, i, -1)
		next, nextOK := neighbor(tokens, i, +1)
		if (prevOK && prev.Type == token.PROPERTY_ACCESS_OPERATOR) ||
			(nextOK && next.Type == token.PROPERTY_ACCESS_OPERATOR) {
			tokens[i].Type = token.IDENT
			tokens[i].Value = tokens[i].Text
		}
	}
}

// demoteFunctionNames turns a reserved function name not followed by "(" into
// an identifier.
func demoteFunctionNames(tokens []token.Token) {
	for i := range tokens {
		if tokens[i].Type != token.RESERVED_FUNCTION_NAME {
			continue
		}
		if !followedBy(tokens, i, "(") {
			tokens[i].Type = token.IDENT
			tokens[i].Value = tokens[i].Text
		}
	}
}

// promoteParameterizedDataTypes marks data types directly followed by "(",
// as in VARCHAR(100) or DECIMAL(10, 2).
func promoteParameterizedDataTypes(tokens []token.Token) {
	for i := range tokens {
		if tokens[i].Type == token.RESERVED_DATA_TYPE && followedBy(tokens, i, "(") {
			tokens[i].Type = token.RESERVED_PARAMETERIZED_DATA_TYPE
		}
	}
}

// promoteArrayIdentifiers marks identifiers directly followed by "[".
func promoteArrayIdentifiers(tokens []token.Token) {
	for i := range tokens {
		if tokens[i].Type == token.IDENT && followedBy(tokens, i, "[") {
			tokens[i].Type = token.ARRAY_IDENT
		}
	}
}

// promoteArrayKeywords marks data types directly followed by "[", as in
// the ARRAY of INT[].
func promoteArrayKeywords(tokens []token.Token) {
	for i := range tokens {
		if tokens[i].Type == token.RESERVED_DATA_TYPE && followedBy(tokens, i, "[") {
			tokens[i].Type = token.ARRAY_KEYWORD
		}
	}
}

// neighbor returns the nearest non-comment token in the given direction.
func neighbor(tokens []token.Token, i, dir int) (token.Token, bool) {
	for j := i + dir; j >= 0 && j < len(tokens); j += dir {
		if !tokens[j].IsComment() {
			return tokens[j], true
		}
	}
	return token.Token{}, false
}

// followedBy reports whether the nearest non-comment successor is a block
// start with the given text.
func followedBy(tokens []token.Token, i int, open string) bool {
	next, ok := neighbor(tokens, i, +1)
	return ok && next.Type == token.BLOCK_START && next.Text == open
}
