// Package token defines the lexical token types for SQL formatting.
//
// Token categories are a closed sum: the lexer assigns a preliminary category
// and the disambiguator rewrites a handful of them based on neighboring tokens.
package token

import "fmt"

// TokenType represents the category of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

//nolint:revive // TOKEN_* style ALL_CAPS names follow SQL token conventions
const (
	// Special tokens
	EOF TokenType = iota

	// Reserved word categories
	RESERVED_COMMAND                 // SELECT, FROM, WHERE, GROUP BY, ...
	RESERVED_BINARY_COMMAND          // UNION, INTERSECT, LEFT JOIN, ...
	RESERVED_DEPENDENT_CLAUSE        // WHEN, ELSE
	RESERVED_JOIN_CONDITION          // ON, USING
	RESERVED_LOGICAL_OPERATOR        // AND, OR, XOR
	RESERVED_KEYWORD                 // AS, DISTINCT, IN, ...
	RESERVED_FUNCTION_NAME           // COUNT, SUM, COALESCE, ...
	RESERVED_DATA_TYPE               // INT, VARCHAR, DECIMAL, ...
	RESERVED_PARAMETERIZED_DATA_TYPE // VARCHAR(...), DECIMAL(...)
	RESERVED_CASE_START              // CASE
	RESERVED_CASE_END                // END

	// Identifiers and literals
	IDENT        // column, table_1
	ARRAY_IDENT  // identifier immediately followed by [
	ARRAY_KEYWORD
	QUOTED_IDENT // "col", `col`, [col]
	STRING       // 'hello', X'ff', $$body$$
	VARIABLE     // @name, @@session
	PLACEHOLDER  // ?, $1, :name, @param
	NUMBER       // 123, 45.67, 1e10, 0x1F

	// Punctuation
	OPERATOR                 // +, -, ::, <=, and single-char fallback
	PROPERTY_ACCESS_OPERATOR // .
	BLOCK_START              // ( [ {
	BLOCK_END                // ) ] }

	// Comments
	LINE_COMMENT  // -- ... or # ...
	BLOCK_COMMENT // /* ... */
)

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:                              "EOF",
	RESERVED_COMMAND:                 "RESERVED_COMMAND",
	RESERVED_BINARY_COMMAND:          "RESERVED_BINARY_COMMAND",
	RESERVED_DEPENDENT_CLAUSE:        "RESERVED_DEPENDENT_CLAUSE",
	RESERVED_JOIN_CONDITION:          "RESERVED_JOIN_CONDITION",
	RESERVED_LOGICAL_OPERATOR:        "RESERVED_LOGICAL_OPERATOR",
	RESERVED_KEYWORD:                 "RESERVED_KEYWORD",
	RESERVED_FUNCTION_NAME:           "RESERVED_FUNCTION_NAME",
	RESERVED_DATA_TYPE:               "RESERVED_DATA_TYPE",
	RESERVED_PARAMETERIZED_DATA_TYPE: "RESERVED_PARAMETERIZED_DATA_TYPE",
	RESERVED_CASE_START:              "RESERVED_CASE_START",
	RESERVED_CASE_END:                "RESERVED_CASE_END",
	IDENT:                            "IDENT",
	ARRAY_IDENT:                      "ARRAY_IDENT",
	ARRAY_KEYWORD:                    "ARRAY_KEYWORD",
	QUOTED_IDENT:                     "QUOTED_IDENT",
	STRING:                           "STRING",
	VARIABLE:                         "VARIABLE",
	PLACEHOLDER:                      "PLACEHOLDER",
	NUMBER:                           "NUMBER",
	OPERATOR:                         "OPERATOR",
	PROPERTY_ACCESS_OPERATOR:         "PROPERTY_ACCESS_OPERATOR",
	BLOCK_START:                      "BLOCK_START",
	BLOCK_END:                        "BLOCK_END",
	LINE_COMMENT:                     "LINE_COMMENT",
	BLOCK_COMMENT:                    "BLOCK_COMMENT",
}

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// IsReserved returns true for every RESERVED_* category.
func (t TokenType) IsReserved() bool {
	return t >= RESERVED_COMMAND && t <= RESERVED_CASE_END
}

// IsComment returns true for line and block comments.
func (t TokenType) IsComment() bool {
	return t == LINE_COMMENT || t == BLOCK_COMMENT
}

// Token represents a lexical token with its source text intact.
//
// Text is the exact source slice; Value is the canonical form used for
// comparisons and output (reserved words with internal whitespace collapsed,
// quoted identifiers stripped of their wrappers). Concatenating
// WhitespaceBefore + Text over a token stream reproduces the input.
type Token struct {
	Type             TokenType
	Text             string
	Value            string
	WhitespaceBefore string
	Start            int // byte offset of Text in the source
}

// IsReserved returns true if the token carries a RESERVED_* category.
func (t Token) IsReserved() bool {
	return t.Type.IsReserved()
}

// IsComment returns true for line and block comment tokens.
func (t Token) IsComment() bool {
	return t.Type.IsComment()
}

// Is reports whether the token is an operator with the given text.
func (t Token) Is(op string) bool {
	return t.Type == OPERATOR && t.Value == op
}
