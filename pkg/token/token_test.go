package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		typ  TokenType
		want string
	}{
		{EOF, "EOF"},
		{RESERVED_COMMAND, "RESERVED_COMMAND"},
		{QUOTED_IDENT, "QUOTED_IDENT"},
		{BLOCK_COMMENT, "BLOCK_COMMENT"},
		{TokenType(999), "TOKEN(999)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, RESERVED_COMMAND.IsReserved())
	assert.True(t, RESERVED_CASE_END.IsReserved())
	assert.False(t, IDENT.IsReserved())
	assert.False(t, EOF.IsReserved())

	assert.True(t, LINE_COMMENT.IsComment())
	assert.True(t, BLOCK_COMMENT.IsComment())
	assert.False(t, STRING.IsComment())
}

func TestTokenIs(t *testing.T) {
	semi := Token{Type: OPERATOR, Text: ";", Value: ";"}
	assert.True(t, semi.Is(";"))
	assert.False(t, semi.Is(","))

	ident := Token{Type: IDENT, Text: ";", Value: ";"}
	assert.False(t, ident.Is(";"))
}
