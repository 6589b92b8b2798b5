package lexer

import (
	"testing"

	"github.com/aka-chestnut/sql-formatter/pkg/dialects/postgresql"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
	"github.com/aka-chestnut/sql-formatter/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func disambiguated(t *testing.T, input string) []token.Token {
	t.Helper()
	return Disambiguate(Tokenize(input, standard.SQL))
}

func TestDisambiguate_ReservedNearPropertyAccess(t *testing.T) {
	t.Run("after dot", func(t *testing.T) {
		tokens := disambiguated(t, "t.select")
		assert.Equal(t, token.IDENT, tokens[2].Type)
		assert.Equal(t, "select", tokens[2].Value)
	})
	t.Run("before dot", func(t *testing.T) {
		tokens := disambiguated(t, "select.col")
		assert.Equal(t, token.IDENT, tokens[0].Type)
	})
	t.Run("comment between is ignored", func(t *testing.T) {
		tokens := disambiguated(t, "t./* c */select")
		assert.Equal(t, token.IDENT, tokens[3].Type)
	})
}

func TestDisambiguate_FunctionName(t *testing.T) {
	t.Run("followed by paren stays function", func(t *testing.T) {
		tokens := disambiguated(t, "count(1)")
		assert.Equal(t, token.RESERVED_FUNCTION_NAME, tokens[0].Type)
	})
	t.Run("without paren becomes identifier", func(t *testing.T) {
		tokens := disambiguated(t, "select count from t")
		assert.Equal(t, token.IDENT, tokens[1].Type)
	})
}

func TestDisambiguate_DataTypes(t *testing.T) {
	t.Run("parameterized", func(t *testing.T) {
		tokens := disambiguated(t, "varchar(100)")
		assert.Equal(t, token.RESERVED_PARAMETERIZED_DATA_TYPE, tokens[0].Type)
	})
	t.Run("array keyword", func(t *testing.T) {
		tokens := Disambiguate(Tokenize("int[]", postgresql.PostgreSQL))
		assert.Equal(t, token.ARRAY_KEYWORD, tokens[0].Type)
	})
	t.Run("plain stays plain", func(t *testing.T) {
		tokens := disambiguated(t, "cast(a as int)")
		assert.Equal(t, token.RESERVED_DATA_TYPE, tokens[4].Type)
	})
}

func TestDisambiguate_ArrayIdentifier(t *testing.T) {
	tokens := disambiguated(t, "arr[1]")
	assert.Equal(t, token.ARRAY_IDENT, tokens[0].Type)
}

func TestDisambiguate_PureAndSameLength(t *testing.T) {
	input := Tokenize("select count from t.select", standard.SQL)
	before := make([]token.Token, len(input))
	copy(before, input)

	out := Disambiguate(input)
	require.Len(t, out, len(input))
	assert.Equal(t, before, input, "input slice must not be modified")
}
