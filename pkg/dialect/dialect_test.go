package dialect

import (
	"testing"

	"github.com/aka-chestnut/sql-formatter/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchReserved(t *testing.T) {
	d := NewDialect("test").
		Commands("SELECT", "GROUP BY", "INSERT OVERWRITE DIRECTORY").
		BinaryCommands("LEFT OUTER JOIN").
		Keywords("AS").
		Build()

	tests := []struct {
		name     string
		words    []string
		wantLen  int
		wantType token.TokenType
	}{
		{"single word", []string{"SELECT"}, 1, token.RESERVED_COMMAND},
		{"two words", []string{"GROUP", "BY"}, 2, token.RESERVED_COMMAND},
		{"three words", []string{"INSERT", "OVERWRITE", "DIRECTORY"}, 3, token.RESERVED_COMMAND},
		{"prefix only is no match", []string{"GROUP", "X"}, 0, token.EOF},
		{"longest match wins", []string{"LEFT", "OUTER", "JOIN", "T"}, 3, token.RESERVED_BINARY_COMMAND},
		{"unknown word", []string{"FOO"}, 0, token.EOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, typ := d.MatchReserved(tt.words)
			assert.Equal(t, tt.wantLen, n)
			assert.Equal(t, tt.wantType, typ)
		})
	}
}

func TestMatchReserved_CategoryPriority(t *testing.T) {
	// The same phrase claimed by two sets resolves to the higher-priority
	// category: commands beat keywords.
	d := NewDialect("test").
		Keywords("VALUES").
		Commands("VALUES").
		Build()

	n, typ := d.MatchReserved([]string{"VALUES"})
	assert.Equal(t, 1, n)
	assert.Equal(t, token.RESERVED_COMMAND, typ)
}

func TestHasReservedPrefix(t *testing.T) {
	d := NewDialect("test").Commands("GROUP BY").Build()
	assert.True(t, d.HasReservedPrefix("GROUP"))
	assert.False(t, d.HasReservedPrefix("BY"))
}

func TestBuilder_Defaults(t *testing.T) {
	d := NewDialect("test").Build()

	assert.Equal(t, []string{"--"}, d.LineCommentPrefixes())
	assert.True(t, d.HasStringStyle(SingleQuoteString))
	assert.True(t, d.HasIdentStyle(DoubleQuoteIdent))
	require.Len(t, d.Placeholders(), 1)
	assert.Equal(t, "?", d.Placeholders()[0].Prefix)
}

func TestBuilder_OperatorsSortedLongestFirst(t *testing.T) {
	d := NewDialect("test").Operators("::", "->>", "->", "<=").Build()
	ops := d.Operators()
	for i := 1; i < len(ops); i++ {
		assert.GreaterOrEqual(t, len(ops[i-1]), len(ops[i]))
	}
}

func TestRegistry(t *testing.T) {
	d := NewDialect("registrytest").Build()
	Register(d)
	RegisterAlias("rtest", "registrytest")

	got, ok := Get("registrytest")
	require.True(t, ok)
	assert.Same(t, d, got)

	got, ok = Get("RTEST")
	require.True(t, ok)
	assert.Same(t, d, got)

	_, ok = Get("nope")
	assert.False(t, ok)

	assert.Contains(t, List(), "registrytest")
	assert.NotContains(t, List(), "rtest")
}
