package format

import (
	"testing"

	"github.com/aka-chestnut/sql-formatter/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeholder(text, key string) token.Token {
	return token.Token{Type: token.PLACEHOLDER, Text: text, Value: key}
}

func TestParams_NilLeavesTokenAlone(t *testing.T) {
	var p *Params
	got, err := p.resolve(placeholder("?", ""))
	require.NoError(t, err)
	assert.Equal(t, "?", got)
}

func TestParams_PositionalConsumesInOrder(t *testing.T) {
	p := PositionalParams("1", "2")

	got, err := p.resolve(placeholder("?", ""))
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	got, err = p.resolve(placeholder("?", ""))
	require.NoError(t, err)
	assert.Equal(t, "2", got)

	_, err = p.resolve(placeholder("?", ""))
	var perr *PlaceholderError
	require.ErrorAs(t, err, &perr)
}

func TestParams_NumberedIndexesPositional(t *testing.T) {
	p := PositionalParams("a", "b", "c")

	got, err := p.resolve(placeholder("$3", "3"))
	require.NoError(t, err)
	assert.Equal(t, "c", got)

	_, err = p.resolve(placeholder("$4", "4"))
	assert.Error(t, err)
}

func TestParams_Named(t *testing.T) {
	p := NamedParams(map[string]string{"name": "'x'"})

	got, err := p.resolve(placeholder(":name", "name"))
	require.NoError(t, err)
	assert.Equal(t, "'x'", got)

	_, err = p.resolve(placeholder(":other", "other"))
	var perr *PlaceholderError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Error(), ":other")
}

func TestParams_Reset(t *testing.T) {
	p := PositionalParams("only")
	_, err := p.resolve(placeholder("?", ""))
	require.NoError(t, err)

	p.reset()
	got, err := p.resolve(placeholder("?", ""))
	require.NoError(t, err)
	assert.Equal(t, "only", got)
}
