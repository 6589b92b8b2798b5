package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyTabular(t *testing.T) {
	marked := "\x00SELECT\x00 a\n\x00FROM\x00 t"

	t.Run("left", func(t *testing.T) {
		assert.Equal(t, "SELECT    a\nFROM      t", applyTabular(marked, IndentTabularLeft))
	})
	t.Run("right", func(t *testing.T) {
		assert.Equal(t, "   SELECT a\n     FROM t", applyTabular(marked, IndentTabularRight))
	})
	t.Run("wide token left alone", func(t *testing.T) {
		got := applyTabular("\x00INSERT INTO\x00 t", IndentTabularLeft)
		assert.Equal(t, "INSERT INTO t", got)
	})
	t.Run("no markers is a no-op", func(t *testing.T) {
		assert.Equal(t, "plain", applyTabular("plain", IndentTabularLeft))
	})
}

func TestApplyCommaPosition(t *testing.T) {
	input := "SELECT\n  a,\n  b\nFROM\n  t"

	t.Run("before moves comma to next line", func(t *testing.T) {
		got := applyCommaPosition(input, CommaBefore)
		assert.Equal(t, "SELECT\n  a\n  , b\nFROM\n  t", got)
	})
	t.Run("tabular pads into a gutter", func(t *testing.T) {
		got := applyCommaPosition(input, CommaTabular)
		assert.Equal(t, "SELECT\n  a         ,\n  b\nFROM\n  t", got)
	})
	t.Run("trailing comma on last line stays", func(t *testing.T) {
		got := applyCommaPosition("a,", CommaBefore)
		assert.Equal(t, "a,", got)
	})
}

func TestAlignAliases(t *testing.T) {
	t.Run("pads to widest alias column", func(t *testing.T) {
		input := "  a AS x,\n  longer AS y"
		got := alignAliases(input)
		assert.Equal(t, "  a      AS x,\n  longer AS y", got)
	})
	t.Run("single alias line unchanged", func(t *testing.T) {
		input := "  a AS x\nFROM t"
		assert.Equal(t, input, alignAliases(input))
	})
	t.Run("groups are independent", func(t *testing.T) {
		input := "  a AS x,\n  bb AS y\nFROM\n  t AS u"
		got := alignAliases(input)
		assert.Equal(t, "  a  AS x,\n  bb AS y\nFROM\n  t AS u", got)
	})
}
