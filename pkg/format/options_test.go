package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	opts := DefaultOptions()
	assert.NoError(t, opts.Validate())
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		option string
	}{
		{"unknown language", func(o *Options) { o.Language = "dbase" }, "language"},
		{"zero tab width", func(o *Options) { o.TabWidth = 0 }, "tabWidth"},
		{"negative tab width", func(o *Options) { o.TabWidth = -2 }, "tabWidth"},
		{"bad keyword case", func(o *Options) { o.KeywordCase = "shouty" }, "keywordCase"},
		{"bad identifier case", func(o *Options) { o.IdentifierCase = "x" }, "identifierCase"},
		{"bad indent style", func(o *Options) { o.IndentStyle = "tabularCenter" }, "indentStyle"},
		{"bad logical operator newline", func(o *Options) { o.LogicalOperatorNewline = "around" }, "logicalOperatorNewline"},
		{"negative expression width", func(o *Options) { o.ExpressionWidth = -1 }, "expressionWidth"},
		{"negative lines between queries", func(o *Options) { o.LinesBetweenQueries = -1 }, "linesBetweenQueries"},
		{"bad comma position", func(o *Options) { o.CommaPosition = "nowhere" }, "commaPosition"},
		{"bad multiline lists", func(o *Options) { o.MultilineLists = "sometimes" }, "multilineLists"},
		{"zero item count", func(o *Options) { o.MultilineLists = "0" }, "multilineLists"},
		{"negative item count", func(o *Options) { o.MultilineLists = "-3" }, "multilineLists"},
		{"bad alias policy", func(o *Options) { o.AliasAs = "maybe" }, "aliasAs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.option, cerr.Option)
		})
	}
}

func TestMultilineLists_ItemCount(t *testing.T) {
	n, ok := MultilineItemCount(4).ItemCount()
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	_, ok = MultilineAlways.ItemCount()
	assert.False(t, ok)

	_, ok = MultilineLists("0").ItemCount()
	assert.False(t, ok)
}

func TestValidate_DialectAlias(t *testing.T) {
	opts := DefaultOptions()
	opts.Language = "tsql"
	assert.NoError(t, opts.Validate())
}
