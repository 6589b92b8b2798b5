// Package format renders SQL query strings with configurable whitespace,
// indentation and casing rules. It preserves the lexical content of the
// query exactly; only the whitespace between tokens is rewritten.
package format

import (
	"strings"

	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/aka-chestnut/sql-formatter/pkg/lexer"

	// Register the built-in dialects.
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects"
)

// maxQueryLength caps input size; larger queries are rejected rather than
// formatted.
const maxQueryLength = 1 << 20

// Format formats a SQL query. A nil opts formats with DefaultOptions.
// Statements are formatted independently and joined with the configured
// number of blank lines.
func Format(query string, opts *Options) (string, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	if len(query) > maxQueryLength {
		return "", &InputError{Message: "query exceeds maximum length"}
	}

	d, _ := dialect.Get(cfg.Language)
	cfg.Params.reset()

	tokens := lexer.Disambiguate(lexer.Tokenize(query, d))
	statements := lexer.Segment(tokens)

	formatted := make([]string, 0, len(statements))
	for _, stmt := range statements {
		out, err := newFormatter(&cfg, stmt).format()
		if err != nil {
			return "", err
		}
		// Only trailing whitespace is trimmed: a right-aligned tabular
		// statement begins with the padding of its first command.
		formatted = append(formatted, strings.TrimRight(postprocess(out, &cfg), " \t\r\n"))
	}
	return strings.Join(formatted, strings.Repeat("\n", cfg.LinesBetweenQueries+1)), nil
}

// postprocess runs the line-oriented sweeps the state machine stays
// oblivious to: tabular column padding, alias alignment, comma placement.
func postprocess(s string, cfg *Options) string {
	if cfg.IndentStyle != IndentStandard {
		s = applyTabular(s, cfg.IndentStyle)
		if cfg.TabulateAlias {
			s = alignAliases(s)
		}
	}
	if cfg.CommaPosition != CommaAfter {
		s = applyCommaPosition(s, cfg.CommaPosition)
	}
	return s
}
