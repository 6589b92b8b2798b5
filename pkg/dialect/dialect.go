// Package dialect provides SQL dialect definitions for the formatter.
//
// A dialect bundles the reserved-word tables, operator list, quote styles and
// placeholder syntaxes the lexer is parameterized with. Concrete dialects are
// registered from pkg/dialects/*/ packages and looked up by tag.
//
// This package is pure Go with no database driver dependencies, so tools can
// import dialect data without pulling a connection stack.
package dialect

import (
	"sort"
	"strings"

	"github.com/aka-chestnut/sql-formatter/pkg/token"
)

// StringStyle enumerates the string-literal syntaxes a dialect can enable.
type StringStyle int

// String-literal styles.
const (
	// SingleQuoteString is '...' with doubled-quote escaping.
	SingleQuoteString StringStyle = iota
	// DoubleQuoteString is "..." used as a string (MySQL family).
	DoubleQuoteString
	// BacktickString is `...` used as a string.
	BacktickString
	// DollarString is $tag$...$tag$ (PostgreSQL family).
	DollarString
	// PrefixedString is a letter prefix glued to a quoted body: X'ff', B'01', N'text', E'\n'.
	PrefixedString
	// BraceString is {...} (DB2 escape sequences).
	BraceString
)

// IdentStyle enumerates quoted-identifier syntaxes.
type IdentStyle int

// Quoted-identifier styles.
const (
	// DoubleQuoteIdent is "..." (ANSI).
	DoubleQuoteIdent IdentStyle = iota
	// BacktickIdent is `...` (MySQL, BigQuery, Hive).
	BacktickIdent
	// BracketIdent is [...] (T-SQL).
	BracketIdent
)

// PlaceholderSpec describes one placeholder syntax a dialect accepts.
type PlaceholderSpec struct {
	Prefix   string // "?", "$", ":", "@"
	Bare     bool   // the prefix alone is a placeholder (?)
	Numbered bool   // prefix + digits (?1, $1)
	Named    bool   // prefix + identifier (:name, @name)
	Quoted   bool   // prefix + quoted identifier (:"name", @`name`)
}

// VariableSpec describes one variable syntax (@x, @@x, @"x").
type VariableSpec struct {
	Prefix string
	Quoted bool // allow a quoted body after the prefix
}

// Dialect is an immutable SQL dialect definition.
type Dialect struct {
	Name string

	reserved *trie // all reserved phrases, keyed by category priority

	operators           []string // longest-match order
	stringStyles        []StringStyle
	stringPrefixes      []string // letter prefixes for PrefixedString
	identStyles         []IdentStyle
	placeholders        []PlaceholderSpec
	variables           []VariableSpec
	lineCommentPrefixes []string
	specialWordChars    string // extra chars allowed inside words (e.g. "#@" for T-SQL)
}

// Operators returns the dialect operator list, longest first.
func (d *Dialect) Operators() []string {
	return d.operators
}

// StringStyles returns the enabled string-literal styles.
func (d *Dialect) StringStyles() []StringStyle {
	return d.stringStyles
}

// StringPrefixes returns the letter prefixes enabled for PrefixedString.
func (d *Dialect) StringPrefixes() []string {
	return d.stringPrefixes
}

// IdentStyles returns the enabled quoted-identifier styles.
func (d *Dialect) IdentStyles() []IdentStyle {
	return d.identStyles
}

// Placeholders returns the placeholder syntaxes for this dialect.
func (d *Dialect) Placeholders() []PlaceholderSpec {
	return d.placeholders
}

// Variables returns the variable syntaxes for this dialect.
func (d *Dialect) Variables() []VariableSpec {
	return d.variables
}

// LineCommentPrefixes returns the line-comment openers ("--" plus extras).
func (d *Dialect) LineCommentPrefixes() []string {
	return d.lineCommentPrefixes
}

// SpecialWordChars returns extra characters treated as word characters.
func (d *Dialect) SpecialWordChars() string {
	return d.specialWordChars
}

// HasStringStyle reports whether the style is enabled.
func (d *Dialect) HasStringStyle(s StringStyle) bool {
	for _, ss := range d.stringStyles {
		if ss == s {
			return true
		}
	}
	return false
}

// HasIdentStyle reports whether the quoted-identifier style is enabled.
func (d *Dialect) HasIdentStyle(s IdentStyle) bool {
	for _, is := range d.identStyles {
		if is == s {
			return true
		}
	}
	return false
}

// MatchReserved finds the longest reserved phrase starting with the given
// words. words must be uppercased; it returns the number of words consumed
// and the category, or (0, EOF) when nothing matches.
func (d *Dialect) MatchReserved(words []string) (int, token.TokenType) {
	return d.reserved.longestMatch(words)
}

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	d *Dialect
}

// NewDialect creates a dialect builder with ANSI-ish defaults: single-quoted
// strings, double-quoted identifiers, "--" line comments, "?" placeholders.
func NewDialect(name string) *Builder {
	return &Builder{
		d: &Dialect{
			Name:                name,
			reserved:            newTrie(),
			stringStyles:        []StringStyle{SingleQuoteString},
			identStyles:         []IdentStyle{DoubleQuoteIdent},
			placeholders:        []PlaceholderSpec{{Prefix: "?", Bare: true}},
			lineCommentPrefixes: []string{"--"},
		},
	}
}

// normalizePhrase uppercases and collapses internal whitespace.
func normalizePhrase(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}

func (b *Builder) insertAll(words []string, t token.TokenType) {
	for _, w := range words {
		b.d.reserved.insert(strings.Fields(normalizePhrase(w)), t)
	}
}

// Commands adds top-level clause keywords (SELECT, GROUP BY, ...).
func (b *Builder) Commands(words ...string) *Builder {
	b.insertAll(words, token.RESERVED_COMMAND)
	return b
}

// BinaryCommands adds keywords joining two query blocks (UNION, LEFT JOIN, ...).
func (b *Builder) BinaryCommands(words ...string) *Builder {
	b.insertAll(words, token.RESERVED_BINARY_COMMAND)
	return b
}

// DependentClauses adds sub-clause keywords (WHEN, ELSE).
func (b *Builder) DependentClauses(words ...string) *Builder {
	b.insertAll(words, token.RESERVED_DEPENDENT_CLAUSE)
	return b
}

// JoinConditions adds join-condition keywords (ON, USING).
func (b *Builder) JoinConditions(words ...string) *Builder {
	b.insertAll(words, token.RESERVED_JOIN_CONDITION)
	return b
}

// LogicalOperators adds logical operator keywords (AND, OR).
func (b *Builder) LogicalOperators(words ...string) *Builder {
	b.insertAll(words, token.RESERVED_LOGICAL_OPERATOR)
	return b
}

// Keywords adds plain reserved keywords.
func (b *Builder) Keywords(words ...string) *Builder {
	b.insertAll(words, token.RESERVED_KEYWORD)
	return b
}

// Functions adds reserved function names.
func (b *Builder) Functions(words ...string) *Builder {
	b.insertAll(words, token.RESERVED_FUNCTION_NAME)
	return b
}

// DataTypes adds reserved data type names.
func (b *Builder) DataTypes(words ...string) *Builder {
	b.insertAll(words, token.RESERVED_DATA_TYPE)
	return b
}

// Operators adds dialect operator strings (beyond single characters).
func (b *Builder) Operators(ops ...string) *Builder {
	b.d.operators = append(b.d.operators, ops...)
	// Longest match first
	sort.SliceStable(b.d.operators, func(i, j int) bool {
		return len(b.d.operators[i]) > len(b.d.operators[j])
	})
	return b
}

// Strings sets the enabled string-literal styles.
func (b *Builder) Strings(styles ...StringStyle) *Builder {
	b.d.stringStyles = styles
	return b
}

// StringPrefixes sets the letter prefixes for PrefixedString ("X", "B", "N", "E").
func (b *Builder) StringPrefixes(prefixes ...string) *Builder {
	b.d.stringPrefixes = prefixes
	return b
}

// Identifiers sets the enabled quoted-identifier styles.
func (b *Builder) Identifiers(styles ...IdentStyle) *Builder {
	b.d.identStyles = styles
	return b
}

// Placeholders sets the placeholder syntaxes.
func (b *Builder) Placeholders(specs ...PlaceholderSpec) *Builder {
	b.d.placeholders = specs
	return b
}

// Variables sets the variable syntaxes.
func (b *Builder) Variables(specs ...VariableSpec) *Builder {
	b.d.variables = specs
	return b
}

// LineComments sets the line-comment prefixes (replacing the "--" default).
func (b *Builder) LineComments(prefixes ...string) *Builder {
	b.d.lineCommentPrefixes = prefixes
	return b
}

// SpecialWordChars sets extra characters allowed inside unquoted words.
func (b *Builder) SpecialWordChars(chars string) *Builder {
	b.d.specialWordChars = chars
	return b
}

// Build returns the constructed dialect.
func (b *Builder) Build() *Dialect {
	return b.d
}
