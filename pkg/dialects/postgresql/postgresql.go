// Package postgresql provides the PostgreSQL dialect definition.
package postgresql

import (
	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
)

func init() {
	dialect.Register(PostgreSQL)
}

// PostgreSQL extends the standard tables with Postgres operators, dollar
// strings and $n parameters.
var PostgreSQL = dialect.NewDialect("postgresql").
	Commands(append(append([]string{}, standard.Commands...),
		"RETURNING", "ON CONFLICT", "DO UPDATE SET", "DO NOTHING")...).
	BinaryCommands(standard.BinaryCommands...).
	DependentClauses(standard.DependentClauses...).
	JoinConditions(standard.JoinConditions...).
	LogicalOperators(standard.LogicalOperators...).
	Keywords(append(append([]string{}, standard.Keywords...),
		"ILIKE", "IS DISTINCT FROM", "IS NOT DISTINCT FROM", "LATERAL",
		"SIMILAR TO", "TABLESAMPLE")...).
	Functions(append(append([]string{}, standard.Functions...),
		"ARRAY_AGG", "ARRAY_LENGTH", "CURRENT_DATE", "CURRENT_TIMESTAMP",
		"DATE_PART", "DATE_TRUNC", "GENERATE_SERIES", "JSONB_AGG", "NOW",
		"REGEXP_REPLACE", "STRING_AGG", "TO_CHAR", "TO_DATE", "UNNEST")...).
	DataTypes(append(append([]string{}, standard.DataTypes...),
		"BIGSERIAL", "BYTEA", "CIDR", "INET", "JSON", "JSONB", "MACADDR",
		"MONEY", "SERIAL", "TIMESTAMPTZ", "TSQUERY", "TSVECTOR", "UUID")...).
	Operators(
		"#>>", "->>", "@@", "::", "->", "#>", "@>", "<@", "?|", "?&", "#-",
		"&&", "||", "<<", ">>", "~*", "!~*", "!~", "<>", "<=", ">=", "!=", "!!",
	).
	Strings(dialect.SingleQuoteString, dialect.DollarString, dialect.PrefixedString).
	StringPrefixes("E", "X", "B").
	Identifiers(dialect.DoubleQuoteIdent).
	Placeholders(
		dialect.PlaceholderSpec{Prefix: "$", Numbered: true},
		dialect.PlaceholderSpec{Prefix: ":", Named: true, Quoted: true},
	).
	Build()
