// Package n1ql provides the Couchbase N1QL dialect definition.
package n1ql

import (
	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
)

func init() {
	dialect.Register(N1QL)
}

// N1QL extends the standard tables with N1QL clauses, backtick identifiers
// and $ parameters.
var N1QL = dialect.NewDialect("n1ql").
	Commands(append(append([]string{}, standard.Commands...),
		"LET", "MERGE", "MERGE INTO", "NEST", "UNNEST", "USE KEYS", "UPSERT INTO")...).
	BinaryCommands(standard.BinaryCommands...).
	DependentClauses(standard.DependentClauses...).
	JoinConditions(standard.JoinConditions...).
	LogicalOperators(standard.LogicalOperators...).
	Keywords(append(append([]string{}, standard.Keywords...),
		"ANY", "EVERY", "MISSING", "SATISFIES", "VALUED", "WITHIN")...).
	Functions(append(append([]string{}, standard.Functions...),
		"ARRAY_AGG", "ARRAY_CONTAINS", "ARRAY_LENGTH", "META", "OBJECT_NAMES", "TO_STRING")...).
	DataTypes(standard.DataTypes...).
	Operators("==", "<>", "<=", ">=", "!=", "||").
	Strings(dialect.SingleQuoteString, dialect.DoubleQuoteString).
	Identifiers(dialect.BacktickIdent).
	Placeholders(
		dialect.PlaceholderSpec{Prefix: "?", Bare: true},
		dialect.PlaceholderSpec{Prefix: "$", Named: true, Numbered: true, Quoted: true},
	).
	Build()
