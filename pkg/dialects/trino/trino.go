// Package trino provides the Trino (Presto) dialect definition.
package trino

import (
	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
)

func init() {
	dialect.Register(Trino)
}

// Trino extends the standard tables with Trino clauses and lambda arrows.
var Trino = dialect.NewDialect("trino").
	Commands(append(append([]string{}, standard.Commands...),
		"MERGE", "MERGE INTO", "MATCH_RECOGNIZE", "MEASURES", "PATTERN",
		"DEFINE", "UNNEST", "TABLESAMPLE")...).
	BinaryCommands(standard.BinaryCommands...).
	DependentClauses(standard.DependentClauses...).
	JoinConditions(standard.JoinConditions...).
	LogicalOperators(standard.LogicalOperators...).
	Keywords(append(append([]string{}, standard.Keywords...),
		"GROUPING SETS", "CUBE", "ROLLUP", "LATERAL", "ORDINALITY", "WITH ORDINALITY")...).
	Functions(append(append([]string{}, standard.Functions...),
		"APPROX_DISTINCT", "ARRAY_AGG", "ARRAY_JOIN", "CARDINALITY",
		"DATE_ADD", "DATE_DIFF", "DATE_TRUNC", "ELEMENT_AT", "FILTER",
		"JSON_EXTRACT", "MAP_AGG", "REDUCE", "REGEXP_REPLACE", "TRANSFORM", "TRY_CAST")...).
	DataTypes(append(append([]string{}, standard.DataTypes...),
		"ARRAY", "HYPERLOGLOG", "IPADDRESS", "JSON", "MAP", "ROW", "TINYINT",
		"UUID", "VARBINARY")...).
	Operators("->", "=>", "||", "<>", "<=", ">=", "!=").
	Strings(dialect.SingleQuoteString, dialect.PrefixedString).
	StringPrefixes("X", "U").
	Identifiers(dialect.DoubleQuoteIdent).
	Placeholders(dialect.PlaceholderSpec{Prefix: "?", Bare: true}).
	Build()
