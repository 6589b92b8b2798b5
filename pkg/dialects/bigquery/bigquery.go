// Package bigquery provides the Google BigQuery dialect definition.
package bigquery

import (
	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
)

func init() {
	dialect.Register(BigQuery)
}

// BigQuery extends the standard tables with BigQuery's clause set, backtick
// identifiers and named @ parameters.
var BigQuery = dialect.NewDialect("bigquery").
	Commands(append(append([]string{}, standard.Commands...),
		"QUALIFY", "OMIT RECORD IF", "MERGE", "MERGE INTO")...).
	BinaryCommands(standard.BinaryCommands...).
	DependentClauses(standard.DependentClauses...).
	JoinConditions("ON", "USING").
	LogicalOperators(standard.LogicalOperators...).
	Keywords(append(append([]string{}, standard.Keywords...),
		"EXCEPT DISTINCT", "SAFE_CAST", "TABLESAMPLE", "UNNEST", "IGNORE NULLS", "RESPECT NULLS")...).
	Functions(append(append([]string{}, standard.Functions...),
		"ANY_VALUE", "ARRAY_AGG", "ARRAY_LENGTH", "COUNTIF", "CURRENT_DATE",
		"CURRENT_TIMESTAMP", "DATE_ADD", "DATE_DIFF", "FORMAT", "GENERATE_UUID",
		"PARSE_DATE", "SAFE_DIVIDE", "STRING_AGG", "TIMESTAMP_ADD", "TIMESTAMP_DIFF")...).
	DataTypes(append(append([]string{}, standard.DataTypes...),
		"ARRAY", "BIGNUMERIC", "BOOL", "BYTES", "FLOAT64", "GEOGRAPHY", "INT64", "STRING", "STRUCT")...).
	Operators("<>", "<=", ">=", "!=", "<<", ">>", "||").
	Strings(dialect.SingleQuoteString, dialect.DoubleQuoteString, dialect.PrefixedString).
	StringPrefixes("R", "B").
	Identifiers(dialect.BacktickIdent).
	Placeholders(
		dialect.PlaceholderSpec{Prefix: "?", Bare: true},
		dialect.PlaceholderSpec{Prefix: "@", Named: true, Quoted: true},
	).
	Build()
