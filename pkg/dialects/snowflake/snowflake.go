// Package snowflake provides the Snowflake dialect definition.
package snowflake

import (
	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
)

func init() {
	dialect.Register(Snowflake)
}

// Snowflake extends the standard tables with Snowflake clauses, :: casts and
// $$ strings.
var Snowflake = dialect.NewDialect("snowflake").
	Commands(append(append([]string{}, standard.Commands...),
		"QUALIFY", "MERGE", "MERGE INTO", "PIVOT", "UNPIVOT", "SAMPLE", "TOP")...).
	BinaryCommands(append(append([]string{}, standard.BinaryCommands...), "MINUS")...).
	DependentClauses(standard.DependentClauses...).
	JoinConditions(standard.JoinConditions...).
	LogicalOperators(standard.LogicalOperators...).
	Keywords(append(append([]string{}, standard.Keywords...),
		"CLONE", "ILIKE", "LATERAL", "MATCH_RECOGNIZE", "RLIKE", "TABLESAMPLE")...).
	Functions(append(append([]string{}, standard.Functions...),
		"ARRAY_AGG", "ARRAY_CONSTRUCT", "DATEADD", "DATEDIFF", "FLATTEN",
		"IFF", "LISTAGG", "NVL", "OBJECT_CONSTRUCT", "PARSE_JSON", "TO_CHAR",
		"TO_DATE", "TO_TIMESTAMP", "TO_VARIANT")...).
	DataTypes(append(append([]string{}, standard.DataTypes...),
		"ARRAY", "GEOGRAPHY", "NUMBER", "OBJECT", "STRING", "TIMESTAMP_LTZ",
		"TIMESTAMP_NTZ", "TIMESTAMP_TZ", "VARIANT")...).
	Operators("::", "=>", "||", "<>", "<=", ">=", "!=").
	Strings(dialect.SingleQuoteString, dialect.DollarString, dialect.PrefixedString).
	StringPrefixes("X", "B").
	Identifiers(dialect.DoubleQuoteIdent).
	Placeholders(
		dialect.PlaceholderSpec{Prefix: "?", Bare: true},
		dialect.PlaceholderSpec{Prefix: ":", Named: true},
	).
	Build()
