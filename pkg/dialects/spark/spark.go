// Package spark provides the Apache Spark SQL dialect definition.
package spark

import (
	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
)

func init() {
	dialect.Register(Spark)
}

// Spark follows the Hive family with Spark's own additions.
var Spark = dialect.NewDialect("spark").
	Commands(append(append([]string{}, standard.Commands...),
		"CLUSTER BY", "DISTRIBUTE BY", "SORT BY", "INSERT OVERWRITE",
		"LATERAL VIEW", "PIVOT", "UNPIVOT", "TABLESAMPLE")...).
	BinaryCommands(append(append([]string{}, standard.BinaryCommands...),
		"LEFT SEMI JOIN", "LEFT ANTI JOIN", "ANTI JOIN", "SEMI JOIN")...).
	DependentClauses(standard.DependentClauses...).
	JoinConditions(standard.JoinConditions...).
	LogicalOperators(standard.LogicalOperators...).
	Keywords(append(append([]string{}, standard.Keywords...),
		"EXPLODE", "OVERWRITE", "PARTITIONED BY", "RLIKE", "STORED AS", "USING")...).
	Functions(append(append([]string{}, standard.Functions...),
		"COLLECT_LIST", "COLLECT_SET", "CONCAT_WS", "DATE_ADD", "DATE_SUB",
		"DATEDIFF", "EXPLODE", "FROM_UNIXTIME", "REGEXP_REPLACE", "UNIX_TIMESTAMP")...).
	DataTypes(append(append([]string{}, standard.DataTypes...),
		"ARRAY", "MAP", "STRING", "STRUCT", "TINYINT")...).
	Operators("<=>", "==", "&&", "||", "->", "<>", "<=", ">=", "!=").
	Strings(dialect.SingleQuoteString, dialect.DoubleQuoteString, dialect.PrefixedString).
	StringPrefixes("R", "X").
	Identifiers(dialect.BacktickIdent).
	Placeholders(
		dialect.PlaceholderSpec{Prefix: "?", Bare: true},
		dialect.PlaceholderSpec{Prefix: "$", Named: true, Numbered: true},
	).
	Build()
