// Package hive provides the Apache Hive dialect definition.
package hive

import (
	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
)

func init() {
	dialect.Register(Hive)
}

// Hive extends the standard tables with HiveQL clauses, backtick identifiers
// and double-quoted strings.
var Hive = dialect.NewDialect("hive").
	Commands(append(append([]string{}, standard.Commands...),
		"CLUSTER BY", "DISTRIBUTE BY", "SORT BY", "INSERT OVERWRITE",
		"INSERT OVERWRITE DIRECTORY", "LATERAL VIEW", "LOAD DATA")...).
	BinaryCommands(append(append([]string{}, standard.BinaryCommands...),
		"LEFT SEMI JOIN")...).
	DependentClauses(standard.DependentClauses...).
	JoinConditions(standard.JoinConditions...).
	LogicalOperators(standard.LogicalOperators...).
	Keywords(append(append([]string{}, standard.Keywords...),
		"EXPLODE", "OVERWRITE", "PARTITIONED BY", "STORED AS", "TBLPROPERTIES")...).
	Functions(append(append([]string{}, standard.Functions...),
		"COLLECT_LIST", "COLLECT_SET", "CONCAT_WS", "DATE_ADD", "DATE_SUB",
		"DATEDIFF", "FROM_UNIXTIME", "GET_JSON_OBJECT", "REGEXP_REPLACE", "UNIX_TIMESTAMP")...).
	DataTypes(append(append([]string{}, standard.DataTypes...),
		"ARRAY", "MAP", "STRING", "STRUCT", "TINYINT", "UNIONTYPE")...).
	Operators("<=>", "==", "<>", "<=", ">=", "!=", "||").
	Strings(dialect.SingleQuoteString, dialect.DoubleQuoteString).
	Identifiers(dialect.BacktickIdent).
	Placeholders(dialect.PlaceholderSpec{Prefix: "?", Bare: true}).
	Build()
