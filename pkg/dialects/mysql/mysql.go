// Package mysql provides the MySQL dialect definition.
package mysql

import (
	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
)

func init() {
	dialect.Register(MySQL)
}

// MySQL extends the standard tables with MySQL operators, # line comments,
// backtick identifiers and @ variables.
var MySQL = dialect.NewDialect("mysql").
	Commands(append(append([]string{}, standard.Commands...),
		"ON DUPLICATE KEY UPDATE", "REPLACE INTO", "SHOW", "STRAIGHT_JOIN")...).
	BinaryCommands(standard.BinaryCommands...).
	DependentClauses(standard.DependentClauses...).
	JoinConditions(standard.JoinConditions...).
	LogicalOperators(append(append([]string{}, standard.LogicalOperators...), "XOR")...).
	Keywords(append(append([]string{}, standard.Keywords...),
		"AUTO_INCREMENT", "CHARSET", "ENGINE", "REGEXP", "RLIKE", "SEPARATOR", "SQL_CALC_FOUND_ROWS")...).
	Functions(append(append([]string{}, standard.Functions...),
		"CONCAT_WS", "CURDATE", "CURTIME", "DATE_ADD", "DATE_FORMAT", "DATE_SUB",
		"GROUP_CONCAT", "IFNULL", "JSON_EXTRACT", "NOW", "STR_TO_DATE", "UNIX_TIMESTAMP")...).
	DataTypes(append(append([]string{}, standard.DataTypes...),
		"ENUM", "JSON", "LONGBLOB", "LONGTEXT", "MEDIUMINT", "MEDIUMTEXT", "TINYINT", "TINYTEXT", "YEAR")...).
	Operators(":=", "<<", ">>", "<=>", "&&", "||", "->>", "->", "<>", "<=", ">=", "!=").
	Strings(dialect.SingleQuoteString, dialect.DoubleQuoteString, dialect.PrefixedString).
	StringPrefixes("N", "X", "B").
	Identifiers(dialect.BacktickIdent).
	Placeholders(dialect.PlaceholderSpec{Prefix: "?", Bare: true}).
	Variables(
		dialect.VariableSpec{Prefix: "@@"},
		dialect.VariableSpec{Prefix: "@", Quoted: true},
	).
	LineComments("--", "#").
	Build()
