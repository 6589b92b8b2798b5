// Package mariadb provides the MariaDB dialect definition.
package mariadb

import (
	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
)

func init() {
	dialect.Register(MariaDB)
}

// MariaDB matches MySQL's tokenizer configuration with MariaDB's own
// clause additions.
var MariaDB = dialect.NewDialect("mariadb").
	Commands(append(append([]string{}, standard.Commands...),
		"ON DUPLICATE KEY UPDATE", "REPLACE INTO", "SHOW", "RETURNING")...).
	BinaryCommands(append(append([]string{}, standard.BinaryCommands...), "MINUS")...).
	DependentClauses(standard.DependentClauses...).
	JoinConditions(standard.JoinConditions...).
	LogicalOperators(append(append([]string{}, standard.LogicalOperators...), "XOR")...).
	Keywords(append(append([]string{}, standard.Keywords...),
		"AUTO_INCREMENT", "CHARSET", "ENGINE", "REGEXP", "RLIKE", "SEPARATOR")...).
	Functions(append(append([]string{}, standard.Functions...),
		"CONCAT_WS", "CURDATE", "CURTIME", "DATE_ADD", "DATE_FORMAT", "DATE_SUB",
		"GROUP_CONCAT", "IFNULL", "NOW", "STR_TO_DATE", "UNIX_TIMESTAMP")...).
	DataTypes(append(append([]string{}, standard.DataTypes...),
		"ENUM", "JSON", "LONGBLOB", "LONGTEXT", "MEDIUMINT", "MEDIUMTEXT", "TINYINT", "TINYTEXT", "YEAR")...).
	Operators(":=", "<<", ">>", "<=>", "&&", "||", "<>", "<=", ">=", "!=").
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
