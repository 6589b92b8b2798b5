// Package singlestoredb provides the SingleStoreDB dialect definition.
package singlestoredb

import (
	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
)

func init() {
	dialect.Register(SingleStoreDB)
}

// SingleStoreDB follows the MySQL family configuration.
var SingleStoreDB = dialect.NewDialect("singlestoredb").
	Commands(append(append([]string{}, standard.Commands...),
		"ON DUPLICATE KEY UPDATE", "REPLACE INTO", "SHOW")...).
	BinaryCommands(append(append([]string{}, standard.BinaryCommands...), "MINUS")...).
	DependentClauses(standard.DependentClauses...).
	JoinConditions(standard.JoinConditions...).
	LogicalOperators(standard.LogicalOperators...).
	Keywords(append(append([]string{}, standard.Keywords...),
		"AUTO_INCREMENT", "CHARSET", "ENGINE", "REGEXP", "RLIKE", "SHARD KEY", "SORT KEY")...).
	Functions(append(append([]string{}, standard.Functions...),
		"CONCAT_WS", "CURDATE", "DATE_ADD", "DATE_FORMAT", "DATE_SUB",
		"GROUP_CONCAT", "IFNULL", "NOW", "UNIX_TIMESTAMP")...).
	DataTypes(append(append([]string{}, standard.DataTypes...),
		"ENUM", "GEOGRAPHY", "GEOGRAPHYPOINT", "JSON", "LONGBLOB", "LONGTEXT",
		"MEDIUMINT", "MEDIUMTEXT", "TINYINT", "TINYTEXT", "YEAR")...).
	Operators(":=", "<<", ">>", "<=>", "&&", "||", "::", "::%", "::$", "<>", "<=", ">=", "!=").
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
