// Package db2 provides the IBM DB2 dialect definition.
package db2

import (
	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
)

func init() {
	dialect.Register(DB2)
}

// DB2 extends the standard tables with DB2 operators and :name parameters.
var DB2 = dialect.NewDialect("db2").
	Commands(append(append([]string{}, standard.Commands...),
		"AFTER", "MERGE", "MERGE INTO", "ORDER BY INPUT SEQUENCE")...).
	BinaryCommands(standard.BinaryCommands...).
	DependentClauses(standard.DependentClauses...).
	JoinConditions(standard.JoinConditions...).
	LogicalOperators(standard.LogicalOperators...).
	Keywords(append(append([]string{}, standard.Keywords...),
		"CONCAT", "FETCH FIRST", "ROWS ONLY", "WITH UR", "WITH CS", "WITH RS", "WITH RR")...).
	Functions(append(append([]string{}, standard.Functions...),
		"DAYS", "DECIMAL", "DIGITS", "HEX", "JULIAN_DAY", "MICROSECOND",
		"MIDNIGHT_SECONDS", "MONTHNAME", "TIMESTAMP_ISO", "VARCHAR_FORMAT")...).
	DataTypes(append(append([]string{}, standard.DataTypes...),
		"CLOB", "DBCLOB", "GRAPHIC", "LONG VARCHAR", "VARGRAPHIC", "XML")...).
	Operators("**", "!>", "!<", "<>", "<=", ">=", "!=", "||").
	Strings(dialect.SingleQuoteString, dialect.PrefixedString, dialect.BraceString).
	StringPrefixes("G", "N", "X", "B").
	Identifiers(dialect.DoubleQuoteIdent).
	Placeholders(
		dialect.PlaceholderSpec{Prefix: "?", Bare: true},
		dialect.PlaceholderSpec{Prefix: ":", Named: true},
	).
	Build()
