// Package plsql provides the Oracle PL/SQL dialect definition.
package plsql

import (
	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
)

func init() {
	dialect.Register(PLSQL)
}

// PLSQL extends the standard tables with Oracle clauses, := assignment and
// :name bind parameters.
var PLSQL = dialect.NewDialect("plsql").
	Commands(append(append([]string{}, standard.Commands...),
		"BEGIN", "CONNECT BY", "DECLARE", "EXCEPTION", "LOOP", "MERGE", "MERGE INTO",
		"RETURNING", "START WITH")...).
	BinaryCommands(append(append([]string{}, standard.BinaryCommands...), "MINUS")...).
	DependentClauses(standard.DependentClauses...).
	JoinConditions(standard.JoinConditions...).
	LogicalOperators(standard.LogicalOperators...).
	Keywords(append(append([]string{}, standard.Keywords...),
		"CONNECT", "DUAL", "PRIOR", "ROWNUM", "SYSDATE")...).
	Functions(append(append([]string{}, standard.Functions...),
		"ADD_MONTHS", "DECODE", "INSTR", "LISTAGG", "LPAD", "MONTHS_BETWEEN",
		"NVL", "NVL2", "RPAD", "TO_CHAR", "TO_DATE", "TO_NUMBER", "TRUNC")...).
	DataTypes(append(append([]string{}, standard.DataTypes...),
		"BFILE", "CLOB", "LONG", "NCLOB", "NUMBER", "RAW", "ROWID", "VARCHAR2", "XMLTYPE")...).
	Operators("**", ":=", "=>", "<>", "<=", ">=", "!=", "||").
	Strings(dialect.SingleQuoteString, dialect.PrefixedString).
	StringPrefixes("N").
	Identifiers(dialect.DoubleQuoteIdent).
	Placeholders(
		dialect.PlaceholderSpec{Prefix: "?", Bare: true},
		dialect.PlaceholderSpec{Prefix: ":", Named: true, Numbered: true},
	).
	Build()
