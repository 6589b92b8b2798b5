// Package redshift provides the Amazon Redshift dialect definition.
package redshift

import (
	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
)

func init() {
	dialect.Register(Redshift)
}

// Redshift follows the Postgres family with Redshift's own clause set.
var Redshift = dialect.NewDialect("redshift").
	Commands(append(append([]string{}, standard.Commands...),
		"COPY", "DISTKEY", "SORTKEY", "UNLOAD", "VACUUM", "ANALYZE")...).
	BinaryCommands(append(append([]string{}, standard.BinaryCommands...), "MINUS")...).
	DependentClauses(standard.DependentClauses...).
	JoinConditions(standard.JoinConditions...).
	LogicalOperators(standard.LogicalOperators...).
	Keywords(append(append([]string{}, standard.Keywords...),
		"DISTSTYLE", "ENCODE", "ILIKE", "SIMILAR TO", "TOP")...).
	Functions(append(append([]string{}, standard.Functions...),
		"DATEADD", "DATEDIFF", "GETDATE", "LISTAGG", "MEDIAN", "NVL",
		"RATIO_TO_REPORT", "TO_CHAR", "TO_DATE")...).
	DataTypes(append(append([]string{}, standard.DataTypes...),
		"BPCHAR", "GEOMETRY", "HLLSKETCH", "SUPER", "TIMESTAMPTZ", "TIMETZ")...).
	Operators("::", "||", "<>", "<=", ">=", "!=", "~", "<<", ">>").
	Strings(dialect.SingleQuoteString, dialect.PrefixedString).
	StringPrefixes("E", "X", "B").
	Identifiers(dialect.DoubleQuoteIdent).
	Placeholders(dialect.PlaceholderSpec{Prefix: "$", Numbered: true}).
	Build()
