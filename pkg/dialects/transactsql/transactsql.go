// Package transactsql provides the Microsoft T-SQL dialect definition,
// registered under the "transactsql" tag with a "tsql" alias.
package transactsql

import (
	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
)

func init() {
	dialect.Register(TransactSQL)
	dialect.RegisterAlias("tsql", "transactsql")
}

// TransactSQL extends the standard tables with T-SQL clauses, bracket
// identifiers and @ parameters.
var TransactSQL = dialect.NewDialect("transactsql").
	Commands(append(append([]string{}, standard.Commands...),
		"CROSS APPLY", "OUTER APPLY", "MERGE", "MERGE INTO", "OPTION",
		"OUTPUT", "PIVOT", "UNPIVOT", "TOP")...).
	BinaryCommands(standard.BinaryCommands...).
	DependentClauses(standard.DependentClauses...).
	JoinConditions(standard.JoinConditions...).
	LogicalOperators(standard.LogicalOperators...).
	Keywords(append(append([]string{}, standard.Keywords...),
		"HOLDLOCK", "IDENTITY", "NOLOCK", "PERCENT", "READPAST", "TABLOCK", "WITH TIES")...).
	Functions(append(append([]string{}, standard.Functions...),
		"CHARINDEX", "DATALENGTH", "DATEADD", "DATEDIFF", "DATENAME",
		"DATEPART", "GETDATE", "GETUTCDATE", "IIF", "ISNULL", "LEN",
		"OBJECT_ID", "REPLICATE", "STRING_AGG", "STUFF", "SYSDATETIME")...).
	DataTypes(append(append([]string{}, standard.DataTypes...),
		"DATETIME2", "DATETIMEOFFSET", "IMAGE", "MONEY", "NTEXT", "SMALLDATETIME",
		"SMALLMONEY", "SQL_VARIANT", "UNIQUEIDENTIFIER", "XML")...).
	Operators("!=", "!<", "!>", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<>", "<=", ">=", "::").
	Strings(dialect.SingleQuoteString, dialect.PrefixedString).
	StringPrefixes("N").
	Identifiers(dialect.DoubleQuoteIdent, dialect.BracketIdent).
	Placeholders(dialect.PlaceholderSpec{Prefix: "@", Named: true, Quoted: true}).
	Variables(
		dialect.VariableSpec{Prefix: "@@"},
		dialect.VariableSpec{Prefix: "@", Quoted: true},
	).
	SpecialWordChars("#").
	Build()
