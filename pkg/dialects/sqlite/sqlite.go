// Package sqlite provides the SQLite dialect definition.
package sqlite

import (
	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
)

func init() {
	dialect.Register(SQLite)
}

// SQLite extends the standard tables with SQLite's placeholder zoo and its
// three identifier quote styles.
var SQLite = dialect.NewDialect("sqlite").
	Commands(append(append([]string{}, standard.Commands...),
		"ON CONFLICT", "DO UPDATE SET", "DO NOTHING", "RETURNING", "PRAGMA")...).
	BinaryCommands(standard.BinaryCommands...).
	DependentClauses(standard.DependentClauses...).
	JoinConditions(standard.JoinConditions...).
	LogicalOperators(standard.LogicalOperators...).
	Keywords(append(append([]string{}, standard.Keywords...),
		"AUTOINCREMENT", "GLOB", "INDEXED BY", "ISNULL", "NOTNULL", "REGEXP", "WITHOUT ROWID")...).
	Functions(append(append([]string{}, standard.Functions...),
		"DATETIME", "GROUP_CONCAT", "IFNULL", "JSON_EXTRACT", "JULIANDAY",
		"RANDOM", "STRFTIME", "TOTAL", "TYPEOF")...).
	DataTypes(standard.DataTypes...).
	Operators("<<", ">>", "==", "<>", "<=", ">=", "!=", "||", "->>", "->").
	Strings(dialect.SingleQuoteString, dialect.PrefixedString).
	StringPrefixes("X").
	Identifiers(dialect.DoubleQuoteIdent, dialect.BacktickIdent, dialect.BracketIdent).
	Placeholders(
		dialect.PlaceholderSpec{Prefix: "?", Bare: true, Numbered: true},
		dialect.PlaceholderSpec{Prefix: ":", Named: true},
		dialect.PlaceholderSpec{Prefix: "@", Named: true},
		dialect.PlaceholderSpec{Prefix: "$", Named: true},
	).
	Build()
