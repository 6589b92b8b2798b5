// Package standard provides the base SQL dialect (tag "sql") with the
// ANSI-ish keyword tables the other dialects build on. The exported word
// lists are shared source material; dialect packages copy and extend them.
package standard

import "github.com/aka-chestnut/sql-formatter/pkg/dialect"

func init() {
	dialect.Register(SQL)
}

// Commands are the clause keywords that start their own line.
var Commands = []string{
	"ADD",
	"ALTER COLUMN",
	"ALTER TABLE",
	"CREATE TABLE",
	"CREATE VIEW",
	"DELETE FROM",
	"DROP TABLE",
	"FETCH FIRST",
	"FETCH NEXT",
	"FROM",
	"GROUP BY",
	"HAVING",
	"INSERT INTO",
	"LIMIT",
	"OFFSET",
	"ORDER BY",
	"PARTITION BY",
	"SELECT",
	"SET",
	"UPDATE",
	"VALUES",
	"WHERE",
	"WINDOW",
	"WITH",
}

// BinaryCommands join two query blocks.
var BinaryCommands = []string{
	"INTERSECT",
	"INTERSECT ALL",
	"INTERSECT DISTINCT",
	"UNION",
	"UNION ALL",
	"UNION DISTINCT",
	"EXCEPT",
	"EXCEPT ALL",
	"EXCEPT DISTINCT",
	"JOIN",
	"INNER JOIN",
	"LEFT JOIN",
	"LEFT OUTER JOIN",
	"RIGHT JOIN",
	"RIGHT OUTER JOIN",
	"FULL JOIN",
	"FULL OUTER JOIN",
	"CROSS JOIN",
	"NATURAL JOIN",
}

// DependentClauses attach to a prior command.
var DependentClauses = []string{"WHEN", "ELSE"}

// JoinConditions introduce join predicates.
var JoinConditions = []string{"ON", "USING"}

// LogicalOperators connect predicates.
var LogicalOperators = []string{"AND", "OR"}

// Keywords are the remaining reserved words.
var Keywords = []string{
	"ALL",
	"AS",
	"ASC",
	"BETWEEN",
	"BY",
	"CASCADE",
	"CONSTRAINT",
	"CURRENT ROW",
	"DEFAULT",
	"DESC",
	"DISTINCT",
	"EXISTS",
	"FOLLOWING",
	"FOREIGN KEY",
	"IF",
	"IF EXISTS",
	"IF NOT EXISTS",
	"IN",
	"INTO",
	"IS",
	"LIKE",
	"NOT",
	"NULL",
	"NULLS FIRST",
	"NULLS LAST",
	"OVER",
	"PRECEDING",
	"PRIMARY KEY",
	"RANGE",
	"RECURSIVE",
	"REFERENCES",
	"ROWS",
	"TABLE",
	"THEN",
	"TO",
	"UNBOUNDED",
	"UNIQUE",
	"VIEW",
}

// Functions are the reserved function names.
var Functions = []string{
	"ABS",
	"AVG",
	"CAST",
	"CEIL",
	"COALESCE",
	"CONCAT",
	"COUNT",
	"CUME_DIST",
	"DENSE_RANK",
	"EXTRACT",
	"FIRST_VALUE",
	"FLOOR",
	"LAG",
	"LAST_VALUE",
	"LEAD",
	"LOWER",
	"MAX",
	"MIN",
	"MOD",
	"NTH_VALUE",
	"NTILE",
	"NULLIF",
	"PERCENT_RANK",
	"POSITION",
	"POWER",
	"RANK",
	"ROUND",
	"ROW_NUMBER",
	"SQRT",
	"SUBSTRING",
	"SUM",
	"TRIM",
	"UPPER",
}

// DataTypes are the reserved type names.
var DataTypes = []string{
	"BIGINT",
	"BINARY",
	"BIT",
	"BLOB",
	"BOOLEAN",
	"CHAR",
	"CHARACTER",
	"CHARACTER VARYING",
	"DATE",
	"DATETIME",
	"DEC",
	"DECIMAL",
	"DOUBLE",
	"DOUBLE PRECISION",
	"FLOAT",
	"INT",
	"INTEGER",
	"INTERVAL",
	"NCHAR",
	"NUMERIC",
	"NVARCHAR",
	"REAL",
	"SMALLINT",
	"TEXT",
	"TIME",
	"TIMESTAMP",
	"VARBINARY",
	"VARCHAR",
}

// Operators are the multi-character operator strings.
var Operators = []string{"<>", "<=", ">=", "!=", "||"}

// SQL is the default dialect.
var SQL = dialect.NewDialect("sql").
	Commands(Commands...).
	BinaryCommands(BinaryCommands...).
	DependentClauses(DependentClauses...).
	JoinConditions(JoinConditions...).
	LogicalOperators(LogicalOperators...).
	Keywords(Keywords...).
	Functions(Functions...).
	DataTypes(DataTypes...).
	Operators(Operators...).
	Strings(dialect.SingleQuoteString, dialect.PrefixedString).
	StringPrefixes("N", "X", "B").
	Identifiers(dialect.DoubleQuoteIdent).
	Placeholders(dialect.PlaceholderSpec{Prefix: "?", Bare: true}).
	Build()
