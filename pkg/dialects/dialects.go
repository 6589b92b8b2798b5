// Package dialects registers every built-in dialect. Import it for side
// effects to make the full tag set available through the dialect registry.
package dialects

import (
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects/bigquery"
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects/db2"
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects/hive"
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects/mariadb"
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects/mysql"
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects/n1ql"
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects/plsql"
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects/postgresql"
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects/redshift"
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects/singlestoredb"
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects/snowflake"
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects/spark"
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects/sqlite"
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects/transactsql"
	_ "github.com/aka-chestnut/sql-formatter/pkg/dialects/trino"
)
