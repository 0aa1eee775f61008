package database

import (
	"database/sql"
	"strings"
	"sync"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const sqliteDriverName = "sqlite3_unicode"

var registerSQLite sync.Once

// openSQLite opens SQLite through a driver whose connections replace the
// built-in lower() and upper(). SQLite folds ASCII only, which would make
// case-insensitive lookups miss names like "Пушкин".
func openSQLite(dsn string) gorm.Dialector {
	registerSQLite.Do(func() {
		sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				if err := conn.RegisterFunc("lower", strings.ToLower, true); err != nil {
					return err
				}
				return conn.RegisterFunc("upper", strings.ToUpper, true)
			},
		})
	})
	return sqlite.New(sqlite.Config{
		DriverName: sqliteDriverName,
		DSN:        dsn,
	})
}
