package database

import (
	"database/sql"
	"embed"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

var DB *sql.DB

// InitDB opens the session store and brings the schema up to date. The
// default path is ":memory:": the store only backs the REST queries and
// end-of-session summaries for the current run, nothing survives a
// restart.
func InitDB(path string) error {
	var err error
	DB, err = sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	if err = DB.Ping(); err != nil {
		return err
	}

	// An in-memory SQLite database exists per connection; more than one
	// open conn would see different schemas.
	if path == ":memory:" {
		DB.SetMaxOpenConns(1)
	} else {
		DB.SetMaxOpenConns(25)
		DB.SetMaxIdleConns(5)
		DB.SetConnMaxLifetime(5 * time.Minute)
	}

	if err = migrate(); err != nil {
		return err
	}

	log.Printf("SQLite session store initialized at %s", path)
	return nil
}

func migrate() error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Up(DB, "migrations")
}

func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Println("DB closed")
	}
}
