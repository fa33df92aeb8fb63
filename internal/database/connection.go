package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. A PostgreSQL DSN can be
// supplied through DATABASE_URL; otherwise a local SQLite file is used.
func Connect() error {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sqlx.Connect("postgres", dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %v", err)
		}
		DB = db
		return initializeSchema()
	}

	// Create data directory if it doesn't exist
	dataDir := "data"
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dataDir, "algorecall.db")
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	DB = db

	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist.
// The three entries (problems, concepts, streak) are independent on purpose:
// no mutation spans more than one of them in a single transaction.
func initializeSchema() error {
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS problems (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			url TEXT NOT NULL,
			platform TEXT NOT NULL,
			tags TEXT NOT NULL DEFAULT '',
			stage INTEGER NOT NULL DEFAULT 1,
			next_review_date TIMESTAMP NOT NULL,
			last_reviewed TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create problems table: %v", err)
	}

	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS concepts (
			tag TEXT PRIMARY KEY,
			score INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create concepts table: %v", err)
	}

	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS streak (
			id INTEGER PRIMARY KEY,
			days INTEGER NOT NULL DEFAULT 0,
			last_study_date TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create streak table: %v", err)
	}

	return nil
}
