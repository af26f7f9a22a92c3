// Package history keeps a small local log of successful lookups in an
// embedded SQLite database. It exists for the operator, not the scraper:
// the /api/history endpoint answers "what has this instance been asked
// for lately" after restarts.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one recorded lookup.
type Entry struct {
	ID        int64  `json:"id"`
	Operation string `json:"operation"` // search | video | playlist | channel
	Subject   string `json:"subject"`   // query text or entity id
	Results   int    `json:"results"`
	CreatedAt string `json:"created_at"`
}

var (
	db       *sql.DB
	initOnce sync.Once
	initErr  error
	path     string
)

// SetPath overrides the database location. Must be called before the
// first Record/Recent call; empty keeps the default under $HOME.
func SetPath(p string) { path = p }

func open() (*sql.DB, error) {
	initOnce.Do(func() {
		p := path
		if p == "" {
			dir := filepath.Join(os.Getenv("HOME"), ".nd-tube-api")
			if err := os.MkdirAll(dir, 0750); err != nil {
				initErr = fmt.Errorf("history: mkdir %s: %w", dir, err)
				return
			}
			p = filepath.Join(dir, "history.db")
		}
		d, err := sql.Open("sqlite", p)
		if err != nil {
			initErr = fmt.Errorf("history: open db: %w", err)
			return
		}
		d.SetMaxOpenConns(1) // SQLite: single writer
		if _, err := d.Exec(`CREATE TABLE IF NOT EXISTS lookups (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			operation  TEXT NOT NULL,
			subject    TEXT NOT NULL,
			results    INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`); err != nil {
			initErr = fmt.Errorf("history: init schema: %w", err)
			return
		}
		db = d
	})
	return db, initErr
}

// Record stores one successful lookup.
func Record(_ context.Context, operation, subject string, results int) error {
	if operation == "" || subject == "" {
		return errors.New("history: operation and subject are required")
	}
	d, err := open()
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := d.Exec(
		`INSERT INTO lookups (operation, subject, results, created_at) VALUES (?, ?, ?, ?)`,
		operation, subject, results, now,
	); err != nil {
		return fmt.Errorf("history: insert: %w", err)
	}
	return nil
}

// Recent returns the latest lookups, newest first.
func Recent(_ context.Context, limit int) ([]Entry, error) {
	d, err := open()
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := d.Query(
		`SELECT id, operation, subject, results, created_at
		 FROM lookups ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Operation, &e.Subject, &e.Results, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
