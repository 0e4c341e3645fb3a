// Package store handles SQLite persistence of the parsed dictionary.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	"github.com/verte-zerg/ttaw/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for pronunciation data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS pronunciations (
			word TEXT NOT NULL,
			variant INTEGER NOT NULL,
			phonemes TEXT NOT NULL,
			PRIMARY KEY (word, variant)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Load reads every stored pronunciation. An empty table is a miss.
func (s *Store) Load(ctx context.Context) (model.Dictionary, bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, phonemes FROM pronunciations ORDER BY word, variant`)
	if err != nil {
		return nil, false, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	dict := make(model.Dictionary)
	for rows.Next() {
		var word, phonemes string
		if err := rows.Scan(&word, &phonemes); err != nil {
			return nil, false, err
		}
		dict[word] = append(dict[word], model.Pronunciation(strings.Fields(phonemes)))
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	if len(dict) == 0 {
		return nil, false, nil
	}
	return dict, true, nil
}

// Save replaces the stored dictionary in one transaction.
func (s *Store) Save(ctx context.Context, dict model.Dictionary) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM pronunciations`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO pronunciations (word, variant, phonemes) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for word, variants := range dict {
		for i, phonemes := range variants {
			if _, err = stmt.ExecContext(ctx, word, i, strings.Join(phonemes, " ")); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}
