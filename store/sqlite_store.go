package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/axiskit/vecmath/num"
	"github.com/axiskit/vecmath/vecn"
)

// SQLiteStore implements Store on a SQLite database. One row per named
// vector; Save replaces, Nearest brute-force ranks rows of the query's
// dimension by cosine distance.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed Store. It ensures the vectors
// schema exists in the provided database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Save inserts or replaces the vector stored under name.
func (s *SQLiteStore) Save(ctx context.Context, name string, v vecn.Vector[float32]) error {
	if name == "" {
		return fmt.Errorf("store: Save called with empty name")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	blob, err := EncodeVector(v)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO vectors(name, dim, data) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
  dim = excluded.dim,
  data = excluded.data`, name, v.Dim(), blob)
	return err
}

// Load returns the vector stored under name. A missing name reports an
// error wrapping sql.ErrNoRows.
func (s *SQLiteStore) Load(ctx context.Context, name string) (vecn.Vector[float32], error) {
	if name == "" {
		return nil, fmt.Errorf("store: Load called with empty name")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var blob []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM vectors WHERE name = ?`, name).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store: vector %q: %w", name, err)
	}
	if err != nil {
		return nil, err
	}
	return DecodeVector(blob)
}

// Names lists all stored vector names in insertion order.
func (s *SQLiteStore) Names(ctx context.Context) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM vectors ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// Remove deletes the vector stored under name. Removing an absent name is
// not an error.
func (s *SQLiteStore) Remove(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("store: Remove called with empty name")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM vectors WHERE name = ?`, name)
	return err
}

// Nearest returns up to k stored vectors of the query's dimension ranked by
// ascending cosine distance. Zero-magnitude rows are skipped; a
// zero-magnitude query yields num.ErrDomain.
func (s *SQLiteStore) Nearest(ctx context.Context, query vecn.Vector[float32], k int) ([]Match, error) {
	if k <= 0 {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	qMag := magnitude(query)
	if qMag == 0 {
		return nil, fmt.Errorf("store: nearest with zero-magnitude query: %w", num.ErrDomain)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT name, data FROM vectors WHERE dim = ?`, query.Dim())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var name string
		var blob []byte
		if err := rows.Scan(&name, &blob); err != nil {
			return nil, err
		}
		v, err := DecodeVector(blob)
		if err != nil {
			return nil, err
		}
		vMag := magnitude(v)
		if vMag == 0 {
			continue
		}
		matches = append(matches, Match{
			Entry:    Entry{Name: name, Vector: v},
			Distance: cosineDistance(query, v),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(matches, func(a, b int) bool { return matches[a].Distance < matches[b].Distance })
	if k < len(matches) {
		matches = matches[:k]
	}
	return matches, nil
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
