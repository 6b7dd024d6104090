// Package store keeps a catalog of lattices and their rendered drawings in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/qlbm-go/qlbm/lattice"
)

// ErrNotFound indicates a lattice or render id with no matching row.
var ErrNotFound = errors.New("not found")

// timeLayout has fixed width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// DB is a migrated catalog database.
type DB struct {
	*sql.DB
}

// Open opens (creating if needed) the catalog at path and applies pending migrations.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// SQLite pragmas are per connection; one connection keeps them in force.
	sqlDB.SetMaxOpenConns(1)
	for _, pragma := range []string{"PRAGMA foreign_keys = ON", "PRAGMA busy_timeout = 5000"} {
		if _, err := sqlDB.Exec(pragma); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}
	db := &DB{sqlDB}
	if err := db.MigrateUp(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	logrus.Debugf("opened catalog %s", path)
	return db, nil
}

// Lattice is a saved lattice configuration.
type Lattice struct {
	ID         string
	Name       string
	ConfigYAML string
	NumQubits  int
	CreatedAt  time.Time
}

// Render is one drawing produced by a backend. LatticeID is empty for
// renders not tied to a saved lattice.
type Render struct {
	ID        string
	LatticeID string
	Component string
	Backend   string
	Content   []byte
	CreatedAt time.Time
}

// SaveLattice stores cfg in canonical YAML form and returns the new lattice id.
func (db *DB) SaveLattice(ctx context.Context, name string, cfg *lattice.Config, numQubits int) (string, error) {
	data, err := cfg.MarshalCanonicalYAML()
	if err != nil {
		return "", fmt.Errorf("encoding lattice %q: %w", name, err)
	}
	id := uuid.NewString()
	_, err = db.ExecContext(ctx,
		`INSERT INTO lattices (id, name, config_yaml, num_qubits, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, name, string(data), numQubits, time.Now().UTC().Format(timeLayout))
	if err != nil {
		return "", fmt.Errorf("inserting lattice %q: %w", name, err)
	}
	return id, nil
}

// GetLattice returns the lattice with the given id.
func (db *DB) GetLattice(ctx context.Context, id string) (*Lattice, error) {
	var (
		l       Lattice
		created string
	)
	err := db.QueryRowContext(ctx,
		`SELECT id, name, config_yaml, num_qubits, created_at FROM lattices WHERE id = ?`, id).
		Scan(&l.ID, &l.Name, &l.ConfigYAML, &l.NumQubits, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lattice %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying lattice %s: %w", id, err)
	}
	if l.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return nil, fmt.Errorf("lattice %s: bad created_at %q: %w", id, created, err)
	}
	return &l, nil
}

// SaveRender stores r, assigning an id and creation time when they are unset,
// and returns the id.
func (db *DB) SaveRender(ctx context.Context, r *Render) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.Content == nil {
		r.Content = []byte{}
	}
	latticeID := sql.NullString{String: r.LatticeID, Valid: r.LatticeID != ""}
	_, err := db.ExecContext(ctx,
		`INSERT INTO renders (id, lattice_id, component, backend, content, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, latticeID, r.Component, r.Backend, r.Content, r.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return "", fmt.Errorf("inserting render of %s with %s: %w", r.Component, r.Backend, err)
	}
	return r.ID, nil
}

// GetRender returns the render with the given id, content included.
func (db *DB) GetRender(ctx context.Context, id string) (*Render, error) {
	row := db.QueryRowContext(ctx,
		`SELECT id, lattice_id, component, backend, content, created_at FROM renders WHERE id = ?`, id)
	r, err := scanRender(row.Scan, true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("render %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying render %s: %w", id, err)
	}
	return r, nil
}

// ListRenders returns every render, newest first, without content.
func (db *DB) ListRenders(ctx context.Context) ([]Render, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, lattice_id, component, backend, created_at FROM renders ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing renders: %w", err)
	}
	defer rows.Close()

	var out []Render
	for rows.Next() {
		r, err := scanRender(rows.Scan, false)
		if err != nil {
			return nil, fmt.Errorf("listing renders: %w", err)
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func scanRender(scan func(dest ...any) error, withContent bool) (*Render, error) {
	var (
		r         Render
		latticeID sql.NullString
		created   string
	)
	dest := []any{&r.ID, &latticeID, &r.Component, &r.Backend}
	if withContent {
		dest = append(dest, &r.Content)
	}
	dest = append(dest, &created)
	if err := scan(dest...); err != nil {
		return nil, err
	}
	r.LatticeID = latticeID.String
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return nil, fmt.Errorf("bad created_at %q: %w", created, err)
	}
	r.CreatedAt = t
	return &r, nil
}
