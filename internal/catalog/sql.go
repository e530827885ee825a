package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/vango-dev/gallery/internal/errors"
)

const sqlSchema = `
CREATE TABLE IF NOT EXISTS categories (
	position INTEGER NOT NULL,
	id TEXT PRIMARY KEY,
	slug TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	is_experimental INTEGER NOT NULL DEFAULT 0,
	component_count INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS components (
	position INTEGER NOT NULL,
	id TEXT PRIMARY KEY,
	slug TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'draft',
	is_experimental INTEGER NOT NULL DEFAULT 0,
	category_id TEXT NOT NULL,
	variants TEXT NOT NULL DEFAULT '[]',
	documentation TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_components_category ON components(category_id, position);
`

const componentColumns = `id, slug, name, description, status, is_experimental, category_id, variants, documentation`

// SQL reads the catalog from a SQLite database. Rows are returned in
// insertion order (the position column).
type SQL struct {
	db *sql.DB
}

var _ Provider = (*SQL)(nil)

// OpenSQL opens the database at dsn and migrates the schema.
func OpenSQL(ctx context.Context, dsn string) (*SQL, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &SQL{db: db}
	if _, err := db.ExecContext(ctx, sqlSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *SQL) Close() error {
	return s.db.Close()
}

// Import replaces the stored catalog with the contents of seed.
func (s *SQL) Import(ctx context.Context, seed *Seed) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM components; DELETE FROM categories;`); err != nil {
		return err
	}

	cats, _ := seed.Categories(ctx)
	for i, c := range cats {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO categories (position, id, slug, name, description, is_experimental, component_count)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, c.ID, c.Slug, c.Name, c.Description, c.IsExperimental, c.ComponentCount)
		if err != nil {
			return fmt.Errorf("insert category %q: %w", c.Slug, err)
		}
	}

	for i, c := range seed.Components() {
		variants, err := json.Marshal(nonNil(c.Variants))
		if err != nil {
			return err
		}
		docs, err := json.Marshal(nonNil(c.Documentation))
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO components (position, `+componentColumns+`)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, c.ID, c.Slug, c.Name, c.Description, string(c.Status), c.IsExperimental, c.CategoryID,
			string(variants), string(docs))
		if err != nil {
			return fmt.Errorf("insert component %q: %w", c.Slug, err)
		}
	}
	return tx.Commit()
}

// Categories implements Provider.
func (s *SQL) Categories(ctx context.Context) ([]Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, slug, name, description, is_experimental, component_count
		 FROM categories ORDER BY position`)
	if err != nil {
		return nil, errors.New("E210").Wrap(err)
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Slug, &c.Name, &c.Description, &c.IsExperimental, &c.ComponentCount); err != nil {
			return nil, errors.New("E211").Wrap(err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("E210").Wrap(err)
	}
	return out, nil
}

// ComponentsByCategory implements Provider.
func (s *SQL) ComponentsByCategory(ctx context.Context, categoryID string) ([]Component, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+componentColumns+` FROM components WHERE category_id = ? ORDER BY position`, categoryID)
	if err != nil {
		return nil, errors.New("E210").Wrap(err)
	}
	defer rows.Close()

	var out []Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("E210").Wrap(err)
	}
	return out, nil
}

// ComponentBySlug implements Provider.
func (s *SQL) ComponentBySlug(ctx context.Context, slug string) (Component, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+componentColumns+` FROM components WHERE slug = ?`, slug)
	c, err := scanComponent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Component{}, ErrNotFound
	}
	return c, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanComponent(row scanner) (Component, error) {
	var (
		c              Component
		status         string
		variants, docs string
	)
	err := row.Scan(&c.ID, &c.Slug, &c.Name, &c.Description, &status, &c.IsExperimental, &c.CategoryID, &variants, &docs)
	if err == sql.ErrNoRows {
		return Component{}, err
	}
	if err != nil {
		return Component{}, errors.New("E210").Wrap(err)
	}
	c.Status = Status(status)
	if err := json.Unmarshal([]byte(variants), &c.Variants); err != nil {
		return Component{}, errors.New("E211").WithDetailf("variants of %q: %v", c.Slug, err)
	}
	if err := json.Unmarshal([]byte(docs), &c.Documentation); err != nil {
		return Component{}, errors.New("E211").WithDetailf("documentation of %q: %v", c.Slug, err)
	}
	if len(c.Variants) == 0 {
		c.Variants = nil
	}
	if len(c.Documentation) == 0 {
		c.Documentation = nil
	}
	return c, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
