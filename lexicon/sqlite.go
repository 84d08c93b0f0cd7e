package lexicon

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// schema of a compiled lexicon. Every row is one form; position 0 of a
// lexeme is its lemma.
const schema = `
CREATE TABLE IF NOT EXISTS forms (
    lexeme INTEGER NOT NULL,
    position INTEGER NOT NULL,
    form TEXT NOT NULL,
    flags TEXT NOT NULL,
    PRIMARY KEY (lexeme, position)
);
CREATE INDEX IF NOT EXISTS idx_forms_form ON forms(form);
`

// SaveSQLite writes l into a SQLite database at path, replacing any lexicon
// already stored there.
func SaveSQLite(ctx context.Context, l *Lexicon, path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM forms`); err != nil {
		return fmt.Errorf("failed to clear forms: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO forms (lexeme, position, form, flags) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for id, x := range l.Lexemes() {
		for pos, f := range x {
			if _, err := stmt.ExecContext(ctx, id, pos, f.Form, f.Flags); err != nil {
				return fmt.Errorf("insert %q: %w", f.Form, err)
			}
		}
	}
	return tx.Commit()
}

// OpenSQLite loads a compiled lexicon from path into memory. All reading
// happens here; the returned Lexicon does no I/O.
func OpenSQLite(ctx context.Context, path string) (*Lexicon, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT lexeme, form, flags FROM forms ORDER BY lexeme, position`)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", path, err)
	}
	defer rows.Close()

	l := New()
	var (
		cur    Lexeme
		lastID int64 = -1
	)
	for rows.Next() {
		var (
			id int64
			f  Form
		)
		if err := rows.Scan(&id, &f.Form, &f.Flags); err != nil {
			return nil, err
		}
		if id != lastID && cur != nil {
			l.Add(cur)
			cur = nil
		}
		lastID = id
		cur = append(cur, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	l.Add(cur)
	return l, nil
}
