// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists generated documents per user in SQLite. It backs
// the save/list/delete surface the generation pipeline's callers consume;
// the pipeline itself never touches it.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/HorizonHnk/papergen/pkg/types"
)

// ErrNotFound reports a delete against a document id that does not exist.
var ErrNotFound = fmt.Errorf("document not found")

// Store manages the document database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the document database at path and ensures the
// schema exists.
func Open(cfg types.StoreConfig) (*Store, error) {
	path := cfg.DatabasePath
	if path == "" {
		path = "papergen.db"
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			template TEXT NOT NULL,
			content TEXT NOT NULL,
			user_input TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_user_id ON documents(user_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save persists a document for a user and returns its assigned id.
func (s *Store) Save(ctx context.Context, userID string, doc types.StoredDocument) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("user id is required")
	}
	if doc.Content == "" {
		return "", fmt.Errorf("document content is empty")
	}

	createdAt := doc.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	id := documentID(userID, doc.Title, createdAt)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, user_id, title, template, content, user_input, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, userID, doc.Title, string(doc.Template), doc.Content, doc.UserInput,
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("inserting document: %w", err)
	}
	return id, nil
}

// List returns a user's documents, most recent first.
func (s *Store) List(ctx context.Context, userID string) ([]types.StoredDocument, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, title, template, content, user_input, created_at
		 FROM documents WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []types.StoredDocument
	for rows.Next() {
		var d types.StoredDocument
		var template, createdAt string
		if err := rows.Scan(&d.ID, &d.UserID, &d.Title, &template, &d.Content, &d.UserInput, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning document row: %w", err)
		}
		d.Template = types.TemplateKind(template)
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			d.CreatedAt = ts
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Get returns one document by id.
func (s *Store) Get(ctx context.Context, id string) (types.StoredDocument, error) {
	var d types.StoredDocument
	var template, createdAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, template, content, user_input, created_at
		 FROM documents WHERE id = ?`, id).
		Scan(&d.ID, &d.UserID, &d.Title, &template, &d.Content, &d.UserInput, &createdAt)
	if err == sql.ErrNoRows {
		return types.StoredDocument{}, ErrNotFound
	}
	if err != nil {
		return types.StoredDocument{}, fmt.Errorf("querying document: %w", err)
	}
	d.Template = types.TemplateKind(template)
	if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		d.CreatedAt = ts
	}
	return d, nil
}

// Delete removes a document by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// documentID derives a stable short id from the owner, title, and save time.
func documentID(userID, title string, createdAt time.Time) string {
	h := sha256.New()
	h.Write([]byte(userID))
	h.Write([]byte(title))
	h.Write([]byte(createdAt.Format(time.RFC3339Nano)))
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}
