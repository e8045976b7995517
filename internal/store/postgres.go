package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// documentRow is the fixed primary key of the single document row.
const documentRow = 1

// PostgresBackend keeps the document in a single JSONB row. The whole
// document is still read and rewritten per mutation, same contract as the
// file backend.
type PostgresBackend struct {
	db *sql.DB
}

// NewPostgresBackend constructs a backend over an open connection pool.
func NewPostgresBackend(db *sql.DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (p *PostgresBackend) Load(ctx context.Context) (Document, error) {
	const query = `SELECT doc FROM documents WHERE id = $1`
	var raw []byte
	err := p.db.QueryRowContext(ctx, query, documentRow).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, nil
		}
		return Document{}, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func (p *PostgresBackend) Save(ctx context.Context, doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	const query = `
		INSERT INTO documents (id, doc, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET doc = $2, updated_at = $3`
	_, err = p.db.ExecContext(ctx, query, documentRow, raw, time.Now())
	return err
}
