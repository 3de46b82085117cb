// Package postgres implements the DocumentStore over a single JSONB
// documents table, so every collection shares one schema and filters
// translate to JSONB containment.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/postal/cards/internal/core/ports"
)

type DocumentStore struct {
	db *sql.DB
}

func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) FindOne(ctx context.Context, collection string, filter ports.Filter) (ports.Document, error) {
	where, args, err := buildWhere(collection, filter)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, data FROM documents WHERE %s LIMIT 1`, where)
	var id string
	var raw []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&id, &raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find document: %w", err)
	}
	return decodeDocument(id, raw)
}

func (s *DocumentStore) FindMany(ctx context.Context, collection string, filter ports.Filter) ([]ports.Document, error) {
	where, args, err := buildWhere(collection, filter)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, data FROM documents WHERE %s ORDER BY created_at`, where)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}
	defer rows.Close()

	var docs []ports.Document
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc, err := decodeDocument(id, raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}
	return docs, nil
}

func (s *DocumentStore) InsertOne(ctx context.Context, collection string, fields ports.Fields) (ports.Document, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	id := uuid.New().String()
	query := `INSERT INTO documents (id, collection, data) VALUES ($1, $2, $3)`
	if _, err := s.db.ExecContext(ctx, query, id, collection, raw); err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}

	doc := make(ports.Document, len(fields)+1)
	for k, v := range fields {
		doc[k] = v
	}
	doc["_id"] = id
	return doc, nil
}

func (s *DocumentStore) UpdateOne(ctx context.Context, collection string, filter ports.Filter, fields ports.Fields) (ports.Document, error) {
	where, args, err := buildWhere(collection, filter)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode update: %w", err)
	}
	args = append(args, raw)

	query := fmt.Sprintf(`
		UPDATE documents SET data = data || $%d::jsonb
		WHERE id = (SELECT id FROM documents WHERE %s LIMIT 1)
		RETURNING id, data
	`, len(args), where)

	var id string
	var updated []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&id, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return decodeDocument(id, updated)
}

func (s *DocumentStore) DeleteOne(ctx context.Context, collection string, filter ports.Filter) (bool, error) {
	where, args, err := buildWhere(collection, filter)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf(`
		DELETE FROM documents
		WHERE id = (SELECT id FROM documents WHERE %s LIMIT 1)
	`, where)
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete document: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete outcome: %w", err)
	}
	return affected > 0, nil
}

// buildWhere translates a filter into a WHERE clause: the collection
// and optional "_id" match columns, everything else becomes a JSONB
// containment check against data.
func buildWhere(collection string, filter ports.Filter) (string, []any, error) {
	where := "collection = $1"
	args := []any{collection}

	contained := make(map[string]any)
	for k, v := range filter {
		if k == "_id" {
			args = append(args, v)
			where += fmt.Sprintf(" AND id = $%d", len(args))
			continue
		}
		contained[k] = v
	}

	if len(contained) > 0 {
		raw, err := json.Marshal(contained)
		if err != nil {
			return "", nil, fmt.Errorf("failed to encode filter: %w", err)
		}
		args = append(args, raw)
		where += fmt.Sprintf(" AND data @> $%d::jsonb", len(args))
	}
	return where, args, nil
}

func decodeDocument(id string, raw []byte) (ports.Document, error) {
	doc := make(ports.Document)
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	doc["_id"] = id
	return doc, nil
}
