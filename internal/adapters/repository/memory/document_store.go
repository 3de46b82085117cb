// Package memory provides a mutex-guarded in-memory DocumentStore used
// by unit tests and local runs without a database.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/postal/cards/internal/core/ports"
)

type collection struct {
	order []string
	docs  map[string]ports.Document
}

type DocumentStore struct {
	mu          sync.RWMutex
	collections map[string]*collection
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{collections: make(map[string]*collection)}
}

func (s *DocumentStore) FindOne(_ context.Context, name string, filter ports.Filter) (ports.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	col, ok := s.collections[name]
	if !ok {
		return nil, nil
	}
	for _, id := range col.order {
		if matches(col.docs[id], filter) {
			return clone(col.docs[id]), nil
		}
	}
	return nil, nil
}

func (s *DocumentStore) FindMany(_ context.Context, name string, filter ports.Filter) ([]ports.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	col, ok := s.collections[name]
	if !ok {
		return nil, nil
	}
	var result []ports.Document
	for _, id := range col.order {
		if matches(col.docs[id], filter) {
			result = append(result, clone(col.docs[id]))
		}
	}
	return result, nil
}

func (s *DocumentStore) InsertOne(_ context.Context, name string, fields ports.Fields) (ports.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[name]
	if !ok {
		col = &collection{docs: make(map[string]ports.Document)}
		s.collections[name] = col
	}

	doc := clone(fields)
	id := uuid.New().String()
	doc["_id"] = id
	col.docs[id] = doc
	col.order = append(col.order, id)
	return clone(doc), nil
}

func (s *DocumentStore) UpdateOne(_ context.Context, name string, filter ports.Filter, fields ports.Fields) (ports.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[name]
	if !ok {
		return nil, nil
	}
	for _, id := range col.order {
		if !matches(col.docs[id], filter) {
			continue
		}
		for k, v := range fields {
			if k == "_id" {
				continue
			}
			col.docs[id][k] = v
		}
		return clone(col.docs[id]), nil
	}
	return nil, nil
}

func (s *DocumentStore) DeleteOne(_ context.Context, name string, filter ports.Filter) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[name]
	if !ok {
		return false, nil
	}
	for i, id := range col.order {
		if !matches(col.docs[id], filter) {
			continue
		}
		delete(col.docs, id)
		col.order = append(col.order[:i], col.order[i+1:]...)
		return true, nil
	}
	return false, nil
}

func matches(doc ports.Document, filter ports.Filter) bool {
	for k, want := range filter {
		if doc[k] != want {
			return false
		}
	}
	return true
}

func clone(doc ports.Document) ports.Document {
	copied := make(ports.Document, len(doc))
	for k, v := range doc {
		copied[k] = v
	}
	return copied
}
