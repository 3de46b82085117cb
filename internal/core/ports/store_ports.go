package ports

import "context"

// Document is a schemaless record as stored in a collection. Stored
// documents always carry their id under the "_id" key.
type Document = map[string]any

// Filter matches documents by exact equality on top-level fields.
// The "_id" key matches against the document id.
type Filter = map[string]any

// Fields holds the values to insert or merge into a document.
type Fields = map[string]any

// DocumentStore is a generic collection-oriented store. FindOne and
// UpdateOne return a nil document when nothing matches; that is not an
// error. Errors are reserved for store failures.
type DocumentStore interface {
	FindOne(ctx context.Context, collection string, filter Filter) (Document, error)
	FindMany(ctx context.Context, collection string, filter Filter) ([]Document, error)
	InsertOne(ctx context.Context, collection string, fields Fields) (Document, error)
	UpdateOne(ctx context.Context, collection string, filter Filter, fields Fields) (Document, error)
	DeleteOne(ctx context.Context, collection string, filter Filter) (bool, error)
}
