package store

import "context"

// Document represents a generic content fragment in the RAG system
type Document struct {
	ID       string                 `json:"id"`
	Content  string                 `json:"content"`
	Score    float32                `json:"score"`
	Metadata map[string]interface{} `json:"metadata"`
}

// Collection is a lightweight handle to a named vector collection
type Collection struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Space string `json:"space"`
}

// CosineSpace is the only distance space the adapter provisions.
const CosineSpace = "cosine"

// Store is the vector store the retrieval pipeline runs against.
type Store interface {
	// GetOrCreateCollection resolves a collection by name, provisioning it
	// in cosine space when it does not exist yet.
	GetOrCreateCollection(ctx context.Context, name string) (*Collection, error)

	// Query embeds queryText and returns the top documents of the named
	// collection by cosine similarity, most similar first. Filters narrow
	// the candidate set before ranking. An empty result is not an error.
	Query(ctx context.Context, collection string, queryText string, limit int, filters ...Filter) ([]Document, error)

	// Add embeds and persists documents into the named collection.
	Add(ctx context.Context, collection string, documents []Document) error
}
