package specification

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByCollectionId scopes documents to a single collection
type ByCollectionId struct {
	CollectionId uuid.UUID
}

func (s ByCollectionId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("documents.collection_id = ?", s.CollectionId)
}

// MetadataEquals matches a single JSONB metadata key against one value.
// Values are compared as text, which is how the ingestion side stores them.
type MetadataEquals struct {
	Key   string
	Value string
}

func (s MetadataEquals) Apply(db *gorm.DB) *gorm.DB {
	query := fmt.Sprintf("documents.metadata ->> '%s' = ?", s.Key)
	return db.Where(query, s.Value)
}

// MetadataIn matches a JSONB metadata key against any of the given values
type MetadataIn struct {
	Key    string
	Values []string
}

func (s MetadataIn) Apply(db *gorm.DB) *gorm.DB {
	query := fmt.Sprintf("documents.metadata ->> '%s' IN ?", s.Key)
	return db.Where(query, s.Values)
}

// ByChunkOrder orders document chunks within their source document
type ByChunkOrder struct{}

func (s ByChunkOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("documents.chunk_index ASC")
}
