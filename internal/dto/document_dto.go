package dto

import "github.com/google/uuid"

type IngestDocumentRequest struct {
	Collection string            `json:"collection" validate:"required"`
	Content    string            `json:"content" validate:"required"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

type IngestDocumentResponse struct {
	Id uuid.UUID `json:"id"`
}

// DocumentIngestMessage travels over the ingestion message bus from the
// accept path to the background embedding consumer.
type DocumentIngestMessage struct {
	Id         uuid.UUID         `json:"id"`
	Collection string            `json:"collection"`
	Content    string            `json:"content"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

type ListCollectionsResponse struct {
	Name  string `json:"name"`
	Space string `json:"space"`
	Count int64  `json:"count"`
}
