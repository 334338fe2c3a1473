package events

import "time"

// Event type codes published by the content generation services.
const (
	TypeContentGenerated = "CONTENT_GENERATED"
	TypeContentNotFound  = "CONTENT_NOT_FOUND"
	TypeDocumentIngested = "DOCUMENT_INGESTED"
)

// NewContentGeneratedEvent records a successful generation run.
func NewContentGeneratedEvent(contentType, subject, topic, grade string, elapsed time.Duration) Event {
	return BaseEvent{
		Type: TypeContentGenerated,
		Data: map[string]interface{}{
			"content_type": contentType,
			"subject":      subject,
			"topic":        topic,
			"grade":        grade,
			"elapsed_ms":   elapsed.Milliseconds(),
		},
		OccurredAt: time.Now(),
	}
}

// NewContentNotFoundEvent records a run where the model returned nothing usable.
func NewContentNotFoundEvent(contentType, subject, topic, grade string) Event {
	return BaseEvent{
		Type: TypeContentNotFound,
		Data: map[string]interface{}{
			"content_type": contentType,
			"subject":      subject,
			"topic":        topic,
			"grade":        grade,
		},
		OccurredAt: time.Now(),
	}
}

// NewDocumentIngestedEvent records a document landing in a collection.
func NewDocumentIngestedEvent(collection string, documentID string, chunks int) Event {
	return BaseEvent{
		Type: TypeDocumentIngested,
		Data: map[string]interface{}{
			"collection":  collection,
			"document_id": documentID,
			"chunks":      chunks,
		},
		OccurredAt: time.Now(),
	}
}
