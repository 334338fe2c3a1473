package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-lessonplanner-be/internal/dto"
	"ai-lessonplanner-be/pkg/events"
	pkgNats "ai-lessonplanner-be/pkg/nats"
	"ai-lessonplanner-be/pkg/store"
	"ai-lessonplanner-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Chunking parameters for ingested documents.
const (
	chunkSize    = 1500
	chunkOverlap = 200
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	contextStore   store.Store
	eventPublisher *pkgNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	contextStore store.Store,
	eventPublisher *pkgNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		contextStore:   contextStore,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.DocumentIngestMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal ingest message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Embedding document %s into collection %s", payload.Id, payload.Collection)

	metadata := make(map[string]interface{}, len(payload.Metadata)+1)
	for k, v := range payload.Metadata {
		metadata[k] = v
	}
	metadata["source_id"] = payload.Id.String()

	chunks := utils.SplitText(payload.Content, chunkSize, chunkOverlap)
	docs := make([]store.Document, len(chunks))
	for i, chunk := range chunks {
		docs[i] = store.Document{
			Content:  chunk,
			Metadata: metadata,
		}
	}

	if err := cs.contextStore.Add(ctx, payload.Collection, docs); err != nil {
		log.Printf("[ERROR] Failed to store document %s: %v", payload.Id, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	if cs.eventPublisher != nil {
		evt := events.NewDocumentIngestedEvent(payload.Collection, payload.Id.String(), len(chunks))
		// Auxiliary event, never fail ingestion over it
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish DOCUMENT_INGESTED event: %v", err)
		}
	}

	log.Printf("[INFO] Stored %d chunks for document %s", len(chunks), payload.Id)
	msg.Ack()
}
