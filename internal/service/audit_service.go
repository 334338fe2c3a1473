package service

import (
	"context"

	"ai-lessonplanner-be/internal/pkg/logger"
	"ai-lessonplanner-be/pkg/events"
	pkgNats "ai-lessonplanner-be/pkg/nats"
)

type IAuditService interface {
	Listen() error
}

// auditService consumes the generation event stream and writes an audit
// trail through the system logger. Runs beside the REST server; losing it
// never affects request handling.
type auditService struct {
	subscriber *pkgNats.Subscriber
	logger     logger.ILogger
}

func NewAuditService(subscriber *pkgNats.Subscriber, log logger.ILogger) IAuditService {
	return &auditService{
		subscriber: subscriber,
		logger:     log,
	}
}

// Listen attaches a durable consumer to every event subject. Durable so
// events published while the service is down are replayed on restart.
func (s *auditService) Listen() error {
	return s.subscriber.Subscribe("events.>", "content-audit", func(_ context.Context, event events.Event) error {
		s.logger.Info("audit", "event received", map[string]interface{}{
			"event_type": event.EventType(),
			"payload":    event.Payload(),
		})
		return nil
	})
}
