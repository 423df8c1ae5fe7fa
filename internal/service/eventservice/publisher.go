package eventservice

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/wagslane/go-rabbitmq"
)

type EventPublisher interface {
	PublishLoadSummary(ctx context.Context, e LoadSummaryEvent) error
}

const LoadSummaryTopic = "mermas.load.completed"

type MQPublisher struct {
	pub *rabbitmq.Publisher
}

func NewMQPublisher(pub *rabbitmq.Publisher) *MQPublisher {
	return &MQPublisher{pub: pub}
}

func (p *MQPublisher) PublishLoadSummary(ctx context.Context, e LoadSummaryEvent) error {
	if e.EventID == "" {
		e.EventID = newUUID()
	}
	if e.EventType == "" {
		e.EventType = "load_summary"
	}
	if e.Version == "" {
		e.Version = "1"
	}
	if e.Source == "" {
		e.Source = "etl-mermas"
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(e)
	if err != nil {
		return err
	}

	return p.pub.PublishWithContext(
		ctx,
		body,
		[]string{LoadSummaryTopic},
		rabbitmq.WithPublishOptionsContentType("application/json"),
		rabbitmq.WithPublishOptionsPersistentDelivery,
		rabbitmq.WithPublishOptionsExchange(ExchangeName),
		rabbitmq.WithPublishOptionsHeaders(rabbitmq.Table{
			"type":          e.EventType,
			"version":       e.Version,
			"correlationId": e.CorrelationID,
		}),
	)
}

func newUUID() string { return uuid.New().String() }
