package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"basera/config"
	"basera/infras/kafka"
	"basera/infras/otel"
	"basera/shared/constant"
)

type BookingEvent struct {
	BookingID  string `json:"booking_id"`
	PropertyID string `json:"property_id"`
	BedID      string `json:"bed_id"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

type InvoiceEvent struct {
	InvoiceID   string `json:"invoice_id"`
	BookingID   string `json:"booking_id"`
	PropertyID  string `json:"property_id"`
	PeriodStart string `json:"period_start"`
	TotalAmount string `json:"total_amount"`
}

type RefundEvent struct {
	BookingID    string `json:"booking_id"`
	PropertyID   string `json:"property_id"`
	RefundAmount string `json:"refund_amount"`
	ProcessedAt  string `json:"processed_at"`
}

// Publisher emits domain events after the owning transaction commits.
// Publishing is best effort: failures are logged, never propagated back into
// the billing flow.
type Publisher interface {
	BookingChanged(ctx context.Context, event BookingEvent)
	InvoiceGenerated(ctx context.Context, event InvoiceEvent)
	RefundProcessed(ctx context.Context, event RefundEvent)
}

type kafkaPublisher struct {
	client kafka.Client
	otel   otel.Otel
}

func NewPublisher(cfg *config.Config, client kafka.Client, ot otel.Otel) Publisher {
	if !cfg.Kafka.Enable {
		return &noopPublisher{}
	}

	return &kafkaPublisher{
		client: client,
		otel:   ot,
	}
}

func (p *kafkaPublisher) BookingChanged(ctx context.Context, event BookingEvent) {
	p.send(ctx, constant.EventTopicBooking, event.BookingID, event)
}

func (p *kafkaPublisher) InvoiceGenerated(ctx context.Context, event InvoiceEvent) {
	p.send(ctx, constant.EventTopicInvoice, event.InvoiceID, event)
}

func (p *kafkaPublisher) RefundProcessed(ctx context.Context, event RefundEvent) {
	p.send(ctx, constant.EventTopicRefund, event.BookingID, event)
}

func (p *kafkaPublisher) send(ctx context.Context, topic, key string, value any) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".send")
	defer scope.End()

	message := kafka.Message{
		Key:   key,
		Value: value,
	}

	if err := p.client.SendMessages(ctx, topic, message); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("topic", topic).Str("key", key).Msg("failed to publish event")
	}
}

type noopPublisher struct{}

func (n *noopPublisher) BookingChanged(_ context.Context, _ BookingEvent) {}

func (n *noopPublisher) InvoiceGenerated(_ context.Context, _ InvoiceEvent) {}

func (n *noopPublisher) RefundProcessed(_ context.Context, _ RefundEvent) {}
