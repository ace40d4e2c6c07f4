package kafka

import (
	"context"
	"encoding/json"
	"time"

	"rently-backend/internal/models"

	"github.com/segmentio/kafka-go"
)

// Publisher emits a message for every recorded ledger entry. It
// implements services.EntryPublisher.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

type entryRecordedEvent struct {
	EntryID    string    `json:"entry_id"`
	LeaseID    string    `json:"lease_id"`
	Kind       string    `json:"kind"`
	Amount     int64     `json:"amount"`
	Balance    int64     `json:"balance"`
	RecordedBy int       `json:"recorded_by"`
	RecordedAt time.Time `json:"recorded_at"`
}

func (p *Publisher) PublishEntryRecorded(ctx context.Context, lease *models.Lease, entry *models.LedgerEntry) error {
	data, err := json.Marshal(entryRecordedEvent{
		EntryID:    entry.ID.String(),
		LeaseID:    entry.LeaseID.String(),
		Kind:       string(entry.Kind),
		Amount:     entry.Amount,
		Balance:    lease.Balance,
		RecordedBy: entry.RecordedBy,
		RecordedAt: entry.CreatedAt,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(entry.LeaseID.String()),
		Value: data,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
