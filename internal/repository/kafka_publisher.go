package repository

import (
	"context"
	"fmt"

	"TrendCast/internal/domain/models"
	pkgkafka "TrendCast/pkg/kafka"
)

// resultRow is one exported observation, history and forecast alike.
type resultRow struct {
	Date   models.Date `json:"date"`
	Value  float64     `json:"value"`
	Series string      `json:"series"` // history or forecast
}

type resultEnvelope struct {
	Window      int         `json:"window"`
	Horizon     int         `json:"horizon"`
	GeneratedAt string      `json:"generated_at"`
	Rows        []resultRow `json:"rows"`
}

// KafkaResultPublisher exports completed runs to a Kafka topic as the full
// combined history+forecast row set.
type KafkaResultPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaResultPublisher(producer *pkgkafka.Producer, topic string) *KafkaResultPublisher {
	return &KafkaResultPublisher{producer: producer, topic: topic}
}

func (p *KafkaResultPublisher) PublishResult(ctx context.Context, result *models.ForecastResult) error {
	rows := make([]resultRow, 0, len(result.Series)+len(result.Forecast))
	for _, pt := range result.Series {
		rows = append(rows, resultRow{Date: pt.Date, Value: pt.Value, Series: "history"})
	}
	for _, pt := range result.Forecast {
		rows = append(rows, resultRow{Date: pt.Date, Value: pt.Prediction, Series: "forecast"})
	}

	envelope := resultEnvelope{
		Window:      result.Window,
		Horizon:     result.Horizon,
		GeneratedAt: result.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		Rows:        rows,
	}
	key := []byte(fmt.Sprintf("w%d-h%d", result.Window, result.Horizon))
	if err := p.producer.Publish(ctx, p.topic, key, envelope); err != nil {
		return fmt.Errorf("publish result: %w", err)
	}
	return nil
}

func (p *KafkaResultPublisher) Close() error {
	return p.producer.Close()
}
