package messaging

import (
	"context"
	"log/slog"
	"strings"

	"cowork-booking/internal/pkg/config"
	"cowork-booking/internal/pkg/errs"
)

const (
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
	BrokerLog      = "log"
)

type Message struct {
	Topic   string
	Key     string
	Payload []byte
	Headers map[string]string
}

// Publisher delivers a message to the event bus. Publish must be safe to call
// from a single dispatcher goroutine; implementations are not required to be
// safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

func NewPublisher(cfg config.NotifyConfig) (Publisher, error) {
	switch cfg.Broker {
	case BrokerKafka:
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.TopicPrefix)
	case BrokerRabbitMQ:
		return NewRabbitPublisher(cfg.RabbitURL, cfg.RabbitExchange)
	case BrokerLog, "":
		return NewLogPublisher(slog.Default()), nil
	default:
		return nil, errs.Newf("unknown notification broker %q", cfg.Broker)
	}
}

func SplitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// LogPublisher only logs. Used in development and tests.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, msg Message) error {
	p.logger.InfoContext(ctx, "notification published",
		slog.String("topic", msg.Topic),
		slog.String("key", msg.Key),
		slog.Int("bytes", len(msg.Payload)))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
