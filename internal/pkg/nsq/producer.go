package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/wellnest/internal/pkg/logger"
)

// Producer publishes JSON messages to nsqd
type Producer struct {
	producer *nsq.Producer
	address  string
}

// NewProducer connects to nsqd at address and fails if it does not answer a ping
func NewProducer(address string) (*Producer, error) {
	producer, err := nsq.NewProducer(address, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLoggerLevel(nsq.LogLevelWarning)

	p := &Producer{producer: producer, address: address}
	if err := p.Ping(); err != nil {
		producer.Stop()
		return nil, err
	}
	return p, nil
}

// Ping checks that nsqd is reachable
func (p *Producer) Ping() error {
	if err := p.producer.Ping(); err != nil {
		return fmt.Errorf("failed to ping NSQ daemon at %s: %w", p.address, err)
	}
	return nil
}

// Publish JSON-encodes message and sends it to topic
func (p *Producer) Publish(topic string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal %s message: %w", topic, err)
	}

	if err := p.producer.Publish(topic, body); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	logger.Debug("Published NSQ message", logger.String("topic", topic), logger.Int("bytes", len(body)))
	return nil
}

// Stop flushes and closes the connection
func (p *Producer) Stop() {
	p.producer.Stop()
}
