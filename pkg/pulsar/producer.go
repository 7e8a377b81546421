package pulsar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/cenkalti/backoff/v4"

	"github.com/klwxsrx/project-manager/pkg/log"
	"github.com/klwxsrx/project-manager/pkg/message"
)

const (
	defaultConnectionTimeout = 20 * time.Second

	messageIDPropertyName   = "message_id"
	messageTypePropertyName = "message_type"

	healthCheckTopic = "non-persistent://public/default/health-check"
)

type (
	Config struct {
		Address           string
		ConnectionTimeout time.Duration
	}

	// Producer publishes messages, creating one pulsar producer per topic.
	Producer struct {
		client pulsar.Client

		mu        sync.Mutex
		producers map[message.Topic]pulsar.Producer
	}
)

func NewProducer(config *Config, logger log.Logger) (*Producer, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL:    fmt.Sprintf("pulsar://%s", config.Address),
		Logger: newLoggerAdapter(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("create pulsar client: %w", err)
	}

	connTimeout := defaultConnectionTimeout
	if config.ConnectionTimeout > 0 {
		connTimeout = config.ConnectionTimeout
	}

	err = testConnection(client, connTimeout)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	return &Producer{
		client:    client,
		producers: make(map[message.Topic]pulsar.Producer),
	}, nil
}

func (p *Producer) Send(ctx context.Context, msg *message.Message) error {
	producer, err := p.getOrCreateProducer(msg.Topic)
	if err != nil {
		return err
	}

	_, err = producer.Send(ctx, &pulsar.ProducerMessage{
		Payload: msg.Payload,
		Key:     msg.Key,
		Properties: map[string]string{
			messageIDPropertyName:   msg.ID.String(),
			messageTypePropertyName: msg.Type,
		},
	})
	if err != nil {
		return fmt.Errorf("send message to %s: %w", msg.Topic, err)
	}

	return nil
}

func (p *Producer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, producer := range p.producers {
		producer.Close()
	}
	p.client.Close()
}

func (p *Producer) getOrCreateProducer(topic message.Topic) (pulsar.Producer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	producer, ok := p.producers[topic]
	if ok {
		return producer, nil
	}

	producer, err := p.client.CreateProducer(pulsar.ProducerOptions{
		Topic: string(topic),
	})
	if err != nil {
		return nil, fmt.Errorf("create producer for topic %s: %w", topic, err)
	}

	p.producers[topic] = producer
	return producer, nil
}

func testConnection(client pulsar.Client, connTimeout time.Duration) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = connTimeout / 4
	eb.MaxElapsedTime = connTimeout

	return backoff.Retry(func() error {
		producer, err := client.CreateProducer(pulsar.ProducerOptions{
			Topic: healthCheckTopic,
		})
		if err == nil {
			producer.Close()
		}
		return err
	}, eb)
}
