package source

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/kgcore/kgcore/pkg/model"
	"github.com/kgcore/kgcore/pkg/utils"
)

func init() {
	Register(SourceTypeKafka, NewKafkaSource)
}

// KafkaOptions holds Kafka source specific configuration.
type KafkaOptions struct {
	// Brokers is the list of Kafka broker addresses.
	Brokers []string

	// Topic is the Kafka topic to consume query requests from.
	Topic string

	// ConsumerGroup is the consumer group ID.
	ConsumerGroup string

	// AutoCommit enables automatic offset commit.
	AutoCommit bool

	// MaxPollRecords is the maximum number of records to poll at once.
	MaxPollRecords int
}

// DefaultKafkaOptions returns the default options.
func DefaultKafkaOptions() *KafkaOptions {
	return &KafkaOptions{
		Brokers:        []string{"localhost:9092"},
		Topic:          "kgcore-queries",
		ConsumerGroup:  "kgcore-query-index",
		AutoCommit:     false,
		MaxPollRecords: 100,
	}
}

// KafkaMessage is the wire shape of a query request carried on the topic.
type KafkaMessage struct {
	Query  model.QueryRequest `json:"query"`
	Offset int64              `json:"-"` // Kafka offset for acknowledgment
}

// KafkaSource implements QuerySource for Kafka-based query consumption.
type KafkaSource struct {
	name    string
	options *KafkaOptions
	logger  utils.Logger

	eventChan chan *QueryEvent
	stopCh    chan struct{}

	mu      sync.RWMutex
	running bool

	// consumer would be the actual Kafka consumer (e.g., sarama, confluent-kafka-go)
	// consumer kafka.Consumer
}

// NewKafkaSource creates a new Kafka source from configuration.
func NewKafkaSource(cfg *SourceConfig) (QuerySource, error) {
	opts := &KafkaOptions{
		Brokers:        cfg.GetStringSlice("brokers", []string{"localhost:9092"}),
		Topic:          cfg.GetString("topic", "kgcore-queries"),
		ConsumerGroup:  cfg.GetString("consumer_group", "kgcore-query-index"),
		AutoCommit:     cfg.GetBool("auto_commit", false),
		MaxPollRecords: cfg.GetInt("max_poll_records", 100),
	}

	return &KafkaSource{
		name:      cfg.Name,
		options:   opts,
		eventChan: make(chan *QueryEvent, opts.MaxPollRecords),
		stopCh:    make(chan struct{}),
	}, nil
}

// NewKafkaSourceWithOptions creates a new Kafka source with explicit options.
func NewKafkaSourceWithOptions(name string, opts *KafkaOptions, logger utils.Logger) *KafkaSource {
	if opts == nil {
		opts = DefaultKafkaOptions()
	}
	if logger == nil {
		logger = utils.NewDefaultLogger(utils.LevelInfo, nil)
	}

	return &KafkaSource{
		name:      name,
		options:   opts,
		logger:    logger,
		eventChan: make(chan *QueryEvent, opts.MaxPollRecords),
		stopCh:    make(chan struct{}),
	}
}

// SetLogger sets the logger.
func (s *KafkaSource) SetLogger(logger utils.Logger) {
	s.logger = logger
}

// Type returns the source type.
func (s *KafkaSource) Type() SourceType {
	return SourceTypeKafka
}

// Name returns the source instance name.
func (s *KafkaSource) Name() string {
	return s.name
}

// Start starts the Kafka consumer.
func (s *KafkaSource) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("Kafka source %s starting with brokers=%v, topic=%s, group=%s",
			s.name, s.options.Brokers, s.options.Topic, s.options.ConsumerGroup)
	}

	// TODO: Initialize actual Kafka consumer here
	// Example with sarama:
	// config := sarama.NewConfig()
	// config.Consumer.Group.Rebalance.Strategy = sarama.BalanceStrategyRoundRobin
	// consumer, err := sarama.NewConsumerGroup(s.options.Brokers, s.options.ConsumerGroup, config)
	// if err != nil {
	//     return err
	// }
	// s.consumer = consumer

	go s.consumeLoop(ctx)
	return nil
}

// Stop stops the Kafka consumer.
func (s *KafkaSource) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)

	// TODO: Close actual Kafka consumer
	// if s.consumer != nil {
	//     return s.consumer.Close()
	// }

	return nil
}

// Events returns the query event channel.
func (s *KafkaSource) Events() <-chan *QueryEvent {
	return s.eventChan
}

// Ack acknowledges a query has been resolved. For Kafka this commits the
// message offset.
func (s *KafkaSource) Ack(ctx context.Context, event *QueryEvent) error {
	// TODO: Commit Kafka offset
	// offset := event.AckToken.(int64)
	// return s.consumer.CommitOffset(s.options.Topic, partition, offset)

	if s.logger != nil {
		s.logger.Debug("Kafka source %s acked query %s", s.name, event.ID)
	}
	return nil
}

// Nack indicates a query failed to resolve. For Kafka this could send to a
// dead letter queue or retry topic.
func (s *KafkaSource) Nack(ctx context.Context, event *QueryEvent, reason string) error {
	// TODO: Send to dead letter queue or retry topic
	// dlqTopic := s.options.Topic + ".dlq"
	// return s.producer.Send(dlqTopic, event.Query)

	if s.logger != nil {
		s.logger.Warn("Kafka source %s nacked query %s: %s", s.name, event.ID, reason)
	}
	return nil
}

// HealthCheck checks the Kafka connection.
func (s *KafkaSource) HealthCheck(ctx context.Context) error {
	// TODO: Check Kafka broker connectivity
	// return s.consumer.Ping()
	return nil
}

// consumeLoop continuously consumes messages from Kafka.
func (s *KafkaSource) consumeLoop(ctx context.Context) {
	// TODO: Implement actual Kafka consumption
	// This is a placeholder showing the expected flow

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		default:
			// TODO: Poll messages from Kafka
			// messages, err := s.consumer.Poll(100)
			// if err != nil {
			//     s.logger.Error("Kafka poll error: %v", err)
			//     continue
			// }
			//
			// for _, msg := range messages {
			//     query, err := s.parseMessage(msg.Value)
			//     if err != nil {
			//         s.logger.Error("Failed to parse Kafka message: %v", err)
			//         continue
			//     }
			//
			//     event := NewQueryEvent(query, SourceTypeKafka, s.name).
			//         WithAckToken(msg.Offset).
			//         WithMetadata("partition", strconv.Itoa(int(msg.Partition))).
			//         WithMetadata("offset", strconv.FormatInt(msg.Offset, 10))
			//
			//     select {
			//     case s.eventChan <- event:
			//     case <-ctx.Done():
			//         return
			//     case <-s.stopCh:
			//         return
			//     }
			// }

			// Placeholder: wait for stop signal
			select {
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			}
		}
	}
}

// parseMessage parses a Kafka message into a QueryRequest.
func (s *KafkaSource) parseMessage(data []byte) (model.QueryRequest, error) {
	var msg KafkaMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return model.QueryRequest{}, err
	}
	return msg.Query, nil
}
