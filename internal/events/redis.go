package events

import (
	"context"
	"encoding/json"
	"fmt"
	"token-arena/internal/model"
	"token-arena/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Connect establishes a connection to Redis
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// MatchChannel is the pub/sub channel carrying one match's events
func MatchChannel(matchID int64) string {
	return fmt.Sprintf("match:%d:events", matchID)
}

// Subscriber streams the events of a single match
type Subscriber interface {
	SubscribeMatch(ctx context.Context, matchID int64) (<-chan *model.MatchEvent, func() error, error)
}

var (
	_ service.EventPublisher = (*RedisBroker)(nil)
	_ Subscriber             = (*RedisBroker)(nil)
)

// RedisBroker fans match events out over Redis pub/sub
type RedisBroker struct {
	client *redis.Client
	logger zerolog.Logger
}

func NewRedisBroker(client *redis.Client, logger zerolog.Logger) *RedisBroker {
	return &RedisBroker{client: client, logger: logger}
}

func (b *RedisBroker) PublishMatchEvent(ctx context.Context, event *model.MatchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal match event: %w", err)
	}
	if err := b.client.Publish(ctx, MatchChannel(event.MatchID), payload).Err(); err != nil {
		return fmt.Errorf("publish match event: %w", err)
	}
	return nil
}

// SubscribeMatch returns a channel of decoded events and a close func. The
// channel is closed once the subscription ends or ctx is done.
func (b *RedisBroker) SubscribeMatch(ctx context.Context, matchID int64) (<-chan *model.MatchEvent, func() error, error) {
	pubsub := b.client.Subscribe(ctx, MatchChannel(matchID))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("subscribe match %d: %w", matchID, err)
	}

	out := make(chan *model.MatchEvent, 16)
	go func() {
		defer close(out)
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				event := &model.MatchEvent{}
				if err := json.Unmarshal([]byte(msg.Payload), event); err != nil {
					b.logger.Warn().Err(err).Str("channel", msg.Channel).Msg("invalid match event payload")
					continue
				}
				select {
				case out <- event:
				default:
					b.logger.Warn().Int64("match_id", matchID).Msg("subscriber buffer full, dropping match event")
				}
			}
		}
	}()

	return out, pubsub.Close, nil
}
