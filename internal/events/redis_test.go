package events

import (
	"context"
	"testing"
	"time"
	"token-arena/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate redis container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	return "redis://" + endpoint
}

func TestMatchChannel(t *testing.T) {
	assert.Equal(t, "match:42:events", MatchChannel(42))
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestRedisBroker_PublishSubscribe(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := Connect(ctx, setupRedis(t))
	require.NoError(t, err)
	defer client.Close()

	broker := NewRedisBroker(client, zerolog.Nop())

	events, closeSub, err := broker.SubscribeMatch(ctx, 42)
	require.NoError(t, err)
	defer closeSub()

	p2 := int64(8)
	match := &model.Match{ID: 42, Player1ID: 7, Player2ID: &p2, BetAmount: 50, Status: model.MatchInProgress}
	require.NoError(t, broker.PublishMatchEvent(ctx, model.NewMatchEvent(model.EventMatchJoined, match)))

	// other matches are not delivered
	other := &model.Match{ID: 43, Player1ID: 9, BetAmount: 10, Status: model.MatchWaiting}
	require.NoError(t, broker.PublishMatchEvent(ctx, model.NewMatchEvent(model.EventMatchCreated, other)))

	select {
	case event := <-events:
		assert.Equal(t, model.EventMatchJoined, event.Type)
		assert.Equal(t, int64(42), event.MatchID)
		assert.Equal(t, int64(8), *event.Player2ID)
	case <-ctx.Done():
		t.Fatal("no event received")
	}

	select {
	case event := <-events:
		t.Fatalf("unexpected event for match %d", event.MatchID)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestRedisBroker_ChannelClosesWithContext(t *testing.T) {
	ctx := context.Background()

	client, err := Connect(ctx, setupRedis(t))
	require.NoError(t, err)
	defer client.Close()

	broker := NewRedisBroker(client, zerolog.Nop())

	subCtx, cancel := context.WithCancel(ctx)
	events, closeSub, err := broker.SubscribeMatch(subCtx, 1)
	require.NoError(t, err)
	defer closeSub()

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("channel was not closed")
	}
}
