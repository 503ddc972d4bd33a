package events

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopPublisher(t *testing.T) {
	var p Publisher = Noop{}
	assert.NoError(t, p.Publish(context.Background(), Event{Kind: KindOccupancyReset}))
	assert.NoError(t, p.Close())
}

func TestEventJSON(t *testing.T) {
	event := Event{
		ID:             "b7c1",
		Kind:           KindBookingSucceeded,
		Timestamp:      time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Rooms:          []int{101, 102},
		TravelTime:     1,
		Message:        "Booked 2 room(s) on Floor 1",
		BookedRooms:    2,
		AvailableRooms: 95,
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "b7c1",
		"kind": "booking.succeeded",
		"timestamp": "2025-03-01T10:00:00Z",
		"rooms": [101, 102],
		"travelTime": 1,
		"message": "Booked 2 room(s) on Floor 1",
		"bookedRooms": 2,
		"availableRooms": 95
	}`, string(data))
}

// Needs a running server, e.g. NATS_TEST_URL=nats://localhost:4222
func TestNATSPublisher(t *testing.T) {
	url := os.Getenv("NATS_TEST_URL")
	if url == "" {
		t.Skip("NATS_TEST_URL not set")
	}

	sub, err := nats.Connect(url)
	require.NoError(t, err)
	defer sub.Close()

	received := make(chan *nats.Msg, 1)
	_, err = sub.ChanSubscribe("hotel.test", received)
	require.NoError(t, err)
	require.NoError(t, sub.Flush())

	p, err := NewNATSPublisher(url, "hotel.test")
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.Publish(context.Background(), Event{ID: "1", Kind: KindOccupancyReset}))

	select {
	case msg := <-received:
		var event Event
		require.NoError(t, json.Unmarshal(msg.Data, &event))
		assert.Equal(t, KindOccupancyReset, event.Kind)
	case <-time.After(2 * time.Second):
		t.Fatal("event not received")
	}
}
