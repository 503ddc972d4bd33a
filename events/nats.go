package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	maxConnectRetries = 5
	retryDelay        = 2 * time.Second
	flushTimeout      = 2 * time.Second
)

// NATSPublisher publishes events as JSON on a NATS subject
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewNATSPublisher connects to the NATS server at url, retrying a few times before giving up
func NewNATSPublisher(url, subject string) (*NATSPublisher, error) {
	var conn *nats.Conn
	var err error

	for i := 0; i < maxConnectRetries; i++ {
		conn, err = nats.Connect(url, nats.Name("cozy-room-booker"))
		if err == nil {
			log.Printf("Connected to NATS at %s, publishing on %s", url, subject)
			return &NATSPublisher{conn: conn, subject: subject}, nil
		}
		log.Printf("Failed to connect to NATS (attempt %d/%d): %v", i+1, maxConnectRetries, err)
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to NATS after %d attempts: %w", maxConnectRetries, err)
}

// Publish encodes event and publishes it, flushing before ctx expires
func (p *NATSPublisher) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error encoding event: %w", err)
	}

	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("error publishing event %s: %w", event.Kind, err)
	}

	// FlushWithContext refuses contexts without a deadline
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flushTimeout)
		defer cancel()
	}

	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("error flushing event %s: %w", event.Kind, err)
	}
	return nil
}

// Close drains pending messages and closes the connection
func (p *NATSPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Drain()
}
