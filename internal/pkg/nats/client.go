package nats

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/piresc/quizarena/internal/pkg/logger"
)

// Client publishes and subscribes JSON messages. A Client without a
// connection drops publishes, which is how NATS is disabled.
type Client struct {
	conn *nats.Conn
}

// NewClient connects to url, or returns a disabled client when url is empty
func NewClient(url, name string) (*Client, error) {
	if url == "" {
		return &Client{}, nil
	}

	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", logger.Err(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", logger.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &Client{conn: conn}, nil
}

// NewClientFromConn wraps an existing connection
func NewClientFromConn(conn *nats.Conn) *Client {
	return &Client{conn: conn}
}

// Enabled reports whether the client has a connection
func (c *Client) Enabled() bool {
	return c != nil && c.conn != nil
}

// GetConn returns the underlying connection, nil when disabled
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// Publish JSON-encodes message and sends it to subject
func (c *Client) Publish(subject string, message interface{}) error {
	if !c.Enabled() {
		return nil
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Subscribe registers handler on subject. It is a no-op when disabled.
func (c *Client) Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error) {
	if !c.Enabled() {
		return nil, nil
	}

	sub, err := c.conn.Subscribe(subject, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}
	return sub, nil
}

// Ping flushes the connection to verify the server is reachable
func (c *Client) Ping() error {
	if !c.Enabled() {
		return nil
	}
	return c.conn.FlushTimeout(2 * time.Second)
}

// Close drains and closes the connection
func (c *Client) Close() {
	if c.Enabled() {
		_ = c.conn.Drain()
	}
}
