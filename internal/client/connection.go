package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/yourusername/deskwm/internal/models"
)

// Connection is one unix socket to the server carrying newline-delimited
// envelopes. Round trips on it must not overlap.
type Connection struct {
	socketPath string
	conn       net.Conn
	enc        *json.Encoder
	dec        *json.Decoder
}

// NewConnection returns an unconnected Connection for socketPath
func NewConnection(socketPath string) *Connection {
	return &Connection{socketPath: socketPath}
}

// Connect dials the socket, giving up when ctx ends
func (c *Connection) Connect(ctx context.Context) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to connect to socket %s: %w", c.socketPath, err)
	}
	c.conn = conn
	c.enc = json.NewEncoder(conn) // Encode terminates each envelope with '\n'
	c.dec = json.NewDecoder(conn)
	return nil
}

// Close drops the socket; the next Connect dials a fresh one
func (c *Connection) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn, c.enc, c.dec = nil, nil, nil
	return err
}

// IsConnected reports whether a socket is open
func (c *Connection) IsConnected() bool {
	return c.conn != nil
}

// RoundTrip writes req and reads the matching response. Cancelling ctx
// unblocks the pending read. Any failure closes the socket, since a
// half-read stream cannot be resynchronized.
func (c *Connection) RoundTrip(ctx context.Context, req *models.MessageEnvelope) (*models.Response, error) {
	if c.conn == nil {
		return nil, errors.New("not connected")
	}

	deadline, _ := ctx.Deadline()
	if err := c.conn.SetDeadline(deadline); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to set deadline: %w", err)
	}
	conn := c.conn
	stop := context.AfterFunc(ctx, func() {
		conn.SetDeadline(time.Unix(1, 0))
	})
	defer stop()

	resp, err := c.exchange(req)
	if err != nil {
		c.Close()
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled or timed out: %w", ctx.Err())
		}
		// The socket deadline can fire a moment before the context's own timer
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return nil, fmt.Errorf("request timed out: %w", context.DeadlineExceeded)
		}
		return nil, err
	}
	return resp, nil
}

func (c *Connection) exchange(req *models.MessageEnvelope) (*models.Response, error) {
	if err := c.enc.Encode(req); err != nil {
		return nil, fmt.Errorf("failed to write request: %w", err)
	}

	var envelope models.MessageEnvelope
	if err := c.dec.Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case envelope.Type != "response":
		return nil, fmt.Errorf("expected response, got %q", envelope.Type)
	case envelope.Response == nil:
		return nil, errors.New("response envelope has no response")
	case envelope.Response.ID != req.Request.ID:
		return nil, fmt.Errorf("response id %s does not match request %s", envelope.Response.ID, req.Request.ID)
	}
	return envelope.Response, nil
}
