package echo

import (
	"net"

	perr "csvforge/internal/platform/errors"
	"csvforge/internal/platform/logger"
)

// Client performs one round trip against an echo server
type Client struct {
	Addr string
	Log  *logger.Logger
}

// NewClient builds a Client for addr, defaulting to DefaultAddr
func NewClient(addr string) *Client {
	if addr == "" {
		addr = DefaultAddr
	}
	return &Client{Addr: addr, Log: logger.Named("echo.client")}
}

// Send dials, writes payload in full, performs exactly one read of up
// to ChunkSize bytes, closes, and returns that reply. A long payload
// therefore comes back truncated, which callers must accept
func (c *Client) Send(payload []byte) ([]byte, error) {
	conn, err := net.Dial("tcp", c.Addr)
	if err != nil {
		return nil, perr.Unavailablef("dialing %s: %v", c.Addr, err)
	}
	defer conn.Close() //nolint:errcheck

	if _, err := conn.Write(payload); err != nil {
		return nil, perr.Unavailablef("sending payload: %v", err)
	}
	c.Log.Debug().Int("bytes", len(payload)).Msg("payload sent")

	buf := make([]byte, ChunkSize)
	n, err := conn.Read(buf)
	if err != nil {
		return nil, perr.Unavailablef("reading reply: %v", err)
	}
	return buf[:n], nil
}
