// Package echo implements a deliberately minimal TCP echo pair: a
// server that serves exactly one connection and a client that sends
// one payload and reads one reply. No framing, retries or timeouts
package echo

import (
	"context"
	"io"
	"net"

	perr "csvforge/internal/platform/errors"
	"csvforge/internal/platform/logger"
)

// ChunkSize bounds a single read on either side of the connection
const ChunkSize = 1024

// DefaultAddr matches the historical listen address of the service
const DefaultAddr = "127.0.0.1:5000"

// Server echoes one TCP session and stops
type Server struct {
	Addr string
	Log  *logger.Logger

	// set once the listener is bound, read by Addr-less tests
	ln net.Listener
}

// NewServer builds a Server for addr, defaulting to DefaultAddr
func NewServer(addr string) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	return &Server{Addr: addr, Log: logger.Named("echo.server")}
}

// Listen binds the address ahead of Serve so callers can learn the
// port before the session starts
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return perr.Unavailablef("binding %s: %v", s.Addr, err)
	}
	s.ln = ln
	return nil
}

// Serve accepts exactly one connection, echoes every chunk it reads
// back to the peer until EOF, then closes and returns. Binds lazily if
// Listen was not called. ctx cancellation unblocks Accept by closing
// the listener
func (s *Server) Serve(ctx context.Context) error {
	if s.ln == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}
	ln := s.ln
	defer ln.Close() //nolint:errcheck

	s.Log.Info().Str("addr", ln.Addr().String()).Msg("listening")

	if ctx != nil {
		stop := context.AfterFunc(ctx, func() { ln.Close() }) //nolint:errcheck
		defer stop()
	}

	conn, err := ln.Accept()
	if err != nil {
		if ctx != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		return perr.Unavailablef("accepting connection: %v", err)
	}
	defer conn.Close() //nolint:errcheck

	s.Log.Info().Str("peer", conn.RemoteAddr().String()).Msg("connected")
	return s.echo(conn)
}

// ListenAddr reports the bound address, empty before Serve
func (s *Server) ListenAddr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

func (s *Server) echo(conn net.Conn) error {
	buf := make([]byte, ChunkSize)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			if _, werr := conn.Write(buf[:n]); werr != nil {
				return perr.Unavailablef("writing echo: %v", werr)
			}
		}
		if err == io.EOF {
			s.Log.Info().Msg("peer closed, session done")
			return nil
		}
		if err != nil {
			return perr.Unavailablef("reading from peer: %v", err)
		}
	}
}
