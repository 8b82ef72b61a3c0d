package server

import (
	"net"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/netutil"
)

const (
	DefaultAddr      = "127.0.0.1:4221"
	acceptRetryDelay = 10 * time.Millisecond
)

type Config struct {
	// Addr is the TCP address to bind, DefaultAddr when empty.
	Addr string
	// MaxConns caps concurrently served connections. Zero means no cap.
	MaxConns int
	Logger   zerolog.Logger
}

type Server struct {
	listener    net.Listener
	isListening atomic.Bool
	handler     Handler
	log         zerolog.Logger
}

// Serve binds cfg.Addr and starts accepting connections in the background.
// Each connection is served on its own goroutine. A bind failure is returned;
// accept failures after that are logged and the loop keeps going.
func Serve(cfg Config, handler Handler) (*Server, error) {
	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		listener = netutil.LimitListener(listener, cfg.MaxConns)
	}

	s := &Server{
		listener: listener,
		handler:  handler,
		log:      cfg.Logger,
	}
	s.isListening.Store(true)
	go s.listen()

	return s, nil
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Close stops accepting new connections. Connections already being served
// run to completion.
func (s *Server) Close() error {
	if !s.isListening.CompareAndSwap(true, false) {
		return nil
	}

	if s.listener != nil {
		return s.listener.Close()
	}

	return nil
}

func (s *Server) listen() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.isListening.Load() {
				s.log.Info().Msg("listener closed")
				return
			}
			s.log.Error().Err(err).Msg("error accepting connection")
			time.Sleep(acceptRetryDelay)
			continue
		}

		go s.handle(conn)
	}
}
