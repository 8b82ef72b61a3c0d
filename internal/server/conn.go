package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog"

	httperrors "github.com/nhdewitt/http-from-tcp/internal/errors"
	"github.com/nhdewitt/http-from-tcp/internal/request"
	"github.com/nhdewitt/http-from-tcp/internal/response"
)

type connState int

const (
	connReading connState = iota
	connParsed
	connRouted
	connWriting
	connClosed
	connAborted
)

func (c connState) String() string {
	switch c {
	case connReading:
		return "reading"
	case connParsed:
		return "parsed"
	case connRouted:
		return "routed"
	case connWriting:
		return "writing"
	case connClosed:
		return "closed"
	case connAborted:
		return "aborted"
	default:
		return fmt.Sprintf("connState(%d)", int(c))
	}
}

// handle serves exactly one request on conn and always closes it.
func (s *Server) handle(conn net.Conn) {
	log := s.log.With().Str("remote", conn.RemoteAddr().String()).Logger()
	state := connReading

	defer func() {
		if r := recover(); r != nil {
			state = connAborted
			log.Error().Interface("panic", r).Msg("connection handler panicked")
		}
		if err := conn.Close(); err != nil {
			log.Debug().Err(err).Msg("error closing connection")
		}
		log.Debug().Stringer("state", state).Msg("connection done")
	}()

	req, err := request.RequestFromReader(conn)
	switch {
	case err == nil:
		state = connParsed
	case errors.Is(err, httperrors.EmptyRequest):
		state = connAborted
		return
	case errors.Is(err, httperrors.MalformedRequest):
		log.Warn().Err(err).Msg("malformed request")
		state = connWriting
		if werr := write(conn, response.NotFound(), log); werr != nil {
			state = connAborted
			return
		}
		state = connClosed
		return
	default:
		log.Warn().Err(err).Msg("error reading request")
		state = connAborted
		return
	}

	resp := s.handler(req)
	state = connRouted
	log.Debug().
		Str("method", req.RequestLine.Method).
		Str("target", req.RequestLine.RequestTarget).
		Int("status", int(resp.Status())).
		Msg("request routed")

	state = connWriting
	if err := write(conn, resp, log); err != nil {
		state = connAborted
		return
	}
	state = connClosed
}

func write(conn net.Conn, resp response.Response, log zerolog.Logger) error {
	if err := response.Encode(conn, resp); err != nil {
		log.Warn().Err(err).Msg("error writing response")
		return httperrors.New(httperrors.IOFailure, err)
	}
	return nil
}
