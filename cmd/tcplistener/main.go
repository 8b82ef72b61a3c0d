package main

import (
	"errors"
	"flag"
	"net"
	"os"

	"github.com/rs/zerolog"

	httperrors "github.com/nhdewitt/http-from-tcp/internal/errors"
	"github.com/nhdewitt/http-from-tcp/internal/request"
)

// tcplistener accepts one connection at a time and logs the decoded request.
// Nothing is written back.
func main() {
	addr := flag.String("addr", "127.0.0.1:4221", "listen address (host:port)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	listener, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatal().Err(err).Msg("error listening")
	}
	defer listener.Close()

	log.Info().Str("addr", *addr).Msg("listening for TCP traffic")
	for {
		c, err := listener.Accept()
		if err != nil {
			log.Error().Err(err).Msg("error accepting connection")
			continue
		}
		clog := log.With().Str("remote", c.RemoteAddr().String()).Logger()
		clog.Info().Msg("connection accepted")

		req, err := request.RequestFromReader(c)
		switch {
		case errors.Is(err, httperrors.EmptyRequest):
			clog.Info().Msg("empty request")
		case err != nil:
			clog.Warn().Err(err).Msg("error parsing request")
		default:
			clog.Info().
				Str("method", req.RequestLine.Method).
				Str("target", req.RequestLine.RequestTarget).
				Str("version", req.RequestLine.HttpVersion).
				Strs("headers", req.Headers).
				Int("body_bytes", len(req.Body)).
				Msg("request")
		}
		c.Close()
		clog.Info().Msg("connection closed")
	}
}
