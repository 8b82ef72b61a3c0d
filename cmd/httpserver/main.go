package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/nhdewitt/http-from-tcp/internal/config"
	"github.com/nhdewitt/http-from-tcp/internal/router"
	"github.com/nhdewitt/http-from-tcp/internal/server"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log = log.Level(cfg.LogLevel)

	rt := router.New(cfg.Directory, log.With().Str("component", "router").Logger())

	srv, err := server.Serve(server.Config{
		Addr:     cfg.Addr,
		MaxConns: cfg.MaxConns,
		Logger:   log.With().Str("component", "server").Logger(),
	}, rt.Route)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Addr).Msg("error starting server")
	}
	defer srv.Close()
	log.Info().
		Str("addr", srv.Addr().String()).
		Str("directory", cfg.Directory).
		Int("max_conns", cfg.MaxConns).
		Msg("server started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info().Stringer("signal", sig).Msg("server stopped")
}
