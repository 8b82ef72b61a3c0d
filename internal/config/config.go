package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/nhdewitt/http-from-tcp/internal/server"
)

type Config struct {
	Addr      string
	Directory string
	MaxConns  int
	LogLevel  zerolog.Level
}

// Load parses command line flags (without the program name). Usage and parse
// errors are written to output.
func Load(args []string, output io.Writer) (Config, error) {
	var (
		cfg      Config
		logLevel string
	)

	fs := flag.NewFlagSet("httpserver", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Directory, "directory", "", "directory to serve /files/ from")
	fs.StringVar(&cfg.Addr, "addr", server.DefaultAddr, "listen address (host:port)")
	fs.IntVar(&cfg.MaxConns, "max-conns", 0, "maximum concurrent connections, 0 for no limit")
	fs.StringVar(&logLevel, "log-level", zerolog.LevelInfoValue, "log level (trace, debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return Config{}, fmt.Errorf("invalid log level: %w", err)
	}
	cfg.LogLevel = level

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("listen address must not be empty")
	}
	if c.MaxConns < 0 {
		return fmt.Errorf("max-conns must be >= 0, got %d", c.MaxConns)
	}
	if c.Directory != "" {
		info, err := os.Stat(c.Directory)
		if err != nil {
			return fmt.Errorf("served directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("served directory: %s is not a directory", c.Directory)
		}
	}
	return nil
}
