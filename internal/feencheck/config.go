// Package feencheck validates files of FEEN records, one record per line.
package feencheck

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds feencheck command configuration.
type Config struct {
	Files      []string
	JSONOutput bool
	Quiet      bool
	LogLevel   string
	Timeout    time.Duration
}

type envConfig struct {
	JSONOutput bool          `env:"FEENCHECK_JSON"`
	Quiet      bool          `env:"FEENCHECK_QUIET"`
	LogLevel   string        `env:"FEENCHECK_LOG_LEVEL" envDefault:"warn"`
	Timeout    time.Duration `env:"FEENCHECK_TIMEOUT" envDefault:"1m"`
}

// ParseConfig reads the environment, then flags, into a Config. Remaining
// arguments are the files to check; none means standard input.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := env.Parse(&envCfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg := Config{
		JSONOutput: envCfg.JSONOutput,
		Quiet:      envCfg.Quiet,
		LogLevel:   envCfg.LogLevel,
		Timeout:    envCfg.Timeout,
	}
	fs.BoolVar(&cfg.JSONOutput, "json", cfg.JSONOutput, "write one JSON report per record (default: FEENCHECK_JSON)")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "only report invalid records (default: FEENCHECK_QUIET)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic log level: debug|info|warn|error (default: FEENCHECK_LOG_LEVEL or warn)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout (0 = none)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid -log-level %q: %w", cfg.LogLevel, err)
	}
	if cfg.Timeout < 0 {
		return Config{}, errors.New("-timeout must be >= 0")
	}
	cfg.Files = fs.Args()
	return cfg, nil
}
