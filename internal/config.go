package internal

import (
	"fmt"
	"log/slog"
	"os"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config carries the process-wide knobs of the support core. Every field has
// a default so a consuming program that sets nothing still gets a working
// library; a .env file in the working directory is honored when present.
type Config struct {
	// ForceSerial makes NewOwner ignore an injected distributed backend and
	// run single-process. Used to replay parallel runs on a workstation.
	ForceSerial bool `env:"SIM_FORCE_SERIAL,default=false"`

	// RNGSeed seeds the default Gaussian sampler; zero means nondeterministic.
	RNGSeed uint64 `env:"SIM_RNG_SEED,default=0"`

	LogLevel string `env:"SIM_LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ParseLevel maps a config log level onto a slog level. Unknown values get
// Info, matching the Config default.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the library's fallback logger, honoring SIM_LOG_LEVEL.
// Callers that already have a logger inject it instead.
func NewLogger() *slog.Logger {
	level := slog.LevelInfo
	if cfg, err := Load(); err == nil {
		level = ParseLevel(cfg.LogLevel)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
