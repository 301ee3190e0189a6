package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Config holds the log section of the application configuration
type Config struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// New builds a zap logger. Format "json" uses the production encoder, "text"
// the human readable console encoder.
func New(config Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(strings.ToLower(config.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", config.Level, err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = level

	switch strings.ToLower(config.Format) {
	case "json":
	case "text":
		zapConfig.Encoding = "console"
		zapConfig.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q: must be text or json", config.Format)
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
