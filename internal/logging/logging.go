package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger. "prod" (or "production") gives JSON output at
// info level; anything else gives colored console output at debug level.
// Output goes to stderr so CLI commands can print results on stdout.
func New(mode string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// Quiet returns a logger that only reports warnings and errors, for
// interactive commands where info chatter would interleave with output.
func Quiet(mode string) (*zap.Logger, error) {
	l, err := New(mode)
	if err != nil {
		return nil, err
	}
	return l.WithOptions(zap.IncreaseLevel(zap.WarnLevel)), nil
}
