package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/campusgg/events-api/internal/config"
)

// Init replaces the global zap logger. Use zap.L() afterwards.
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	switch environment {
	case config.EnvProduction:
		l, err = zap.NewProduction()
	case config.EnvTest:
		l = zap.NewNop()
	default:
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}
