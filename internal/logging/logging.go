// Package logging builds the zap loggers used by barsctl and adapts them to
// barskema.Reporter.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/edubars/barskema"
)

// New returns a production logger writing JSON to stderr at level.
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Reporter logs every reported issue. Warnings go to Warn, errors to Error
// and ignored issues to Debug.
func Reporter(logger *zap.Logger) barskema.Reporter {
	return barskema.ReporterFunc(func(it barskema.Issue) {
		fields := []zap.Field{
			zap.String("code", it.Code),
			zap.String("path", it.Path),
		}
		if it.Type != "" {
			fields = append(fields, zap.String("type", it.Type))
		}
		if it.Field != "" {
			fields = append(fields, zap.String("field", it.Field))
		}
		if it.Rule != "" {
			fields = append(fields, zap.String("rule", it.Rule))
		}
		if keys, ok := it.Params["keys"].([]string); ok {
			fields = append(fields, zap.Strings("keys", keys))
		}
		if key, ok := it.Params["key"].(string); ok && key != "" {
			fields = append(fields, zap.String("key", key))
		}
		switch it.Severity {
		case barskema.Error:
			logger.Error(it.Message, fields...)
		case barskema.Ignore:
			logger.Debug(it.Message, fields...)
		default:
			logger.Warn(it.Message, fields...)
		}
	})
}
