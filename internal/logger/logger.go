package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	if strings.ToLower(os.Getenv("STOCKSIM_ENV")) == "dev" {
		logger, err = zap.NewDevelopment(opts...)
	} else {
		opts = append(opts, zap.Fields(zap.Field{
			Key:    "STOCKSIM_ENV",
			Type:   zapcore.StringType,
			String: os.Getenv("STOCKSIM_ENV"),
		}))
		logger, err = zap.NewProduction(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

const ContextKey = "LOGGER"

func AddToContext(ctx context.Context, log *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ContextKey, log)
}

func FromContext(ctx context.Context) *zap.SugaredLogger {
	log, ok := ctx.Value(ContextKey).(*zap.SugaredLogger)
	if !ok {
		log = New()
		log.Warn("no logger found in ctx - creating new one")
	}
	return log
}

func init() {
	logger := New()
	zap.ReplaceGlobals(logger.Desugar())
}
