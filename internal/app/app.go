package app

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/vk/riggraph/internal/config"
	"github.com/vk/riggraph/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
	now    func() time.Time
}

// NewApp is the constructor for the main application. DOT text goes to outW
// and logs go to logW.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loader: loader,
		now:    time.Now,
	}
}

// WithClock replaces the clock used for generated captions.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "mode", a.config.Mode)
}
