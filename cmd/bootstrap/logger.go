package bootstrap

import (
	"log/slog"
	"os"

	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// WithSlogEvents routes fx's own lifecycle events through the app logger.
var WithSlogEvents = fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
	l := &fxevent.SlogLogger{Logger: logger.With("component", "fx")}
	l.UseLogLevel(slog.LevelDebug)
	return l
})

// NewLogger also installs the logger as slog's default. Release mode logs
// JSON, anything else logs text.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := logging.New(cfg.Log, os.Stdout, gin.Mode() == gin.ReleaseMode)
	slog.SetDefault(logger)
	return logger
}
