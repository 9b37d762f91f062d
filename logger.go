package msdfatlas

import (
	"log/slog"

	"github.com/gogpu/msdfatlas/internal/logx"
)

// SetLogger configures the logger for msdfatlas and all its sub-packages.
// By default, msdfatlas produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent
// default.
//
// Log levels used:
//   - [slog.LevelDebug]: skipped glyphs, closed shelf rows, width growth
//   - [slog.LevelInfo]: final atlas dimensions and glyph counts
//
// Example:
//
//	msdfatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logx.Set(l)
}

// Logger returns the current logger used by msdfatlas.
func Logger() *slog.Logger {
	return logx.Logger()
}
