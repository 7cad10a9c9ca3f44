// logutil.go - Logging-Hilfsfunktionen auf Basis von log/slog
// Dieses Modul erstellt den Text-Handler mit gekuerzten Quellpfaden.
package logutil

import (
	"io"
	"log/slog"
	"path/filepath"
)

// NewLogger erstellt einen slog.Logger mit dem gegebenen Level
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	}))
}
