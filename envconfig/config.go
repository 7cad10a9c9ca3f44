// config.go - Haupt-Konfigurationsfunktionen fuer kplane
//
// Dieses Modul enthaelt:
// - LogLevel: Gibt Log-Level zurueck (KPLANE_DEBUG)
// - NumThreads: Gibt Worker-Thread-Anzahl zurueck (KPLANE_NUM_THREADS)
// - Bool/Uint/Var: Utility-Getter fuer Environment-Variablen
package envconfig

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Var liest eine Environment-Variable und trimmt Whitespace und Quotes
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// Bool gibt eine Funktion zurueck, die einen Bool liest (Default: false)
func Bool(k string) func() bool {
	return func() bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return false
	}
}

// Uint gibt eine Funktion zurueck, die einen uint mit Default-Wert liest
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

var (
	// Debug aktiviert zusaetzliches Debug-Logging (KPLANE_DEBUG)
	Debug = Bool("KPLANE_DEBUG")
)

// LogLevel gibt das konfigurierte Log-Level zurueck
// Konfigurierbar via KPLANE_DEBUG
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if Debug() {
		level = slog.LevelDebug
	}
	return level
}

// NumThreads gibt die Anzahl der Worker-Threads zurueck
// Konfigurierbar via KPLANE_NUM_THREADS
// Default: Anzahl CPU-Kerne
func NumThreads() int {
	return int(Uint("KPLANE_NUM_THREADS", uint(runtime.NumCPU()))())
}
