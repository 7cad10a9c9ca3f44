// config_test.go - Tests fuer die Environment-Konfiguration
package envconfig

import (
	"log/slog"
	"testing"
)

func TestVar(t *testing.T) {
	cases := map[string]string{
		"value":       "value",
		" value ":     "value",
		"\"quoted\"":  "quoted",
		"'quoted'":    "quoted",
		" \"value\" ": "value",
	}

	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			t.Setenv("KPLANE_TEST_VAR", input)
			if got := Var("KPLANE_TEST_VAR"); got != want {
				t.Errorf("Var = %q, erwartet %q", got, want)
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	t.Setenv("KPLANE_DEBUG", "")
	if got := LogLevel(); got != slog.LevelInfo {
		t.Errorf("LogLevel = %v, erwartet Info", got)
	}

	t.Setenv("KPLANE_DEBUG", "1")
	if got := LogLevel(); got != slog.LevelDebug {
		t.Errorf("LogLevel = %v, erwartet Debug", got)
	}
}

func TestNumThreads(t *testing.T) {
	t.Setenv("KPLANE_NUM_THREADS", "7")
	if got := NumThreads(); got != 7 {
		t.Errorf("NumThreads = %d, erwartet 7", got)
	}

	// Ungueltige Werte fallen auf den Default zurueck
	t.Setenv("KPLANE_NUM_THREADS", "not-a-number")
	if got := NumThreads(); got <= 0 {
		t.Errorf("NumThreads = %d, erwartet positiven Default", got)
	}
}
