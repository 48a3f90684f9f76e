package logger

import (
	"io"
	"os"
)

// SetupLogger installs the process default logger. Logs go to stderr unless
// out is given, so the migrated document on stdout stays machine readable.
func SetupLogger(logLevel string, logJSON, logSource bool, out io.Writer) Logger {
	if out == nil {
		out = os.Stderr
	}
	Init(&Config{
		Level:      ParseLevel(logLevel),
		Output:     out,
		JSON:       logJSON,
		AddSource:  logSource,
		TimeFormat: "15:04:05",
	})
	return GetDefault()
}
