package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a service-scoped logger. Every event carries the service name
// and an RFC3339 timestamp so log lines from different components can be
// interleaved on one stream.
func New(service string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	return zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", service).
		Logger()
}
