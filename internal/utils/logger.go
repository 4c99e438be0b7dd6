package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger. format is "console" or "json".
func InitLogger(level, format string) {
	InitLoggerTo(os.Stdout, level, format)
}

func InitLoggerTo(out io.Writer, level, format string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if strings.EqualFold(format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// LogEvent prints standardized log line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	log.Info().
		Str("module", strings.ToUpper(module)).
		Str("action", action).
		Str("request_id", strings.TrimSpace(requestID)).
		Msg(message)
}

// LogFailure is LogEvent at error level with the cause attached.
func LogFailure(requestID, module, action string, err error) {
	log.Error().
		Err(err).
		Str("module", strings.ToUpper(module)).
		Str("action", action).
		Str("request_id", strings.TrimSpace(requestID)).
		Msg("failed")
}
