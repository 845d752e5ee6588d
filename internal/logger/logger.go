package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

// Init configures the package-level logger. Level and format come from the
// environment so the binary needs no flags: LOG_LEVEL (debug|info|warn|error)
// and LOG_FORMAT (json|console).
func Init() {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL"))); err == nil && parsed != zerolog.NoLevel {
		level = parsed
	}

	out := zerolog.New(os.Stdout)
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "console" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	log = out.Level(level).With().Timestamp().Str("app", "barbershop").Logger()
}

func withFields(e *zerolog.Event, keysAndValues []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, keysAndValues[i+1])
	}
	return e
}

func Info(msg string, keysAndValues ...interface{}) {
	withFields(log.Info(), keysAndValues).Msg(msg)
}

func Infof(format string, v ...interface{}) {
	log.Info().Msgf(format, v...)
}

func Debug(msg string, keysAndValues ...interface{}) {
	withFields(log.Debug(), keysAndValues).Msg(msg)
}

func Debugf(format string, v ...interface{}) {
	log.Debug().Msgf(format, v...)
}

func Error(msg string, keysAndValues ...interface{}) {
	withFields(log.Error(), keysAndValues).Msg(msg)
}

func Errorf(format string, v ...interface{}) {
	log.Error().Msgf(format, v...)
}

func Fatal(msg string, keysAndValues ...interface{}) {
	withFields(log.Fatal(), keysAndValues).Msg(msg)
}

func Fatalf(format string, v ...interface{}) {
	log.Fatal().Msgf(format, v...)
}
