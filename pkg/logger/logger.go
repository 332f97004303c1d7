// Package logx configures the process-global zerolog logger.
package logx

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Debug        bool `split_words:"true" default:"false"`
	PrettyFormat bool `split_words:"true" default:"false"`
}

// Init replaces the global logger. PrettyFormat switches to the human
// console writer for local runs; structured JSON otherwise.
func Init(conf Config) {
	var logger zerolog.Logger
	if conf.PrettyFormat {
		logger = zerolog.New(zerolog.NewConsoleWriter())
	} else {
		logger = zerolog.New(os.Stdout)
	}

	level := zerolog.InfoLevel
	if conf.Debug {
		level = zerolog.DebugLevel
	}

	log.Logger = logger.Level(level).With().Timestamp().Caller().Logger()
}
