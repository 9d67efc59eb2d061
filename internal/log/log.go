package log

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/nullseed/logruseq"
	"github.com/sirupsen/logrus"

	"github.com/beesaferoot/property-seed/internal/config"
)

var entry = logrus.NewEntry(logrus.StandardLogger())

type Logger = *logrus.Entry

func InitLogger(config *config.Config) {
	InitLoggerWithOutput(config, os.Stdout)
}

func InitLoggerWithOutput(config *config.Config, out io.Writer) {
	logger := &logrus.Logger{
		Out:   out,
		Hooks: make(logrus.LevelHooks),
		Level: logrus.InfoLevel,
	}

	if config.IsProduction() {
		logger.Formatter = &logrus.JSONFormatter{}
	} else {
		logger.Formatter = &logrus.TextFormatter{
			FullTimestamp:    true,
			QuoteEmptyFields: true,
		}
	}

	level, err := logrus.ParseLevel(strings.ToLower(config.LogLevel.Value))
	if err != nil {
		logger.Warnf("invalid LOG_LEVEL '%s', defaulting to info", config.LogLevel.Value)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if config.SeqUrl.Value != "" {
		seqHook := logruseq.NewSeqHook(config.SeqUrl.Value, logruseq.OptionAPIKey(config.SeqToken.Value))
		logger.AddHook(seqHook)
	}

	entry = logger.WithField("TraceId", uuid.New().String())
}

func AddGlobalField(name string, value interface{}) Logger {
	entry = entry.WithField(name, value)
	return entry
}

func GetLogger() Logger {
	return entry
}
