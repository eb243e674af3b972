package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging builds the process logger: JSON to stdout at the given
// level. An unparseable level falls back to info.
func SetupLogging(level string) *logrus.Logger {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: parsed,
	}

	return &logger
}
