package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging configures the process logger: JSON lines on stdout with the
// level reported under "loglevel".
func SetupLogging() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	})
	return logger
}
