package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func Get() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetOutput(os.Stdout)
	logg.SetLevel(parseLevel(os.Getenv("LOG_LEVEL")))
}

// Configure re-reads LOG_LEVEL, for callers that load a .env after init.
func Configure(level string) {
	logg.SetLevel(parseLevel(level))
}

func parseLevel(v string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(v))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// For returns an entry tagged with the module and layer, the structured
// equivalent of a "[module][layer]" prefix.
func For(module, layer string) *logrus.Entry {
	return logg.WithFields(logrus.Fields{"module": module, "layer": layer})
}

func LogError(entry *logrus.Entry, funcName string, data any, err error) {
	fields := logrus.Fields{"funcName": funcName}
	if data != nil {
		fields["data"] = data
	}
	entry.WithFields(fields).Error(err.Error())
}
