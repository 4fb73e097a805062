package logging

import (
	log "github.com/sirupsen/logrus"
	"strings"
)

// SetVerbosity defines the verbosity level of the application. Every `-v` raises the level by one,
// starting at PanicLevel.
func SetVerbosity(v []bool) {
	verbosity := log.Level(len(v))
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	log.SetLevel(verbosity)
}

func VerbosityName() string {
	if log.GetLevel() == log.WarnLevel {
		return "WARN"
	}
	return strings.ToUpper(log.GetLevel().String())
}
