package logging

import (
	"github.com/bokysan/base64ace/internal/args"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"strings"
	"sync"
)

// contextHookAdded guards the caller hook: logrus keeps hooks on the global logger and SetupLogging
// runs once per command.
var contextHookAdded sync.Once

// SetupLogging configures the standard logrus logger from the general options.
func SetupLogging() error {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		contextHookAdded.Do(func() {
			log.AddHook(&ContextHook{})
		})
	}

	log.SetFormatter(NewFormatter(args.General.LogFormat, args.General.LogColor, args.General.LogFullTimestamp))
	log.SetReportCaller(args.General.LogReportCaller)

	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := os.OpenFile(*args.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return errors.Wrapf(err, "Could not open log file %s", *args.General.LogFile)
		}
		log.SetOutput(f)
	}

	log.Debugf("Verbosity level: %v", VerbosityName())
	if args.General.ConfigurationFilePath != "" {
		log.Debugf("Configuration read from %v", args.General.ConfigurationFilePath)
	}
	return nil
}

// NewFormatter creates a JSON formatter for format "json" and a text formatter otherwise.
func NewFormatter(format, color string, fullTimestamp bool) log.Formatter {
	if format == "json" {
		return &log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		}
	}

	color = strings.TrimSpace(strings.ToLower(color))
	return &log.TextFormatter{
		ForceColors:   color == "yes" || color == "true" || color == "1",
		DisableColors: color == "no" || color == "false" || color == "0",
		FullTimestamp: fullTimestamp,
	}
}
