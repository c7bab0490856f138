// ABOUTME: Logrus setup for the wellness CLI.
// ABOUTME: Logs go to a rotating file so stdout stays reserved for command output.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	LogFile  string
	LogLevel string
	// Verbose mirrors log output to stderr.
	Verbose bool
}

// Setup configures the global logrus logger. The returned closer flushes
// and closes the log file, if any.
func Setup(params SetupParams) io.Closer {
	logrus.SetLevel(GetLevel(params.LogLevel))
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if params.LogFile == "" {
		logrus.SetOutput(os.Stderr)
		if !params.Verbose {
			logrus.SetLevel(logrus.ErrorLevel)
		}
		return io.NopCloser(nil)
	}

	if !strings.HasSuffix(params.LogFile, ".log") {
		params.LogFile += ".log"
	}
	_ = os.MkdirAll(filepath.Dir(params.LogFile), 0750)

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		Compress:   true,
	}

	if params.Verbose {
		logrus.SetOutput(io.MultiWriter(os.Stderr, lumberJackLogger))
	} else {
		logrus.SetOutput(lumberJackLogger)
	}
	return lumberJackLogger
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}

// For returns a logger tagged with the given component name.
func For(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}
