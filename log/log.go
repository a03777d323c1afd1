package log

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// DebugEnv is the environment variable which enables debug logging.
const DebugEnv = "SPIRAL_DEBUG"

var debug bool

// Logger is a global interface for spiral loggers
type Logger interface {
	Debug(...interface{})
	Info(...interface{})
}

func init() {
	var err error
	debug, err = strconv.ParseBool(os.Getenv(DebugEnv))
	if err != nil {
		debug = false
	}
}

// GetLogger returns a new logger instance
func GetLogger() *logrus.Logger {
	l := logrus.New()
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// Discard returns a logger which drops all entries.
func Discard() Logger {
	return discard{}
}

type discard struct{}

func (discard) Debug(...interface{}) {}
func (discard) Info(...interface{})  {}
