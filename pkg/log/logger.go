package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

type Level logging.Level

// The levels that can be passed to the SetLevel function.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// The logger format
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// The internal leveled logger backend
var leveledBackend logging.LeveledBackend

// The logger interface
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// Create a new named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// Override the backend output sink. The current verbosity is kept.
func SetSink(sink io.Writer) {
	level := logging.INFO
	if leveledBackend != nil {
		level = leveledBackend.GetLevel("")
	}

	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(level, "")
	logging.SetBackend(leveledBackend)
}

// Set logger verbosity.
func SetLevel(level Level) {
	var loggerLevel logging.Level

	switch level {
	case Debug:
		loggerLevel = logging.DEBUG
	case Info:
		loggerLevel = logging.INFO
	case Notice:
		loggerLevel = logging.NOTICE
	case Warning:
		loggerLevel = logging.WARNING
	case Error:
		loggerLevel = logging.ERROR
	}

	leveledBackend.SetLevel(loggerLevel, "")
}

// PrintfLogger adapts a named logger to the renderer's Printf logging surface.
// Messages are logged at the configured level with trailing newlines trimmed.
type PrintfLogger struct {
	logger Logger
	level  Level
}

// NewPrintfLogger creates a Printf adapter for the named logger that logs at Info level.
func NewPrintfLogger(name string) *PrintfLogger {
	return &PrintfLogger{logger: New(name), level: Info}
}

// WithLevel returns a copy of the adapter that logs at the given level.
func (p *PrintfLogger) WithLevel(level Level) *PrintfLogger {
	return &PrintfLogger{logger: p.logger, level: level}
}

// Printf implements core.Logger.
func (p *PrintfLogger) Printf(format string, args ...interface{}) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")

	switch p.level {
	case Debug:
		p.logger.Debug(msg)
	case Notice:
		p.logger.Notice(msg)
	case Warning:
		p.logger.Warning(msg)
	case Error:
		p.logger.Error(msg)
	default:
		p.logger.Info(msg)
	}
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
