package log

import (
	"io"
	"os"
	"path/filepath"

	"github.com/op/go-logging"
	"gopkg.in/natefinch/lumberjack.v2"
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

// The console logger format.
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// Plain format used for file and GUI sinks.
var plainFormat = logging.MustStringFormatter(
	`[%{time:2006-01-02 15:04:05.000}] [%{module}] [%{level}] %{message}`,
)

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

// Sink configuration. All mutations happen during startup or on the UI
// thread so no locking is required.
var (
	consoleSink io.Writer = os.Stdout
	extraSinks  []sink
	fileSink    *lumberjack.Logger
	level       = logging.NOTICE

	leveledBackends []logging.LeveledBackend
)

type sink struct {
	w         io.Writer
	formatter logging.Formatter
}

// Create a new named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// Override the console output sink.
func SetSink(w io.Writer) {
	consoleSink = w
	apply()
}

// AddSink attaches an extra plain-formatted sink, e.g. the GUI log console.
func AddSink(w io.Writer) {
	extraSinks = append(extraSinks, sink{w: w, formatter: plainFormat})
	apply()
}

// SetFile mirrors log output to a rotating, compressed file.
func SetFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	fileSink = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     7, // days
		Compress:   true,
	}
	apply()
	return nil
}

// Set logger verbosity.
func SetLevel(l Level) {
	switch l {
	case Debug:
		level = logging.DEBUG
	case Info:
		level = logging.INFO
	case Notice:
		level = logging.NOTICE
	case Warning:
		level = logging.WARNING
	case Error:
		level = logging.ERROR
	}
	for _, lb := range leveledBackends {
		lb.SetLevel(level, "")
	}
}

// Close flushes and releases the rotating file sink. Call once on shutdown.
func Close() error {
	if fileSink == nil {
		return nil
	}
	err := fileSink.Close()
	fileSink = nil
	apply()
	return err
}

// Rebuild the backend list from the configured sinks.
func apply() {
	sinks := []sink{{w: consoleSink, formatter: format}}
	if fileSink != nil {
		sinks = append(sinks, sink{w: fileSink, formatter: plainFormat})
	}
	sinks = append(sinks, extraSinks...)

	leveledBackends = leveledBackends[:0]
	backends := make([]logging.Backend, 0, len(sinks))
	for _, s := range sinks {
		backend := logging.NewLogBackend(s.w, "", 0)
		formatted := logging.NewBackendFormatter(backend, s.formatter)
		leveled := logging.AddModuleLevel(formatted)
		leveled.SetLevel(level, "")
		leveledBackends = append(leveledBackends, leveled)
		backends = append(backends, leveled)
	}
	logging.SetBackend(backends...)
}

func init() {
	apply()
}
