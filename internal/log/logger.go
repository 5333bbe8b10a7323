package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"webterm/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug atomic.Bool
	logger  = NewLogger()
)

// Field is a single structured key/value pair
type Field struct {
	Key   string
	Value interface{}
}

// F creates a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger is a leveled structured logger backed by logrus.
type Logger struct {
	entry    *logrus.Entry
	minLevel logrus.Level
}

// Option configures a Logger
type Option func(*options) error

type options struct {
	out   io.Writer
	json  bool
	level logrus.Level
}

// WithOutput sends log lines to w
func WithOutput(w io.Writer) Option {
	return func(o *options) error {
		o.out = w
		return nil
	}
}

// WithFile appends log lines to the file at path
func WithFile(path string) Option {
	return func(o *options) error {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		o.out = f
		return nil
	}
}

// WithJSON switches to JSON output
func WithJSON() Option {
	return func(o *options) error {
		o.json = true
		return nil
	}
}

// WithLevel sets the minimum level by name (debug, info, warn, error)
func WithLevel(level string) Option {
	return func(o *options) error {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}
		o.level = lvl
		return nil
	}
}

// NewLogger creates a logger writing text lines to stderr unless configured otherwise.
// Options that fail are ignored; use Configure to see the error.
func NewLogger(opts ...Option) *Logger {
	l, _ := build(opts...)
	return l
}

func build(opts ...Option) (*Logger, error) {
	o := &options{out: os.Stderr, level: logrus.InfoLevel}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return NewLogger(), err
		}
	}

	base := logrus.New()
	base.SetOutput(o.out)
	// Filtering happens in Logger.enabled so SetDebug can override it.
	base.SetLevel(logrus.TraceLevel)
	if o.json {
		base.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{logrus.FieldKeyMsg: "message"},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			DisableColors:   true,
		})
	}

	return &Logger{entry: logrus.NewEntry(base), minLevel: o.level}, nil
}

func (l *Logger) enabled(level logrus.Level) bool {
	if level == logrus.DebugLevel && isDebug.Load() {
		return true
	}
	return level <= l.minLevel
}

// With returns a child logger carrying the given fields
func (l *Logger) With(fields ...Field) *Logger {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(lf), minLevel: l.minLevel}
}

// WithError returns a child logger carrying err and, for application errors, its kind
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	child := &Logger{entry: l.entry.WithError(err), minLevel: l.minLevel}
	if kind := errors.KindOf(err); kind != errors.Unknown {
		child = child.With(F("kind", kind.String()))
	}

	var shellErr *errors.ShellError
	if errors.As(err, &shellErr) {
		if shellErr.Command() != "" {
			child = child.With(F("command", shellErr.Command()))
		}
		if shellErr.Subject() != "" {
			child = child.With(F("subject", shellErr.Subject()))
		}
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Param() != "" {
		child = child.With(F("param", configErr.Param()))
	}
	return child
}

// Std exposes the underlying logrus logger, e.g. for libraries that want a Printf logger.
func (l *Logger) Std() *logrus.Logger {
	return l.entry.Logger
}

func (l *Logger) log(level logrus.Level, format string, args ...interface{}) {
	if !l.enabled(level) {
		return
	}
	if len(args) == 0 {
		l.entry.Log(level, format)
		return
	}
	l.entry.Logf(level, format, args...)
}

// Info logs msg at info level
func (l *Logger) Info(msg string) { l.log(logrus.InfoLevel, msg) }

// Infof logs a formatted message at info level
func (l *Logger) Infof(format string, args ...interface{}) { l.log(logrus.InfoLevel, format, args...) }

// Warn logs msg at warning level
func (l *Logger) Warn(msg string) { l.log(logrus.WarnLevel, msg) }

// Warnf logs a formatted message at warning level
func (l *Logger) Warnf(format string, args ...interface{}) { l.log(logrus.WarnLevel, format, args...) }

// Error logs msg at error level
func (l *Logger) Error(msg string) { l.log(logrus.ErrorLevel, msg) }

// Errorf logs a formatted message at error level
func (l *Logger) Errorf(format string, args ...interface{}) { l.log(logrus.ErrorLevel, format, args...) }

// Debug logs msg at debug level
func (l *Logger) Debug(msg string) { l.log(logrus.DebugLevel, msg) }

// Debugf logs a formatted message at debug level
func (l *Logger) Debugf(format string, args ...interface{}) { l.log(logrus.DebugLevel, format, args...) }

// Configure replaces the package-level logger
func Configure(opts ...Option) error {
	l, err := build(opts...)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// Default returns the package-level logger
func Default() *Logger {
	return logger
}

// SetDebug forces debug output on or off regardless of the configured level
func SetDebug(debug bool) {
	isDebug.Store(debug)
}

// LogWithFields returns the package logger with fields attached
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError returns the package logger with err attached
func LogWithError(err error) *Logger {
	return logger.WithError(err)
}

// Info logs a formatted message
func Info(format string, args ...interface{}) {
	logger.log(logrus.InfoLevel, format, args...)
}

// Debug logs a message with arguments
func Debug(msg string, args ...interface{}) {
	logger.log(logrus.DebugLevel, joinArgs(msg, args))
}

// Debugf logs a formatted message
func Debugf(format string, args ...interface{}) {
	logger.log(logrus.DebugLevel, format, args...)
}

// Error logs an error message with arguments
func Error(msg string, args ...interface{}) {
	logger.log(logrus.ErrorLevel, joinArgs(msg, args))
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.log(logrus.ErrorLevel, format, args...)
}

// Warn logs a warning message with arguments
func Warn(msg string, args ...interface{}) {
	logger.log(logrus.WarnLevel, joinArgs(msg, args))
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.log(logrus.WarnLevel, format, args...)
}

// joinArgs appends args to msg as "msg: a b c".
func joinArgs(msg string, args []interface{}) string {
	if len(args) == 0 {
		return msg
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return msg + ": " + strings.Join(parts, " ")
}
