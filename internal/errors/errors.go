// Package errors provides standardized error handling for webterm.
// It defines the closed set of interpreter error kinds that every command
// handler reports, plus the configuration error family used while loading
// config and catalog files at startup.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Interpreter error kinds
	CommandNotFound
	ExtraParametersPassed
	PathNotFound
	DirectoryNotFound
	FileNotFound
	FileNotDirectory
	// Config error kinds
	InvalidConfig
	InvalidCatalog
)

var kindNames = map[ErrorKind]string{
	Unknown:               "Unknown",
	CommandNotFound:       "CommandNotFound",
	ExtraParametersPassed: "ExtraParametersPassed",
	PathNotFound:          "PathNotFound",
	DirectoryNotFound:     "DirectoryNotFound",
	FileNotFound:          "FileNotFound",
	FileNotDirectory:      "FileNotDirectory",
	InvalidConfig:         "InvalidConfig",
	InvalidCatalog:        "InvalidCatalog",
}

// String returns the kind name
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ShellError is returned by the interpreter when a command cannot complete.
// It never aborts a session; presentation layers render Error() to the user.
type ShellError struct {
	ApplicationError
	command string
	subject string
	detail  string
}

// NewShellError creates an interpreter error. command is the command word
// that failed, subject the argument or path involved, and detail an optional
// override of the default message for the kind.
func NewShellError(kind ErrorKind, command, subject, detail string) *ShellError {
	return &ShellError{
		ApplicationError: ApplicationError{
			msg:  defaultMessage(kind),
			kind: kind,
		},
		command: command,
		subject: subject,
		detail:  detail,
	}
}

func defaultMessage(kind ErrorKind) string {
	switch kind {
	case CommandNotFound:
		return "command not found"
	case ExtraParametersPassed:
		return "too many arguments"
	case PathNotFound:
		return "no such path"
	case DirectoryNotFound:
		return "no such directory"
	case FileNotFound:
		return "no such file"
	case FileNotDirectory:
		return "not a directory"
	default:
		return "unknown error"
	}
}

// Error returns the user-facing message, e.g. "cd: notes: no such directory".
func (e *ShellError) Error() string {
	msg := e.msg
	if e.detail != "" {
		msg = e.detail
	}
	switch {
	case e.command != "" && e.subject != "":
		return fmt.Sprintf("%s: %s: %s", e.command, e.subject, msg)
	case e.command != "":
		return fmt.Sprintf("%s: %s", e.command, msg)
	case e.subject != "":
		return fmt.Sprintf("%s: %s", msg, e.subject)
	}
	return msg
}

// Command returns the command word associated with the error
func (e *ShellError) Command() string {
	return e.command
}

// Subject returns the argument or path associated with the error
func (e *ShellError) Subject() string {
	return e.subject
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the kind of the first ShellError or ConfigError in err's
// chain, or Unknown.
func KindOf(err error) ErrorKind {
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Kind()
	}
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind()
	}
	return Unknown
}

// isKind checks if err carries the given kind
func isKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	return isKind(err, InvalidConfig)
}

// IsInvalidCatalog checks if the error is an invalid catalog error
func IsInvalidCatalog(err error) bool {
	return isKind(err, InvalidCatalog)
}
