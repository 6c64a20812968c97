package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool
	UseConsoleWriter bool // human readable output instead of JSON
}

// Log implements the logger config.
type Log struct {
	LogLevel string // trace, debug, info, warn, error.

	AppName string

	// Console is the only sink: the process is short lived and stdout is
	// reserved for the generated string.
	Console Console
}
