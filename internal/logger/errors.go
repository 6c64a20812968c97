package logger

import (
	"errors"
	"fmt"
	"os"
)

// ErrAppNameIsEmpty is returned if Log.AppName was not defined.
var ErrAppNameIsEmpty = errors.New("config Log.AppName can not be empty")

// ErrorHandler implements a custom error handler.
func ErrorHandler(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "zerolog: could not write event: %v\n", err)
}
