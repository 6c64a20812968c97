package charset

import (
	"errors"
)

// ErrUnknownMode is returned when a mode token does not name a charset.
var ErrUnknownMode = errors.New("unknown mode, use 'full', 'alnum' or 'num'")
