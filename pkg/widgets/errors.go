package widgets

import "errors"

// ErrInvalidArgument is the root of the build-time error taxonomy. Every
// validation failure raised by the builders wraps it, so callers can
// classify with errors.Is regardless of which argument was bad.
var ErrInvalidArgument = errors.New("widgets: invalid argument")
