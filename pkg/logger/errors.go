package logger

import "errors"

// ErrUnknownLevel reports an unrecognized log level name.
var ErrUnknownLevel = errors.New("unknown log level")
