package logging

import "errors"

var ErrInvalidLevel = errors.New("invalid log level")
