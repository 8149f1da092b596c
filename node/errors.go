package node

import "errors"

// ErrUnsupportedFormat is the sentinel a Parser implementation should
// return when asked to parse a format it does not implement.
var ErrUnsupportedFormat = errors.New("node: unsupported format")
