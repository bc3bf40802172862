// File: pkg/combine/errors.go
package combine

import "errors"

// ErrRootNotDirectory is returned when the scan root does not exist or
// cannot be read as a directory.
var ErrRootNotDirectory = errors.New("root is not a readable directory")

// ErrOutputSink is returned when the output destination cannot be created
// or written to.
var ErrOutputSink = errors.New("output sink failure")
