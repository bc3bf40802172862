// File: pkg/combine/binary.go
package combine

import (
	"encoding/base64"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// isText reports whether the content is valid UTF-8 and can be written as-is.
func isText(data []byte) bool {
	return utf8.Valid(data)
}

// encodeBinary returns the standard base64 encoding of the raw bytes.
func encodeBinary(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// detectMIME names the content type of binary data for diagnostics.
func detectMIME(data []byte) string {
	return mimetype.Detect(data).String()
}
