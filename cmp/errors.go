package cmp

import (
	"errors"
	"fmt"
)

// FormatError reports a malformed CMP buffer. No partial image is returned
// alongside it.
type FormatError struct {
	Offset int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cmp: malformed image at offset %d: %s", e.Offset, e.Reason)
}

// NotSupportedError reports a well-formed header whose pixel format has no
// decoder: colored images, or payloads that are neither utf16 nor utf32
type NotSupportedError struct {
	Flags Flags
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("cmp: unsupported pixel format (colored=%t utf16=%t utf32=%t)",
		e.Flags.Colored, e.Flags.UTF16, e.Flags.UTF32)
}

// IsFormat reports whether err is or wraps a *FormatError
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsNotSupported reports whether err is or wraps a *NotSupportedError
func IsNotSupported(err error) bool {
	var ne *NotSupportedError
	return errors.As(err, &ne)
}
