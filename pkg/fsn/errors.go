package fsn

import "fmt"

// TypeError reports a value that is neither a byte string nor absent.
// Passing already-decoded text to Coerce is a caller contract violation,
// not a recoverable condition.
type TypeError struct {
	Value any
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("fsn: argument must be a byte string or nil, got %T", e.Value)
}

// DecodeError reports filename bytes that could not be converted to UTF-8.
// It usually signals that the filesystem's filename encoding does not match
// what the environment says it should be.
type DecodeError struct {
	Input    String // the offending bytes
	Encoding string // the encoding the conversion assumed
	Err      error  // underlying conversion error, if any
}

// Error implements the error interface. The message names the offending
// byte sequence and points the operator at the encoding override variable.
func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("fsn: failed to convert %q from %s to UTF-8", []byte(e.Input), e.Encoding)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg + " (consider setting G_FILENAME_ENCODING if your file system's filename encoding scheme is not " + e.Encoding + ")"
}

// Unwrap returns the underlying conversion error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
