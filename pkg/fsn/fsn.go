package fsn

import "runtime"

// String is a filename or path in the operating system's native byte
// encoding, as opposed to decoded text. A nil String represents an absent
// value (for example, a directory the platform does not define).
type String []byte

// IsAbsent reports whether the value is absent rather than empty.
func (s String) IsAbsent() bool {
	return s == nil
}

// Decoder converts native filename bytes to UTF-8 text.
//
// Implementations are stateless and safe for concurrent use. Decoding a
// nil String always yields ("", nil).
type Decoder interface {
	// Decode converts s to text. Absent input passes through as "".
	Decode(s String) (string, error)

	// Encoding returns the name of the source encoding the decoder
	// assumes for its input.
	Encoding() string
}

// ForPlatform selects the conversion strategy for the current platform.
// Windows and macOS define filenames to be UTF-8; everywhere else the
// encoding depends on the process environment.
func ForPlatform() Decoder {
	return forPlatform(runtime.GOOS)
}

func forPlatform(goos string) Decoder {
	switch goos {
	case "windows", "darwin":
		return UTF8()
	default:
		return Locale()
	}
}

// Coerce converts a dynamically-typed value into a String. It accepts nil
// (absent), String, and []byte. Anything else, including already-decoded
// text, is a caller bug and yields a *TypeError.
func Coerce(v any) (String, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case String:
		return b, nil
	case []byte:
		return String(b), nil
	default:
		return nil, &TypeError{Value: v}
	}
}
