package fsn

import "unicode/utf8"

// utf8Decoder handles platforms whose filenames are defined to always be
// UTF-8. Decoding is validation plus a copy.
type utf8Decoder struct{}

// UTF8 returns the decoder for platforms with UTF-8 filenames.
func UTF8() Decoder {
	return utf8Decoder{}
}

// Encoding returns the assumed source encoding.
func (utf8Decoder) Encoding() string {
	return "UTF-8"
}

// Decode validates s as UTF-8 and returns it as text. Absent input passes
// through as "".
func (utf8Decoder) Decode(s String) (string, error) {
	if s.IsAbsent() {
		return "", nil
	}
	if !utf8.Valid(s) {
		return "", &DecodeError{Input: append(String(nil), s...), Encoding: "UTF-8"}
	}
	return string(s), nil
}
