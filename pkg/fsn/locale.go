package fsn

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// localeDecoder handles platforms where the filename encoding depends on
// the process environment. The charset is resolved once at construction;
// lookups that fail surface as decode errors, not construction errors,
// matching the platform primitive's behavior.
type localeDecoder struct {
	charset   string
	enc       encoding.Encoding // nil for UTF-8 and US-ASCII
	ascii     bool
	lookupErr error
}

// Locale returns the decoder for platforms with environment-dependent
// filename encodings. The source charset is resolved in the platform's
// documented order: the G_FILENAME_ENCODING override first (comma-separated
// list, first entry wins, "@locale" standing for the locale charset), then
// the charset of LC_ALL, LC_CTYPE, or LANG, then UTF-8.
func Locale() Decoder {
	return newLocale(os.Getenv)
}

func newLocale(getenv func(string) string) Decoder {
	charset := filenameEncoding(getenv)
	d := &localeDecoder{charset: charset}
	switch {
	case isUTF8Name(charset):
		// validation-only path
	case isASCIIName(charset):
		d.ascii = true
	default:
		enc, err := ianaindex.IANA.Encoding(charset)
		if err != nil || enc == nil {
			d.lookupErr = fmt.Errorf("unknown filename encoding %q", charset)
		} else {
			d.enc = enc
		}
	}
	return d
}

// Encoding returns the resolved source charset.
func (d *localeDecoder) Encoding() string {
	return d.charset
}

// Decode converts s from the resolved charset to UTF-8 text. Absent input
// passes through as "".
func (d *localeDecoder) Decode(s String) (string, error) {
	if s.IsAbsent() {
		return "", nil
	}
	if d.lookupErr != nil {
		return "", &DecodeError{Input: clone(s), Encoding: d.charset, Err: d.lookupErr}
	}
	if d.ascii {
		for _, b := range s {
			if b >= 0x80 {
				return "", &DecodeError{Input: clone(s), Encoding: d.charset}
			}
		}
		return string(s), nil
	}
	if d.enc == nil {
		if !utf8.Valid(s) {
			return "", &DecodeError{Input: clone(s), Encoding: d.charset}
		}
		return string(s), nil
	}
	out, err := d.enc.NewDecoder().Bytes(s)
	if err != nil {
		return "", &DecodeError{Input: clone(s), Encoding: d.charset, Err: err}
	}
	// Charmap decoders substitute U+FFFD for unmapped bytes instead of
	// reporting an error. A replacement character in the output means the
	// conversion lost information, so treat it as a failure.
	if strings.ContainsRune(string(out), utf8.RuneError) {
		return "", &DecodeError{Input: clone(s), Encoding: d.charset}
	}
	return string(out), nil
}

// filenameEncoding resolves the charset filenames are assumed to be in.
func filenameEncoding(getenv func(string) string) string {
	if v := getenv("G_FILENAME_ENCODING"); v != "" {
		first := strings.TrimSpace(strings.SplitN(v, ",", 2)[0])
		if first != "" && !strings.EqualFold(first, "@locale") {
			return first
		}
	}
	return localeCharset(getenv)
}

// localeCharset extracts the codeset from the usual locale variables, in
// precedence order. Locales without an explicit codeset are taken as UTF-8,
// which is what every mainstream distribution ships today.
func localeCharset(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := getenv(key); v != "" {
			return charsetOf(v)
		}
	}
	return "UTF-8"
}

// charsetOf pulls the codeset out of a locale name such as
// "de_DE.ISO-8859-1@euro".
func charsetOf(locale string) string {
	if locale == "C" || locale == "POSIX" {
		return "US-ASCII"
	}
	if i := strings.IndexByte(locale, '@'); i >= 0 {
		locale = locale[:i]
	}
	if i := strings.IndexByte(locale, '.'); i >= 0 {
		if cs := locale[i+1:]; cs != "" {
			return cs
		}
	}
	return "UTF-8"
}

func isUTF8Name(charset string) bool {
	switch strings.ToUpper(charset) {
	case "UTF-8", "UTF8":
		return true
	}
	return false
}

func isASCIIName(charset string) bool {
	switch strings.ToUpper(charset) {
	case "US-ASCII", "ASCII", "ANSI_X3.4-1968", "646":
		return true
	}
	return false
}

func clone(s String) String {
	return append(String(nil), s...)
}
