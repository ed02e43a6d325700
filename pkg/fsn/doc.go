// Package fsn converts operating-system filename byte strings into text.
//
// Filenames returned by the operating system are byte sequences in the
// platform's native filename encoding, which may not be UTF-8 and may be
// misconfigured relative to the actual filesystem content. This package
// guarantees that everything it hands back is valid UTF-8 text.
//
// Conversion is a strategy selected once at startup:
//   - utf8: platforms whose filenames are defined to always be UTF-8
//   - locale: platforms where the encoding depends on the environment
//     (G_FILENAME_ENCODING override, then the locale charset)
//
// Absent values pass through: decoding a nil String yields "" with no
// error. There is no fallback encoding strategy; a failed conversion is
// reported to the caller as a *DecodeError carrying the offending bytes.
//
// Example Usage:
//
//	dec := fsn.ForPlatform()
//	name, err := dec.Decode(rawBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
package fsn
