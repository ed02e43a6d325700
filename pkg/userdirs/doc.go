// Package userdirs resolves per-user platform directories as text.
//
// It covers the three base directories (config, data, cache) and the fixed
// set of platform "special" folders (Desktop, Documents, and so on). Every
// lookup produces the directory in the platform's native filename bytes and
// then converts it through a fsn.Decoder, so callers always receive valid
// UTF-8 text. A directory the platform does not define resolves to "",
// which is a normal outcome rather than an error.
//
// Key Components:
//   - Accessor: the directory resolver; holds the injected decoder and
//     diagnostics logger
//   - Special: the special-directory enumeration
//   - Accessor.Warm: the one-time startup hook that resolves and logs
//     every directory, warming any underlying platform caches
//
// Example Usage:
//
//	acc := userdirs.New(userdirs.WithLogger(logger))
//	if err := acc.Warm(); err != nil {
//	    log.Fatal(err)
//	}
//	cfg, _ := acc.ConfigDir()
package userdirs
