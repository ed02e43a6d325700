package userdirs

import "go.uber.org/zap"

// Warm resolves every user directory once and logs each result at Debug,
// one entry per directory kind. On some platforms the underlying lookups
// only cache non-ASCII directory names correctly when they happen early in
// process startup; warming them here keeps later lookups from silently
// degrading to replacement characters.
//
// Call Warm once during startup, after locale setup and before any
// component that itself queries these directories. Repeated calls simply
// re-query and re-log; the intent is a single invocation. Warm keeps going
// past decode failures so every kind is queried, and returns the first
// error it saw.
func (a *Accessor) Warm() error {
	var first error
	warm := func(kind string, dir string, err error) {
		if err != nil {
			if first == nil {
				first = err
			}
			a.log.Debug("user directory lookup failed",
				zap.String("kind", kind),
				zap.Error(err))
			return
		}
		a.log.Debug("user directory resolved",
			zap.String("kind", kind),
			zap.String("path", dir),
			zap.Bool("defined", dir != ""))
	}

	dir, err := a.ConfigDir()
	warm("config", dir, err)
	dir, err = a.DataDir()
	warm("data", dir, err)
	dir, err = a.CacheDir()
	warm("cache", dir, err)

	for _, s := range Specials() {
		dir, err = a.SpecialDir(s)
		warm(s.String(), dir, err)
	}
	return first
}
