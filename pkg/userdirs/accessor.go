package userdirs

import (
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/userdirs/pkg/fsn"
)

// Accessor resolves per-user directories. It holds no mutable state after
// construction and is safe for concurrent use. All diagnostics flow through
// the injected logger; there is no package-level logger.
type Accessor struct {
	dec fsn.Decoder
	log *zap.Logger

	// test seams, default to the real platform
	goos     string
	getenv   func(string) string
	readFile func(string) ([]byte, error)
}

// Option configures an Accessor.
type Option func(*Accessor)

// WithDecoder injects the filename conversion strategy. The default is
// fsn.ForPlatform().
func WithDecoder(d fsn.Decoder) Option {
	return func(a *Accessor) { a.dec = d }
}

// WithLogger injects the diagnostics sink. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(a *Accessor) { a.log = log }
}

// New creates an Accessor for the current platform.
func New(opts ...Option) *Accessor {
	a := &Accessor{
		dec:      fsn.ForPlatform(),
		log:      zap.NewNop(),
		goos:     runtime.GOOS,
		getenv:   os.Getenv,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ConfigDir returns the per-user configuration directory as text, or "" if
// the platform has no such concept.
func (a *Accessor) ConfigDir() (string, error) {
	return a.dec.Decode(a.configDirBytes())
}

// DataDir returns the per-user data directory as text, or "" if the
// platform has no such concept.
func (a *Accessor) DataDir() (string, error) {
	return a.dec.Decode(a.dataDirBytes())
}

// CacheDir returns the per-user cache directory as text, or "" if the
// platform has no such concept.
func (a *Accessor) CacheDir() (string, error) {
	return a.dec.Decode(a.cacheDirBytes())
}

// SpecialDir returns one platform special directory as text. "" means the
// platform does not define that folder for the current user, which is a
// normal outcome for a valid identifier, never an error.
func (a *Accessor) SpecialDir(s Special) (string, error) {
	return a.dec.Decode(a.specialDirBytes(s))
}
