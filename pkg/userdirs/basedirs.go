package userdirs

import (
	"os"

	"github.com/GriffinCanCode/userdirs/pkg/fsn"
)

// Base directory resolution works on raw bytes end to end: environment
// values and file contents are kept in the platform's native filename
// encoding until the accessor's decoder converts them to text.

// sep returns the path separator byte for the accessor's platform.
func (a *Accessor) sep() byte {
	if a.goos == "windows" {
		return '\\'
	}
	return '/'
}

// envBytes returns an environment value as raw bytes, nil when unset.
func (a *Accessor) envBytes(key string) fsn.String {
	if v := a.getenv(key); v != "" {
		return fsn.String(v)
	}
	return nil
}

// homeBytes resolves the user's home directory.
func (a *Accessor) homeBytes() fsn.String {
	key := "HOME"
	if a.goos == "windows" {
		key = "USERPROFILE"
	}
	if v := a.envBytes(key); v != nil {
		return v
	}
	if h, err := os.UserHomeDir(); err == nil && h != "" {
		return fsn.String(h)
	}
	return nil
}

// homeJoin joins ASCII path components onto the home directory bytes.
func (a *Accessor) homeJoin(parts ...string) fsn.String {
	home := a.homeBytes()
	if home == nil {
		return nil
	}
	return joinBytes(a.sep(), home, parts...)
}

// joinBytes appends components to a base path without interpreting the
// base's bytes. Components are expected to be ASCII.
func joinBytes(sep byte, base fsn.String, parts ...string) fsn.String {
	out := append(fsn.String(nil), base...)
	for len(out) > 1 && out[len(out)-1] == sep {
		out = out[:len(out)-1]
	}
	for _, p := range parts {
		out = append(out, sep)
		out = append(out, p...)
	}
	return out
}

func (a *Accessor) configDirBytes() fsn.String {
	switch a.goos {
	case "windows":
		if v := a.envBytes("APPDATA"); v != nil {
			return v
		}
		return a.homeJoin("AppData", "Roaming")
	case "darwin":
		return a.homeJoin("Library", "Application Support")
	default:
		if v := a.xdgBase("XDG_CONFIG_HOME"); v != nil {
			return v
		}
		return a.homeJoin(".config")
	}
}

func (a *Accessor) dataDirBytes() fsn.String {
	switch a.goos {
	case "windows":
		if v := a.envBytes("LOCALAPPDATA"); v != nil {
			return v
		}
		return a.homeJoin("AppData", "Local")
	case "darwin":
		return a.homeJoin("Library", "Application Support")
	default:
		if v := a.xdgBase("XDG_DATA_HOME"); v != nil {
			return v
		}
		return a.homeJoin(".local", "share")
	}
}

func (a *Accessor) cacheDirBytes() fsn.String {
	switch a.goos {
	case "windows":
		if v := a.envBytes("LOCALAPPDATA"); v != nil {
			return joinBytes(a.sep(), v, "cache")
		}
		return a.homeJoin("AppData", "Local", "cache")
	case "darwin":
		return a.homeJoin("Library", "Caches")
	default:
		if v := a.xdgBase("XDG_CACHE_HOME"); v != nil {
			return v
		}
		return a.homeJoin(".cache")
	}
}

// xdgBase returns an XDG base directory override. The basedir spec requires
// ignoring relative values.
func (a *Accessor) xdgBase(key string) fsn.String {
	v := a.envBytes(key)
	if v == nil || v[0] != '/' {
		return nil
	}
	return v
}
