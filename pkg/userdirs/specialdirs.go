package userdirs

import (
	"bytes"
	"strings"

	"github.com/GriffinCanCode/userdirs/pkg/fsn"
)

func (a *Accessor) specialDirBytes(s Special) fsn.String {
	switch a.goos {
	case "windows":
		return a.windowsSpecialBytes(s)
	case "darwin":
		return a.darwinSpecialBytes(s)
	default:
		return a.xdgSpecialBytes(s)
	}
}

func (a *Accessor) darwinSpecialBytes(s Special) fsn.String {
	var folder string
	switch s {
	case Desktop:
		folder = "Desktop"
	case Documents:
		folder = "Documents"
	case Download:
		folder = "Downloads"
	case Music:
		folder = "Music"
	case Pictures:
		folder = "Pictures"
	case PublicShare:
		folder = "Public"
	case Videos:
		folder = "Movies"
	default:
		// Templates has no macOS counterpart
		return nil
	}
	return a.homeJoin(folder)
}

func (a *Accessor) windowsSpecialBytes(s Special) fsn.String {
	var folder string
	switch s {
	case Desktop:
		folder = "Desktop"
	case Documents:
		folder = "Documents"
	case Download:
		folder = "Downloads"
	case Music:
		folder = "Music"
	case Pictures:
		folder = "Pictures"
	case Videos:
		folder = "Videos"
	default:
		// PublicShare and Templates are not per-profile folders
		return nil
	}
	return a.homeJoin(folder)
}

// xdgSpecialBytes resolves a special folder from the xdg user-dirs.dirs
// file. The file is re-read on every lookup; this layer caches nothing.
// Desktop is the only member with a default when the file does not define
// it, everything else is absent.
func (a *Accessor) xdgSpecialBytes(s Special) fsn.String {
	dirs := a.loadUserDirs()
	if v, ok := dirs[s.xdgKey()]; ok && v != nil {
		return v
	}
	if s == Desktop {
		return a.homeJoin("Desktop")
	}
	return nil
}

func (a *Accessor) loadUserDirs() map[string]fsn.String {
	cfg := a.configDirBytes()
	if cfg == nil {
		return nil
	}
	data, err := a.readFile(string(joinBytes(a.sep(), cfg, "user-dirs.dirs")))
	if err != nil {
		return nil
	}
	return parseUserDirs(data, a.homeBytes())
}

// parseUserDirs parses the body of an xdg user-dirs.dirs file. Values keep
// their raw bytes; "$HOME/" prefixes expand against home. Per the
// xdg-user-dirs contract, values that are neither $HOME-relative nor
// absolute are ignored, and a bare "$HOME" value marks the folder disabled
// (stored as a nil entry).
func parseUserDirs(data []byte, home fsn.String) map[string]fsn.String {
	dirs := make(map[string]fsn.String)
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' || !bytes.HasPrefix(line, []byte("XDG_")) {
			continue
		}
		eq := bytes.IndexByte(line, '=')
		if eq < 0 {
			continue
		}
		key := string(bytes.TrimSpace(line[:eq]))
		if !strings.HasSuffix(key, "_DIR") {
			continue
		}
		kind := strings.TrimSuffix(strings.TrimPrefix(key, "XDG_"), "_DIR")

		val := bytes.TrimSpace(line[eq+1:])
		if len(val) < 2 || val[0] != '"' || val[len(val)-1] != '"' {
			continue
		}
		val = unescapeShellQuoted(val[1 : len(val)-1])

		switch {
		case bytes.Equal(val, []byte("$HOME")):
			dirs[kind] = nil
		case bytes.HasPrefix(val, []byte("$HOME/")):
			if home == nil {
				continue
			}
			rel := bytes.TrimLeft(val[len("$HOME/"):], "/")
			if len(rel) == 0 {
				dirs[kind] = nil
				continue
			}
			dirs[kind] = joinBytes('/', home, string(rel))
		case val[0] == '/':
			dirs[kind] = append(fsn.String(nil), val...)
		}
	}
	return dirs
}

// unescapeShellQuoted undoes the minimal escaping xdg-user-dirs writes
// inside double quotes.
func unescapeShellQuoted(val []byte) []byte {
	if !bytes.ContainsRune(val, '\\') {
		return val
	}
	out := make([]byte, 0, len(val))
	for i := 0; i < len(val); i++ {
		if val[i] == '\\' && i+1 < len(val) {
			i++
		}
		out = append(out, val[i])
	}
	return out
}
