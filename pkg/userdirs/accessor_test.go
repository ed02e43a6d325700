package userdirs

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/userdirs/pkg/fsn"
)

// testAccessor builds an Accessor against a fake platform: a fixed GOOS, a
// fixed environment, and an in-memory filesystem.
func testAccessor(t *testing.T, goos string, env map[string]string, files map[string][]byte) *Accessor {
	t.Helper()
	a := New(WithDecoder(fsn.UTF8()))
	a.goos = goos
	a.getenv = func(key string) string { return env[key] }
	a.readFile = func(path string) ([]byte, error) {
		if b, ok := files[path]; ok {
			return b, nil
		}
		return nil, os.ErrNotExist
	}
	return a
}

func TestBaseDirsLinuxDefaults(t *testing.T) {
	a := testAccessor(t, "linux", map[string]string{"HOME": "/home/anna"}, nil)

	dir, err := a.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/anna/.config", dir)

	dir, err = a.DataDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/anna/.local/share", dir)

	dir, err = a.CacheDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/anna/.cache", dir)
}

func TestBaseDirsXDGOverrides(t *testing.T) {
	a := testAccessor(t, "linux", map[string]string{
		"HOME":            "/home/anna",
		"XDG_CONFIG_HOME": "/etc/cfg",
		"XDG_DATA_HOME":   "relative/ignored",
		"XDG_CACHE_HOME":  "/var/cache/anna",
	}, nil)

	dir, err := a.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/etc/cfg", dir)

	// relative overrides are ignored per the basedir spec
	dir, err = a.DataDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/anna/.local/share", dir)

	dir, err = a.CacheDir()
	require.NoError(t, err)
	assert.Equal(t, "/var/cache/anna", dir)
}

func TestBaseDirsDarwin(t *testing.T) {
	a := testAccessor(t, "darwin", map[string]string{"HOME": "/Users/anna"}, nil)

	dir, err := a.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/Users/anna/Library/Application Support", dir)

	dir, err = a.CacheDir()
	require.NoError(t, err)
	assert.Equal(t, "/Users/anna/Library/Caches", dir)
}

func TestBaseDirsWindows(t *testing.T) {
	a := testAccessor(t, "windows", map[string]string{
		"USERPROFILE":  `C:\Users\anna`,
		"APPDATA":      `C:\Users\anna\AppData\Roaming`,
		"LOCALAPPDATA": `C:\Users\anna\AppData\Local`,
	}, nil)

	dir, err := a.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\anna\AppData\Roaming`, dir)

	dir, err = a.DataDir()
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\anna\AppData\Local`, dir)

	dir, err = a.CacheDir()
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\anna\AppData\Local\cache`, dir)
}

func TestBaseDirsNeverRawBytes(t *testing.T) {
	a := testAccessor(t, "linux", map[string]string{"HOME": "/home/anna"}, nil)

	for _, fn := range []func() (string, error){a.ConfigDir, a.DataDir, a.CacheDir} {
		dir, err := fn()
		require.NoError(t, err)
		assert.NotEmpty(t, dir)
		assert.True(t, utf8.ValidString(dir))
	}
}

func TestNonUTF8HomeRoundTrip(t *testing.T) {
	// A Latin-1 home directory decodes cleanly once the environment names
	// the right filename encoding.
	t.Setenv("G_FILENAME_ENCODING", "ISO-8859-1")

	a := testAccessor(t, "linux", map[string]string{"HOME": "/home/ann\xe9"}, nil)
	a.dec = fsn.Locale()

	dir, err := a.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/anné/.config", dir)
	assert.True(t, utf8.ValidString(dir))
}

func TestNonUTF8HomeDecodeFailure(t *testing.T) {
	a := testAccessor(t, "linux", map[string]string{"HOME": "/home/ann\xe9"}, nil)

	_, err := a.ConfigDir()
	var decErr *fsn.DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Contains(t, err.Error(), "G_FILENAME_ENCODING")
}

func TestSpecialDirNeverErrorsForValidIdentifiers(t *testing.T) {
	for _, goos := range []string{"linux", "darwin", "windows"} {
		t.Run(goos, func(t *testing.T) {
			env := map[string]string{
				"HOME":        "/home/anna",
				"USERPROFILE": `C:\Users\anna`,
			}
			a := testAccessor(t, goos, env, nil)
			for _, s := range Specials() {
				dir, err := a.SpecialDir(s)
				require.NoError(t, err, "special dir %s", s)
				if dir != "" {
					assert.True(t, utf8.ValidString(dir))
				}
			}
		})
	}
}

func TestSpecialDirDarwin(t *testing.T) {
	a := testAccessor(t, "darwin", map[string]string{"HOME": "/Users/anna"}, nil)

	dir, err := a.SpecialDir(Videos)
	require.NoError(t, err)
	assert.Equal(t, "/Users/anna/Movies", dir)

	// Templates has no macOS counterpart: absent, not an error.
	dir, err = a.SpecialDir(Templates)
	require.NoError(t, err)
	assert.Equal(t, "", dir)
}

func TestSpecialDirWindows(t *testing.T) {
	a := testAccessor(t, "windows", map[string]string{"USERPROFILE": `C:\Users\anna`}, nil)

	dir, err := a.SpecialDir(Download)
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\anna\Downloads`, dir)

	dir, err = a.SpecialDir(PublicShare)
	require.NoError(t, err)
	assert.Equal(t, "", dir)
}

func TestHomeJoinTrimsTrailingSeparator(t *testing.T) {
	a := testAccessor(t, "linux", map[string]string{"HOME": "/home/anna/"}, nil)

	dir, err := a.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/anna/.config", dir)
}

func TestSpecialDirXDGFile(t *testing.T) {
	home := "/home/anna"
	userDirs := []byte(`# generated by xdg-user-dirs-update
XDG_DESKTOP_DIR="$HOME/Skrivbord"
XDG_DOWNLOAD_DIR="/srv/incoming"
XDG_MUSIC_DIR="$HOME"
`)
	files := map[string][]byte{
		filepath.Join(home, ".config", "user-dirs.dirs"): userDirs,
	}
	a := testAccessor(t, "linux", map[string]string{"HOME": home}, files)

	dir, err := a.SpecialDir(Desktop)
	require.NoError(t, err)
	assert.Equal(t, "/home/anna/Skrivbord", dir)

	dir, err = a.SpecialDir(Download)
	require.NoError(t, err)
	assert.Equal(t, "/srv/incoming", dir)

	// "$HOME" marks the folder disabled
	dir, err = a.SpecialDir(Music)
	require.NoError(t, err)
	assert.Equal(t, "", dir)

	// not named in the file and no default
	dir, err = a.SpecialDir(Videos)
	require.NoError(t, err)
	assert.Equal(t, "", dir)
}

func TestSpecialDirDesktopFallback(t *testing.T) {
	a := testAccessor(t, "linux", map[string]string{"HOME": "/home/anna"}, nil)

	dir, err := a.SpecialDir(Desktop)
	require.NoError(t, err)
	assert.Equal(t, "/home/anna/Desktop", dir)
}
