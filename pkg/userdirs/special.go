package userdirs

// Special identifies a platform-defined per-user folder with a standard
// purpose. The set is fixed; not every platform defines every member.
type Special int

const (
	Desktop Special = iota
	Documents
	Download
	Music
	Pictures
	PublicShare
	Templates
	Videos

	numSpecial
)

// Specials returns every member of the enumeration in declaration order.
func Specials() []Special {
	all := make([]Special, 0, numSpecial)
	for s := Special(0); s < numSpecial; s++ {
		all = append(all, s)
	}
	return all
}

// String returns the lower-case identifier used in logs and CLI output.
func (s Special) String() string {
	switch s {
	case Desktop:
		return "desktop"
	case Documents:
		return "documents"
	case Download:
		return "download"
	case Music:
		return "music"
	case Pictures:
		return "pictures"
	case PublicShare:
		return "publicshare"
	case Templates:
		return "templates"
	case Videos:
		return "videos"
	default:
		return "unknown"
	}
}

// xdgKey returns the <KIND> token of the XDG_<KIND>_DIR key that names this
// folder in an xdg user-dirs.dirs file.
func (s Special) xdgKey() string {
	switch s {
	case Desktop:
		return "DESKTOP"
	case Documents:
		return "DOCUMENTS"
	case Download:
		return "DOWNLOAD"
	case Music:
		return "MUSIC"
	case Pictures:
		return "PICTURES"
	case PublicShare:
		return "PUBLICSHARE"
	case Templates:
		return "TEMPLATES"
	case Videos:
		return "VIDEOS"
	default:
		return ""
	}
}
