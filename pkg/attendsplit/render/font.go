package render

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ResolveFont returns the font file to use. An explicit path wins;
// otherwise DefaultFontFile is searched next to the executable, under
// ./fonts and in the XDG data directories (attendsplit/fonts). It returns
// "" when nothing is found.
func ResolveFont(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, candidate := range fontCandidates() {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	if path, err := xdg.SearchDataFile(filepath.Join("attendsplit", "fonts", DefaultFontFile)); err == nil {
		return path
	}
	return ""
}

func fontCandidates() []string {
	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "fonts", DefaultFontFile))
	}
	return append(candidates, filepath.Join("fonts", DefaultFontFile))
}
