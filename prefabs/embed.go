package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Load prefers a copy under prefabs/ on disk so specs can be tuned without a
// rebuild, and falls back to the embedded file.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
