package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Load reads a spec file, preferring a copy on disk under prefabs/ (or an
// explicit path) over the embedded one.
func Load(name string) ([]byte, error) {
	data, err := os.ReadFile(diskPrefabPath(name))
	if err == nil {
		return data, nil
	}
	if isExplicitPath(name) {
		return nil, err
	}
	return PrefabsFS.ReadFile(cleanPrefabPath(name))
}

// isExplicitPath reports whether name points outside the prefabs directory,
// in which case there is no embedded fallback.
func isExplicitPath(name string) bool {
	s := filepath.ToSlash(name)
	return strings.Contains(s, "/") && !strings.HasPrefix(s, "prefabs/")
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return filepath.Base(s)
}

func diskPrefabPath(name string) string {
	s := filepath.ToSlash(name)
	if strings.Contains(s, "/") {
		return filepath.FromSlash(s)
	}
	return filepath.Join("prefabs", s)
}
