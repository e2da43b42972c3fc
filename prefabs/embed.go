package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultLayout is the layout file shipped with the binary.
const DefaultLayout = "lanes.yaml"

//go:embed *.yaml
var PrefabsFS embed.FS

// Load returns a prefab file, preferring an on-disk copy so layouts can be
// edited without rebuilding.
func Load(name string) ([]byte, error) {
	if path, ok := ResolveDisk(name); ok {
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(cleanPrefabPath(name))
}

// ResolveDisk returns the on-disk file backing name: prefabs/<name> first,
// then name itself.
func ResolveDisk(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, p := range []string{DiskPath(name), name} {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

func ModTime(name string) (time.Time, bool) {
	path, ok := ResolveDisk(name)
	if !ok {
		return time.Time{}, false
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// DiskPath maps a prefab name to its on-disk override location.
func DiskPath(name string) string {
	return filepath.Join("prefabs", filepath.FromSlash(cleanPrefabPath(name)))
}

// SameFile reports whether an fsnotify path refers to the named prefab.
func SameFile(path, name string) bool {
	return filepath.Base(path) == filepath.Base(DiskPath(name))
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
