package assets

import (
	"os"
	"path/filepath"
	"testing"
)

// writePack writes files (slash separated paths relative to the root) into a
// temporary directory and returns an AssetPack for it
func writePack(t *testing.T, files map[string]string) *AssetPack {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), os.ModePerm); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return AtPath(root)
}
