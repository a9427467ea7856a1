package conformance

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/minepkg/mcassets/pkg/assets"
	log "github.com/sirupsen/logrus"
)

func writeFiles(t *testing.T, files map[string]string) string {
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
	return root
}

func quietChecker() *Checker {
	c := New()
	logger := log.New()
	logger.SetOutput(io.Discard)
	c.Log = logger
	return c
}

var validPack = map[string]string{
	"assets/minecraft/blockstates/oak_planks.json":  `{"variants": {"": {"model": "block/oak_planks"}}}`,
	"assets/minecraft/blockstates/oak_fence.json":   `{"multipart": [{"apply": {"model": "block/oak_fence_post"}}]}`,
	"assets/minecraft/models/block/cube_all.json":   `{"textures": {"particle": "#all"}}`,
	"assets/minecraft/models/block/oak_planks.json": `{"parent": "block/cube_all", "textures": {"all": "block/oak_planks"}}`,
	"assets/minecraft/models/item/oak_planks.json":  `{"parent": "block/oak_planks"}`,
	"assets/example/blockstates/thing.json":         `{"variants": {"": {"model": "example:block/thing"}}}`,
}

func TestChecker_Valid(t *testing.T) {
	c := quietChecker()
	c.Add(Target{Pack: assets.AtPath(writeFiles(t, validPack)), Version: "1.14.4"})

	// one worker, so OnProgress is never called concurrently
	c.Concurrency = 1
	progress := 0
	c.OnProgress = func(done, total int) {
		if done < 1 || done > total {
			t.Errorf("unexpected progress %d/%d", done, total)
		}
		progress = done
	}

	reports, err := c.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	r := reports[0]
	if !r.OK() {
		t.Fatalf("unexpected failures: %v", r.Failures)
	}
	if r.Total() != 6 || progress != 6 {
		t.Fatalf("expected 6 checked resources, got %d (progress %d)", r.Total(), progress)
	}
	if r.Checked[assets.KindBlockStates] != 3 || r.Checked[assets.KindBlockModel] != 2 || r.Checked[assets.KindItemModel] != 1 {
		t.Fatalf("unexpected counts %v", r.Checked)
	}
}

func TestChecker_Failures(t *testing.T) {
	files := map[string]string{
		"assets/minecraft/blockstates/oak_planks.json": `{"variants": {"normal": {"model": "oak_planks"}}}`,
		"assets/minecraft/blockstates/broken.json":     `{"variants": {"": []}}`,
		"assets/minecraft/models/block/a.json":         `{"parent": "block/b"}`,
		"assets/minecraft/models/block/b.json":         `{"parent": "block/a"}`,
		"assets/minecraft/models/block/orphan.json":    `{"parent": "block/missing"}`,
		"assets/minecraft/models/block/template.json":  `{"textures": {"particle": "#all"}}`,
	}

	tests := []struct {
		name   string
		strict bool
		want   int
	}{
		{"default", false, 5},
		{"strict textures", true, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := quietChecker()
			c.StrictTextures = tt.strict
			c.Add(Target{Pack: assets.AtPath(writeFiles(t, files)), Version: "1.14.4"})

			reports, err := c.Start(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			failures := reports[0].Failures
			// broken, a, b, orphan + oak_planks using "normal" in 1.14.4
			if len(failures) != tt.want {
				t.Fatalf("expected %d failures, got %d: %v", tt.want, len(failures), failures)
			}
			for _, f := range failures {
				if f.Location.ID.Path() == "broken" && !errors.Is(f.Err, assets.ErrParse) {
					t.Fatalf("expected a parse error for broken, got %v", f.Err)
				}
				if f.Location.ID.Path() == "orphan" && !errors.Is(f.Err, assets.ErrNotFound) {
					t.Fatalf("expected not found for orphan, got %v", f.Err)
				}
			}
		})
	}
}

func TestChecker_PreFlattening(t *testing.T) {
	c := quietChecker()
	c.Add(Target{
		Pack: assets.AtPath(writeFiles(t, map[string]string{
			"assets/minecraft/blockstates/oak_planks.json": `{"variants": {"normal": {"model": "oak_planks"}}}`,
		})),
		Version: "1.12.2",
	})
	reports, err := c.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !reports[0].OK() {
		t.Fatalf("unexpected failures %v", reports[0].Failures)
	}
}

func TestChecker_Versions(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"1.14.4", true},
		{"1.14.4-pre1", true},
		{"1.12.2", false},
		{"24w14a", true},
		{"1.16.5", false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			c := quietChecker()
			c.Add(Target{Pack: assets.AtPath(writeFiles(t, validPack)), Version: tt.version})
			reports, err := c.Start(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			if reports[0].OK() != tt.ok {
				t.Fatalf("OK() = %v, want %v (failures %v)", reports[0].OK(), tt.ok, reports[0].Failures)
			}
		})
	}
}

func TestChecker_Duration(t *testing.T) {
	c := quietChecker()
	c.Add(Target{Pack: assets.AtPath(writeFiles(t, validPack)), Version: "1.14.4"})
	c.Add(Target{Pack: assets.AtPath(writeFiles(t, map[string]string{
		"assets/example/textures/block/thing.png": "",
	}))})

	started := time.Now()
	reports, err := c.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	elapsed := time.Since(started)
	for _, r := range reports {
		if r.Duration <= 0 || r.Duration > elapsed {
			t.Fatalf("%s: duration %s not in (0, %s]", r.Root, r.Duration, elapsed)
		}
	}
	if reports[1].Total() != 0 {
		t.Fatalf("expected nothing to check in the texture pack, got %d", reports[1].Total())
	}
}

// TestChecker_Fixtures checks the fixture worktrees created by
// `mcassets fixtures checkout` (testdata/assets-<version> or
// $MCASSETS_FIXTURES/assets-<version>)
func TestChecker_Fixtures(t *testing.T) {
	dirs := []string{"testdata"}
	if env := os.Getenv("MCASSETS_FIXTURES"); env != "" {
		dirs = append(dirs, env)
	}
	var roots []string
	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, "assets-*"))
		if err != nil {
			t.Fatal(err)
		}
		roots = append(roots, matches...)
	}
	if len(roots) == 0 {
		t.Skip("no fixtures checked out")
	}

	for _, root := range roots {
		root := root
		version := strings.TrimPrefix(filepath.Base(root), "assets-")
		t.Run(version, func(t *testing.T) {
			c := quietChecker()
			c.Add(Target{Pack: assets.AtPath(root), Version: version})
			reports, err := c.Start(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			r := reports[0]
			if r.Total() == 0 {
				t.Fatalf("no resources found in %s", root)
			}
			if !r.OK() {
				t.Fatalf("%d of %d resources failed, first: %v", len(r.Failures), r.Total(), r.Failures[0])
			}
		})
	}
}

func TestChecker_MissingAssets(t *testing.T) {
	c := quietChecker()
	c.Add(Target{Pack: assets.AtPath(t.TempDir())})
	if _, err := c.Start(context.Background()); !errors.Is(err, assets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestChecker_Canceled(t *testing.T) {
	c := quietChecker()
	c.Add(Target{Pack: assets.AtPath(writeFiles(t, validPack))})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Start(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
