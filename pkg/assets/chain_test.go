package assets

import (
	"errors"
	"fmt"
	"testing"
)

func TestResolveParentChain(t *testing.T) {
	pack := writePack(t, map[string]string{
		"assets/minecraft/models/block/cube.json":       `{"elements": [{"from": [0,0,0], "to": [16,16,16], "faces": {"up": {"texture": "#up"}}}]}`,
		"assets/minecraft/models/block/cube_all.json":   `{"parent": "block/cube", "textures": {"up": "#all", "particle": "#all"}}`,
		"assets/minecraft/models/block/stone.json":      `{"parent": "block/cube_all", "textures": {"all": "block/stone"}}`,
		"assets/minecraft/models/block/legacy.json":     `{"parent": "cube_all", "textures": {"all": "blocks/stone"}}`,
		"assets/minecraft/models/item/generated.json":   `{"parent": "builtin/generated", "gui_light": "front"}`,
		"assets/minecraft/models/item/stick.json":       `{"parent": "item/generated", "textures": {"layer0": "item/stick"}}`,
		"assets/minecraft/models/item/stone.json":       `{"parent": "block/stone"}`,
		"assets/minecraft/models/block/cycle_a.json":    `{"parent": "block/cycle_b"}`,
		"assets/minecraft/models/block/cycle_b.json":    `{"parent": "minecraft:block/cycle_a"}`,
		"assets/minecraft/models/block/self.json":       `{"parent": "self"}`,
		"assets/minecraft/models/block/missing_up.json": `{"parent": "block/does_not_exist"}`,
	})

	tests := []struct {
		name    string
		load    func() ([]*Model, error)
		want    int
		wantErr error
	}{
		{"no parent", func() ([]*Model, error) { return pack.LoadBlockModelRecursive("cube") }, 1, nil},
		{"three levels", func() ([]*Model, error) { return pack.LoadBlockModelRecursive("stone") }, 3, nil},
		{"prefixed id", func() ([]*Model, error) { return pack.LoadBlockModelRecursive("minecraft:block/stone") }, 3, nil},
		{"parent without prefix", func() ([]*Model, error) { return pack.LoadBlockModelRecursive("legacy") }, 3, nil},
		{"stops at builtin", func() ([]*Model, error) { return pack.LoadItemModelRecursive("stick") }, 2, nil},
		{"item with block parent", func() ([]*Model, error) { return pack.LoadItemModelRecursive("stone") }, 4, nil},
		{"cycle", func() ([]*Model, error) { return pack.LoadBlockModelRecursive("cycle_a") }, 0, ErrCyclicInheritance},
		{"self reference", func() ([]*Model, error) { return pack.LoadBlockModelRecursive("self") }, 0, ErrCyclicInheritance},
		{"missing parent", func() ([]*Model, error) { return pack.LoadBlockModelRecursive("missing_up") }, 0, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain, err := tt.load()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(chain) != tt.want {
				t.Fatalf("expected %d models, got %d", tt.want, len(chain))
			}
		})
	}
}

func TestResolveParentChain_NoParentIsSelf(t *testing.T) {
	m := &Model{}
	chain, err := m.ResolveParentChain(AtPath(t.TempDir()))
	if err != nil {
		t.Fatal(err)
	}
	if len(chain) != 1 || chain[0] != m {
		t.Fatalf("expected the model itself, got %v", chain)
	}
}

func TestResolveParentChain_TooDeep(t *testing.T) {
	files := map[string]string{}
	for i := 0; i < MaxInheritanceDepth+5; i++ {
		files[fmt.Sprintf("assets/minecraft/models/block/m%d.json", i)] = fmt.Sprintf(`{"parent": "block/m%d"}`, i+1)
	}
	pack := writePack(t, files)

	_, err := pack.LoadBlockModelRecursive("m0")
	if !errors.Is(err, ErrInheritanceTooDeep) {
		t.Fatalf("expected ErrInheritanceTooDeep, got %v", err)
	}

	// exactly MaxInheritanceDepth models are fine
	const start = 100
	files = map[string]string{}
	for i := 0; i < MaxInheritanceDepth; i++ {
		files[fmt.Sprintf("assets/minecraft/models/block/m%d.json", i+start)] = fmt.Sprintf(`{"parent": "block/m%d"}`, i+start+1)
	}
	files[fmt.Sprintf("assets/minecraft/models/block/m%d.json", MaxInheritanceDepth-1+start)] = `{}`
	pack = writePack(t, files)
	chain, err := pack.LoadBlockModelRecursive(fmt.Sprintf("m%d", start))
	if err != nil {
		t.Fatal(err)
	}
	if len(chain) != MaxInheritanceDepth {
		t.Fatalf("expected %d models, got %d", MaxInheritanceDepth, len(chain))
	}
}

func TestFlatten(t *testing.T) {
	pack := writePack(t, map[string]string{
		"assets/minecraft/models/item/generated.json": `{"parent": "builtin/generated", "display": {"gui": {"scale": [1,1,1]}, "head": {"scale": [2,2,2]}}}`,
		"assets/minecraft/models/item/stick.json":     `{"parent": "item/generated", "textures": {"layer0": "item/stick"}, "display": {"gui": {"scale": [3,3,3]}}}`,
	})
	chain, err := pack.LoadItemModelRecursive("stick")
	if err != nil {
		t.Fatal(err)
	}
	flat := Flatten(chain)
	if flat.Parent == nil || *flat.Parent != "builtin/generated" {
		t.Fatalf("expected builtin parent to be kept, got %v", flat.Parent)
	}
	if (*flat.Display["gui"].Scale)[0] != 3 {
		t.Fatalf("child display should win")
	}
	if (*flat.Display["head"].Scale)[0] != 2 {
		t.Fatalf("parent display should be inherited")
	}
	if flat.Textures["layer0"] != "item/stick" {
		t.Fatalf("unexpected textures %v", flat.Textures)
	}
}
