package assets

import (
	"errors"
	"sync"
	"testing"
)

func TestCache_LoadsOnce(t *testing.T) {
	pack := writePack(t, map[string]string{
		"assets/minecraft/blockstates/stone.json":     `{"variants": {"": {"model": "block/stone"}}}`,
		"assets/minecraft/models/block/cube.json":     `{}`,
		"assets/minecraft/models/block/cube_all.json": `{"parent": "block/cube"}`,
		"assets/minecraft/models/block/stone.json":    `{"parent": "block/cube_all"}`,
		"assets/minecraft/models/block/dirt.json":     `{"parent": "minecraft:block/cube_all"}`,
	})
	c := NewCache(pack)

	var wg sync.WaitGroup
	states := make([]*BlockStates, 20)
	for i := range states {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := c.LoadBlockStates("stone")
			if err != nil {
				t.Error(err)
				return
			}
			states[i] = s
		}(i)
	}
	wg.Wait()
	for _, s := range states {
		if s != states[0] {
			t.Fatal("expected every caller to get the same value")
		}
	}

	stone, err := c.LoadBlockModelRecursive("stone")
	if err != nil {
		t.Fatal(err)
	}
	dirt, err := c.LoadBlockModelRecursive("dirt")
	if err != nil {
		t.Fatal(err)
	}
	if stone[1] != dirt[1] || stone[2] != dirt[2] {
		t.Fatal("expected shared parents")
	}
	// stone blockstates + 4 models
	if c.Len() != 5 {
		t.Fatalf("expected 5 cached values, got %d", c.Len())
	}

	// same file, different spelling
	again, err := c.LoadBlockModel("minecraft:cube_all")
	if err != nil {
		t.Fatal(err)
	}
	if again != stone[1] {
		t.Fatal("expected the cached model")
	}
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	pack := writePack(t, map[string]string{})
	c := NewCache(pack)

	if _, err := c.LoadBlockStates("stone"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected an empty cache, got %d", c.Len())
	}
}
