package assets

import (
	"errors"
	"testing"
)

func TestAssetPack_LoadLang(t *testing.T) {
	pack := writePack(t, map[string]string{
		"assets/minecraft/lang/en_us.json": `{"block.minecraft.stone": "Stone", "language.name": "English"}`,
		"assets/legacy/lang/en_US.lang":    "# comment\ntile.stone.name=Stone\nitem.written.by=by %s\ncost=${price}\n",
		"assets/broken/lang/en_us.json":    `{"block.minecraft.stone": 1}`,
	})

	tests := []struct {
		name      string
		namespace string
		locale    string
		key       string
		want      string
	}{
		{"json", "", "en_us", "block.minecraft.stone", "Stone"},
		{"json mixed case locale", "minecraft", "en_US", "language.name", "English"},
		{"properties", "legacy", "en_us", "tile.stone.name", "Stone"},
		{"format strings", "legacy", "en_US", "item.written.by", "by %s"},
		{"no expansion", "legacy", "en_US", "cost", "${price}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, err := pack.LoadLang(tt.namespace, tt.locale)
			if err != nil {
				t.Fatal(err)
			}
			if got := lang[tt.key]; got != tt.want {
				t.Fatalf("%s = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	if _, err := pack.LoadLang("minecraft", "de_de"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := pack.LoadLang("broken", "en_us"); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}
