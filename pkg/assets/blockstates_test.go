package assets

import (
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestBlockStates_SingleVariant(t *testing.T) {
	var states BlockStates
	err := json.Unmarshal([]byte(`{"variants": {"": {"model": "block/oak_planks"}}}`), &states)
	if err != nil {
		t.Fatal(err)
	}

	variants, err := states.Variants()
	if err != nil {
		t.Fatal(err)
	}
	if len(variants) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(variants))
	}
	variant, ok := variants[""]
	if !ok {
		t.Fatalf("variant \"\" missing")
	}
	if len(variant) != 1 {
		t.Fatalf("expected 1 model, got %d", len(variant))
	}
	if variant[0].Model != "block/oak_planks" {
		t.Fatalf("expected block/oak_planks, got %s", variant[0].Model)
	}
	if variant[0].X != nil || variant[0].Y != nil || variant[0].UVLock != nil || variant[0].Weight != nil {
		t.Fatalf("optional fields should be absent: %+v", variant[0])
	}
}

func TestBlockStates_ObjectOrArray(t *testing.T) {
	raw := `{
		"variants": {
			"axis=y": {"model": "block/oak_log"},
			"axis=z": {"model": "block/oak_log", "x": 90},
			"": [
				{"model": "block/stone"},
				{"model": "block/stone_mirrored", "weight": 3},
				{"model": "block/stone", "y": 180, "uvlock": true}
			]
		},
		"some_future_field": 1
	}`
	var states BlockStates
	if err := json.Unmarshal([]byte(raw), &states); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		key    string
		models int
	}{
		{"axis=y", 1},
		{"axis=z", 1},
		{"", 3},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, ok, err := states.Variant(tt.key)
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Fatalf("variant %q missing", tt.key)
			}
			if len(v) != tt.models {
				t.Fatalf("expected %d models, got %d", tt.models, len(v))
			}
		})
	}

	z, _, _ := states.Variant("axis=z")
	if z[0].XRotation() != 90 || z[0].YRotation() != 0 {
		t.Fatalf("unexpected rotation %d/%d", z[0].XRotation(), z[0].YRotation())
	}

	random, _, _ := states.Variant("")
	if random.TotalWeight() != 5 {
		t.Fatalf("expected total weight 5, got %d", random.TotalWeight())
	}
	if got := random.Pick(2).Model; got != "block/stone_mirrored" {
		t.Fatalf("Pick(2) = %s", got)
	}
	if !random[2].IsUVLocked() || random[2].YRotation() != 180 {
		t.Fatalf("unexpected third model %+v", random[2])
	}

	// lookup is exact
	if _, ok, _ := states.Variant("AXIS=y"); ok {
		t.Fatal("variant lookup must be case sensitive")
	}
}

func TestBlockStates_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"both", `{"variants": {"": {"model": "a"}}, "multipart": [{"apply": {"model": "a"}}]}`},
		{"neither", `{"parent": "block/stone"}`},
		{"empty variant array", `{"variants": {"": []}}`},
		{"variant without model", `{"variants": {"": {"x": 90}}}`},
		{"case without apply", `{"multipart": [{"when": {"up": true}}]}`},
		{"variant is a string", `{"variants": {"": "block/stone"}}`},
		{"truncated", `{"variants": {"": {"model": "block/st`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var states BlockStates
			if err := json.Unmarshal([]byte(tt.raw), &states); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestBlockStates_WrongVariant(t *testing.T) {
	var multipart BlockStates
	err := json.Unmarshal([]byte(`{"multipart": [{"apply": {"model": "block/oak_fence_post"}}]}`), &multipart)
	if err != nil {
		t.Fatal(err)
	}
	variants, err := multipart.Variants()
	if !errors.Is(err, ErrWrongVariant) {
		t.Fatalf("expected ErrWrongVariant, got %v", err)
	}
	if variants != nil {
		t.Fatalf("expected no variants, got %v", variants)
	}
	if _, _, err := multipart.Variant(""); !errors.Is(err, ErrWrongVariant) {
		t.Fatalf("expected ErrWrongVariant, got %v", err)
	}

	variantStates := NewVariantBlockStates(map[string]Variant{"": {{Model: "block/stone"}}})
	if _, err := variantStates.Cases(); !errors.Is(err, ErrWrongVariant) {
		t.Fatalf("expected ErrWrongVariant, got %v", err)
	}
}

func TestBlockStates_ModelsFor(t *testing.T) {
	var states BlockStates
	raw := `{"variants": {
		"facing=north,half=top": {"model": "block/stairs_top"},
		"facing=north": {"model": "block/stairs_north"},
		"facing=south": [{"model": "block/stairs_a"}, {"model": "block/stairs_b"}]
	}}`
	if err := json.Unmarshal([]byte(raw), &states); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		state map[string]string
		want  []string
	}{
		{"most specific", map[string]string{"facing": "north", "half": "top"}, []string{"block/stairs_top"}},
		{"fewer properties", map[string]string{"facing": "north", "half": "bottom"}, []string{"block/stairs_north"}},
		{"weighted", map[string]string{"facing": "south"}, []string{"block/stairs_a", "block/stairs_b"}},
		{"no match", map[string]string{"facing": "east"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := states.ModelsFor(tt.state)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %+v", tt.want, got)
			}
			for i := range got {
				if got[i].Model != tt.want[i] {
					t.Fatalf("expected %v, got %+v", tt.want, got)
				}
			}
		})
	}
}

func TestBlockStates_Marshal(t *testing.T) {
	raw := `{"variants":{"":{"model":"block/stone"},"snowy=true":[{"model":"block/a"},{"model":"block/b","weight":2}]}}`
	var states BlockStates
	if err := json.Unmarshal([]byte(raw), &states); err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(states)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != raw {
		t.Fatalf("got %s", out)
	}

	y, err := yaml.Marshal(states)
	if err != nil {
		t.Fatal(err)
	}
	var back map[string]map[string]interface{}
	if err := yaml.Unmarshal(y, &back); err != nil {
		t.Fatal(err)
	}
	if _, ok := back["variants"]["snowy=true"].([]interface{}); !ok {
		t.Fatalf("expected a list for snowy=true in\n%s", y)
	}
}

func TestParseVariantKey(t *testing.T) {
	tests := []struct {
		key  string
		want map[string]string
	}{
		{"", map[string]string{}},
		{"normal", map[string]string{}},
		{"facing=north,half=top", map[string]string{"facing": "north", "half": "top"}},
		{"inventory", map[string]string{"inventory": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			props := ParseVariantKey(tt.key)
			got := props.Map()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
			if tt.key != "normal" && props.String() != tt.key {
				t.Fatalf("String() = %q, want %q", props.String(), tt.key)
			}
		})
	}
}

func TestVariant_PickEmpty(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
	}{
		{"nil", nil},
		{"empty", Variant{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.variant.Pick(0); got.Model != "" || got.Weight != nil {
				t.Fatalf("Pick(0) = %+v, want zero ModelProperties", got)
			}
			if got := tt.variant.Pick(7); got.Model != "" {
				t.Fatalf("Pick(7) = %+v, want zero ModelProperties", got)
			}
		})
	}

	states := NewVariantBlockStates(map[string]Variant{"": {}})
	if models := states.ModelsFor(nil); len(models) != 0 {
		t.Fatalf("ModelsFor() = %v, want no models", models)
	}
}
