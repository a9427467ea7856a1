package cmd

import (
	"bytes"
	"reflect"
	"testing"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		in      string
		want    map[string]string
		wantErr bool
	}{
		{"", map[string]string{}, false},
		{"facing=north", map[string]string{"facing": "north"}, false},
		{"facing=north, half=top", map[string]string{"facing": "north", "half": "top"}, false},
		{"snowy=", map[string]string{"snowy": ""}, false},
		{"facing", nil, true},
		{"=north", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseState(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseState() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("parseState() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVersionFromRoot(t *testing.T) {
	tests := map[string]string{
		"tests/assets-1.14.4":  "1.14.4",
		"tests/assets-1.12.2/": "1.12.2",
		"assets-19w02a":        "19w02a",
		"client-1.16.5.jar":    "1.16.5",
		"assets-1.14.zip":      "1.14",
		"client.jar":           "",
		".":                    "",
	}
	for root, want := range tests {
		if got := versionFromRoot(root); got != want {
			t.Fatalf("versionFromRoot(%q) = %q, want %q", root, got, want)
		}
	}
}

func TestEncode(t *testing.T) {
	v := map[string]interface{}{"model": "block/stone", "weight": 90}

	buf := bytes.Buffer{}
	if err := encode(&buf, outputJSON, v); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"model\": \"block/stone\",\n  \"weight\": 90\n}\n"
	if buf.String() != want {
		t.Fatalf("json = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := encode(&buf, outputYAML, v); err != nil {
		t.Fatal(err)
	}
	want = "model: block/stone\nweight: 90\n"
	if buf.String() != want {
		t.Fatalf("yaml = %q, want %q", buf.String(), want)
	}

	if err := encode(&buf, "xml", v); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestSortedKeys(t *testing.T) {
	got := sortedKeys(map[string]int{"b": 1, "a": 2, "c": 3})
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("sortedKeys() = %v", got)
	}
}
