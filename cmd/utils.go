package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/minepkg/mcassets/internals/commands"
	"github.com/minepkg/mcassets/internals/globals"
	"github.com/minepkg/mcassets/pkg/assets"
	"github.com/spf13/viper"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// openPack opens the pack configured with --root
func openPack() (*assets.AssetPack, error) {
	root := viper.GetString("root")
	if root == "" {
		root = "."
	}
	globals.Diag.WithField("root", root).Debug("opening asset pack")
	return assets.Open(root)
}

// output formats
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString("output"))
	switch format {
	case "", outputText:
		return outputText, nil
	case outputJSON, outputYAML:
		return format, nil
	}
	return "", &commands.CliError{
		Text:        fmt.Sprintf("unknown output format %q", format),
		Suggestions: []string{"Use --output text, --output json or --output yaml"},
	}
}

// printResult prints v as json or yaml, or calls text for the text output
func printResult(v interface{}, text func()) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	if format == outputText {
		text()
		return nil
	}
	return encode(os.Stdout, format, v)
}

func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	}
	return fmt.Errorf("can not encode %s", format)
}

// parseState parses "facing=north,half=top" into a map
func parseState(s string) (map[string]string, error) {
	state := map[string]string{}
	if s == "" {
		return state, nil
	}
	for _, part := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(part, "=")
		if !ok || name == "" {
			return nil, &commands.CliError{
				Text:        fmt.Sprintf("invalid state %q", part),
				Suggestions: []string{"Use property=value pairs separated by commas: --state facing=north,half=top"},
			}
		}
		state[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return state, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// versionFromRoot returns "1.14.4" for roots like "tests/assets-1.14.4" or
// "client-1.14.4.jar"
func versionFromRoot(root string) string {
	name := filepath.Base(filepath.Clean(root))
	switch filepath.Ext(name) {
	case ".jar", ".zip":
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	for _, prefix := range []string{"assets-", "client-"} {
		if version, ok := strings.CutPrefix(name, prefix); ok {
			return version
		}
	}
	return ""
}
