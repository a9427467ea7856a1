package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const (
	configKindString = iota
	configKindBool
	configKindInt
)

type configEntry struct {
	kind int
	help string
}

var config = map[string]configEntry{
	"root":              {configKindString, "default --root"},
	"output":            {configKindString, "default --output (text, json or yaml)"},
	"verbose":           {configKindBool, "print diagnostics"},
	"nocolor":           {configKindBool, "disable color output"},
	"fixtures.repo":     {configKindString, "path of the fixture repository"},
	"fixtures.dest":     {configKindString, "directory for fixture worktrees"},
	"check.concurrency": {configKindInt, "default --concurrency of check"},
}

// SubCmd is the `config` command
var SubCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global config options",
}

// Path returns the location of the global config file
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "mcassets", "config.toml"), nil
}
