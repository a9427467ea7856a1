// Package fixtures checks out Minecraft versions of a fixture repository as
// git worktrees. The repository has one tag per version, each containing
// the extracted `assets/` of that version.
package fixtures

import (
	"context"
	"os"
	"path/filepath"

	"github.com/minepkg/mcassets/internals/utils"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// GitRunner runs git with args in dir
type GitRunner func(ctx context.Context, dir string, args ...string) (string, error)

// Config is the content of a `fixtures.toml` file
type Config struct {
	// Repo is the path of the fixture repository (usually a submodule)
	Repo string `toml:"repo"`
	// Dest is the directory the worktrees are created in
	Dest string `toml:"dest"`
	// TagPrefix is prepended to the version to get the tag name
	TagPrefix string   `toml:"tag_prefix"`
	Versions  []string `toml:"versions"`
}

// LoadConfig reads a fixtures.toml file
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := Config{}
	if err := toml.Unmarshal(raw, &config); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", path)
	}
	return &config, nil
}

// Result describes what happened to one version
type Result struct {
	Version string
	Path    string
	// Skipped is true if the worktree already existed
	Skipped bool
}

// Manager creates the worktrees
type Manager struct {
	Repo      string
	Dest      string
	TagPrefix string
	Git       GitRunner
	Log       log.FieldLogger
}

// New returns a Manager that runs the git binary
func New(repo string, dest string) *Manager {
	return &Manager{
		Repo: repo,
		Dest: dest,
		Git:  utils.GitExec,
		Log:  log.StandardLogger(),
	}
}

// NewFromConfig returns a Manager for the given config. Relative paths are
// relative to base (usually the directory of fixtures.toml).
func NewFromConfig(config *Config, base string) *Manager {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	m := New(resolve(config.Repo), resolve(config.Dest))
	m.TagPrefix = config.TagPrefix
	return m
}

// WorktreePath returns the directory a version is checked out to
func (m *Manager) WorktreePath(version string) string {
	return filepath.Join(m.Dest, "assets-"+version)
}

// Init initializes the fixture repository submodule
func (m *Manager) Init(ctx context.Context) error {
	if _, err := m.Git(ctx, "", "submodule", "update", "--init", "--", m.Repo); err != nil {
		return errors.Wrap(err, "could not initialize the fixture repository")
	}
	return nil
}

// Checkout creates a worktree for every version that is not checked out yet.
// Existing directories are skipped, so Checkout can be run again after
// adding versions.
func (m *Manager) Checkout(ctx context.Context, versions []string) ([]Result, error) {
	results := make([]Result, 0, len(versions))
	for _, version := range versions {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		target, err := filepath.Abs(m.WorktreePath(version))
		if err != nil {
			return results, err
		}
		logger := m.Log.WithFields(log.Fields{"version": version, "path": target})

		if _, err := os.Stat(target); err == nil {
			logger.Debug("worktree exists, skipping")
			results = append(results, Result{Version: version, Path: target, Skipped: true})
			continue
		}

		tag := m.TagPrefix + version
		if _, err := m.Git(ctx, m.Repo, "worktree", "add", target, tag); err != nil {
			return results, errors.Wrapf(err, "could not check out %s", version)
		}
		logger.Debug("created worktree")
		results = append(results, Result{Version: version, Path: target})
	}
	return results, nil
}
