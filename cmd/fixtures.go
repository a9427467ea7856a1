package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/minepkg/mcassets/internals/commands"
	"github.com/minepkg/mcassets/internals/fixtures"
	"github.com/minepkg/mcassets/internals/globals"
	"github.com/minepkg/mcassets/internals/utils"
	"github.com/minepkg/mcassets/pkg/assets"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Manage the Minecraft versions used as test fixtures",
}

func init() {
	runner := &fixturesRunner{}
	checkout := commands.New(&cobra.Command{
		Use:   "checkout [versions…]",
		Short: "Checks out Minecraft versions of the fixture repository as assets-<version> worktrees",
		Long: `Checks out Minecraft versions of the fixture repository as assets-<version>
worktrees. Versions that are already checked out are skipped.

Without arguments the versions listed in fixtures.toml are used.`,
		Example: `
  mcassets fixtures checkout
  mcassets fixtures checkout 1.12.2 1.14.4 --init`,
	}, runner)

	flags := checkout.Flags()
	flags.StringVar(&runner.configPath, "file", "fixtures.toml", "fixture config file")
	flags.StringVar(&runner.repo, "repo", "", "path of the fixture repository (overrides fixtures.repo)")
	flags.StringVar(&runner.dest, "dest", "", "directory for the worktrees (overrides fixtures.dest)")
	flags.BoolVar(&runner.init, "init", false, "initialize the fixture submodule first")
	flags.BoolVarP(&runner.yes, "yes", "y", false, "do not ask for confirmation")

	fixturesCmd.AddCommand(checkout.Command)
	rootCmd.AddCommand(fixturesCmd)
}

type fixturesRunner struct {
	configPath string
	repo       string
	dest       string
	init       bool
	yes        bool
}

func (f *fixturesRunner) RunE(cmd *cobra.Command, args []string) error {
	config := &fixtures.Config{}
	base := "."
	loaded, err := fixtures.LoadConfig(f.configPath)
	switch {
	case err == nil:
		config = loaded
		base = filepath.Dir(f.configPath)
	case cmd.Flags().Changed("file") || !os.IsNotExist(err):
		return err
	}

	manager := fixtures.NewFromConfig(config, base)
	manager.Log = globals.Diag
	if repo := firstNonEmpty(f.repo, viper.GetString("fixtures.repo")); repo != "" {
		manager.Repo = repo
	}
	if dest := firstNonEmpty(f.dest, viper.GetString("fixtures.dest")); dest != "" {
		manager.Dest = dest
	}
	if manager.Repo == "" {
		return &commands.CliError{
			Text: "no fixture repository configured",
			Suggestions: []string{
				"Pass --repo path/to/minecraft-assets",
				"Set it permanently: mcassets config set fixtures.repo path/to/minecraft-assets",
				`Add repo = "…" to fixtures.toml`,
			},
		}
	}
	if manager.Dest == "" {
		manager.Dest = filepath.Dir(manager.Repo)
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) && !f.yes
	versions := args
	if len(versions) == 0 {
		versions = config.Versions
	}
	if len(versions) == 0 && interactive {
		input, err := utils.StringPrompt(&promptui.Prompt{
			Label: "Versions to check out (separated by spaces)",
		})
		if err != nil {
			return err
		}
		versions = strings.Fields(input)
	}
	if len(versions) == 0 {
		return &commands.CliError{
			Text:        "no versions to check out",
			Suggestions: []string{"Pass versions as arguments: mcassets fixtures checkout 1.14.4", "List them in fixtures.toml: versions = [\"1.14.4\"]"},
		}
	}
	assets.SortVersions(versions)

	if interactive {
		ok, err := utils.BoolPrompt(&promptui.Prompt{
			Label:   fmt.Sprintf("Check out %d versions into %s", len(versions), manager.Dest),
			Default: "y",
		})
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("Aborting")
			return nil
		}
	}

	ctx := context.Background()
	task := logger.NewTask(len(versions))
	if f.init {
		logger.Info("Initializing " + manager.Repo)
		if err := manager.Init(ctx); err != nil {
			return err
		}
	}

	results, err := manager.Checkout(ctx, versions)
	for _, r := range results {
		if r.Skipped {
			task.Step("⏭", utils.PrettyVersion(r.Version)+" already checked out")
			continue
		}
		task.Step("🌳", utils.PrettyVersion(r.Version)+" → "+r.Path)
	}
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
