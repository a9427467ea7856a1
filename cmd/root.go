package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minepkg/mcassets/cmd/config"
	"github.com/minepkg/mcassets/internals/commands"
	"github.com/minepkg/mcassets/internals/globals"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// set by main
var (
	Version string
	Commit  string
)

var logger = globals.Logger

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mcassets",
	Short: "Inspect Minecraft assets",
	Long:  "Parse blockstates, models and textures of Minecraft versions and resource packs",

	Example: `
  mcassets --root ~/mc/1.14.4 blockstates oak_planks
  mcassets --root pack.zip model stone --chain --textures
  mcassets check tests/assets-1.12.2 tests/assets-1.14.4`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = Version
	if Commit != "" {
		rootCmd.Version += " (" + Commit + ")"
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, commands.Render(err))
		os.Exit(commands.ExitCode(err))
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/mcassets/config.toml)")
	flags.StringP("root", "r", ".", "directory, zip or jar containing assets/")
	flags.StringP("output", "o", "text", "output format: text, json or yaml")
	flags.BoolP("verbose", "v", false, "print diagnostics")
	flags.Bool("no-color", false, "disable color output")

	viper.BindPFlag("root", flags.Lookup("root"))
	viper.BindPFlag("output", flags.Lookup("output"))
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("nocolor", flags.Lookup("no-color"))

	rootCmd.AddCommand(config.SubCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("mcassets")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := os.UserConfigDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(configDir, "mcassets"))
		}
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	if err := viper.ReadInConfig(); err == nil {
		globals.Diag.WithField("path", viper.ConfigFileUsed()).Debug("using config file")
	}

	if viper.GetBool("nocolor") || os.Getenv("NO_COLOR") != "" {
		logger.DisableColor()
		commands.EmojiEnabled = false
	}
	if viper.GetBool("verbose") {
		globals.Diag.SetLevel(log.DebugLevel)
	}
}
