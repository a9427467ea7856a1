package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/mattn/go-isatty"
	"github.com/minepkg/mcassets/internals/commands"
	"github.com/minepkg/mcassets/internals/downloadmgr"
	"github.com/minepkg/mcassets/internals/globals"
	"github.com/minepkg/mcassets/internals/mojang"
	"github.com/minepkg/mcassets/internals/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	runner := &fetchRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "fetch <versions…>",
		Short: "Downloads Minecraft client jars",
		Long: `Downloads the client jars of Minecraft versions as client-<version>.jar.
The jars contain the vanilla assets and can be used as --root.
"latest" and "snapshot" resolve to the newest release or snapshot.`,
		Example: `
  mcassets fetch 1.14.4
  mcassets fetch latest --dest ~/mc
  mcassets --root client-1.14.4.jar blockstates oak_planks`,
		Args: cobra.MinimumNArgs(1),
	}, runner)

	cmd.Flags().StringVarP(&runner.dest, "dest", "d", ".", "directory for the jars")
	cmd.Flags().BoolVarP(&runner.force, "force", "f", false, "download jars that already exist")

	rootCmd.AddCommand(cmd.Command)
}

type fetchRunner struct {
	dest  string
	force bool
}

func (f *fetchRunner) RunE(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := mojang.New()
	manifest, err := client.VersionManifest(ctx)
	if err != nil {
		return errors.Wrap(err, "could not fetch the version manifest")
	}

	interactive := isatty.IsTerminal(os.Stdout.Fd()) && !viper.GetBool("verbose")
	mgr := downloadmgr.New()
	var targets []string
	for _, id := range args {
		entry, ok := manifest.Find(id)
		if !ok {
			return &commands.CliError{
				Text:        fmt.Sprintf("minecraft version %s does not exist", id),
				Suggestions: []string{"Use a release like 1.14.4, \"latest\" or \"snapshot\""},
			}
		}
		target := filepath.Join(f.dest, "client-"+entry.ID+".jar")
		targets = append(targets, target)
		if _, err := os.Stat(target); err == nil && !f.force {
			overwrite := false
			if interactive {
				input := confirmation.New(target+" already exists. Download it again?", confirmation.No)
				overwrite, _ = input.RunPrompt()
			}
			if !overwrite {
				logger.Info(utils.PrettyVersion(entry.ID) + " already downloaded")
				continue
			}
		}

		details, err := client.Version(ctx, entry)
		if err != nil {
			return errors.Wrapf(err, "could not fetch details of %s", entry.ID)
		}
		jar := details.Downloads.Client
		globals.Diag.WithField("url", jar.URL).WithField("size", jar.Size).Debug("queueing client jar")

		item := downloadmgr.NewHTTPItem(jar.URL, target)
		item.Client = client.HTTP
		item.Sha1 = jar.Sha1
		item.Size = jar.Size
		mgr.Add(item)
		logger.Info(fmt.Sprintf("%s (%s)", utils.PrettyVersion(entry.ID), humanize.Bytes(uint64(jar.Size))))
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Prefix = " "
	if interactive && mgr.Len() != 0 {
		s.Suffix = fmt.Sprintf(" Downloading 0 / %d", mgr.Len())
		mgr.OnProgress = func(done, total int) {
			s.Lock()
			s.Suffix = fmt.Sprintf(" Downloading %d / %d", done, total)
			s.Unlock()
		}
		s.Start()
	}
	err = mgr.Start(ctx)
	s.Stop()
	if err != nil {
		return err
	}

	for _, target := range targets {
		logger.Success(target)
	}
	return nil
}
