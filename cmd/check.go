package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/jwalton/gchalk"
	"github.com/mattn/go-isatty"
	"github.com/minepkg/mcassets/internals/commands"
	"github.com/minepkg/mcassets/internals/conformance"
	"github.com/minepkg/mcassets/internals/globals"
	"github.com/minepkg/mcassets/pkg/assets"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	runner := &checkRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "check [roots…]",
		Short: "Loads every blockstates file and model and reports failures",
		Long: `Loads every blockstates file and model (including the parent chain) of
one or more asset roots. Exits with 1 if anything failed to load.

Roots named assets-<version> (as created by "mcassets fixtures checkout")
also get version specific checks.`,
		Example: `
  mcassets check
  mcassets check tests/assets-1.12.2 tests/assets-1.14.4 --strict-textures`,
	}, runner)

	cmd.Flags().IntVarP(&runner.concurrency, "concurrency", "j", 16, "number of files checked at once")
	cmd.Flags().BoolVar(&runner.strictTextures, "strict-textures", false, "also fail on unresolved texture variables")
	cmd.Flags().StringVar(&runner.version, "mc-version", "", "Minecraft version of the root (detected from assets-<version> names)")

	rootCmd.AddCommand(cmd.Command)
}

type checkRunner struct {
	concurrency    int
	strictTextures bool
	version        string
}

func (c *checkRunner) RunE(cmd *cobra.Command, args []string) error {
	roots := args
	if len(roots) == 0 {
		roots = []string{viper.GetString("root")}
	}

	checker := conformance.New()
	checker.Concurrency = c.concurrency
	if !cmd.Flags().Changed("concurrency") && viper.IsSet("check.concurrency") {
		checker.Concurrency = viper.GetInt("check.concurrency")
	}
	checker.StrictTextures = c.strictTextures
	checker.Log = globals.Diag

	for _, root := range roots {
		pack, err := assets.Open(root)
		if err != nil {
			return errors.Wrapf(err, "could not open %s", root)
		}
		defer pack.Close()

		version := c.version
		if version == "" {
			version = versionFromRoot(root)
		}
		checker.Add(conformance.Target{Pack: pack, Version: version})
	}

	format, err := outputFormat()
	if err != nil {
		return err
	}
	interactive := format == outputText && isatty.IsTerminal(os.Stdout.Fd()) && !viper.GetBool("verbose")
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Prefix = " "
	if interactive {
		checker.OnProgress = func(done, total int) {
			s.Lock()
			s.Suffix = fmt.Sprintf(" Checking %s / %s", humanize.Comma(int64(done)), humanize.Comma(int64(total)))
			s.Unlock()
		}
		s.Start()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	reports, err := checker.Start(ctx)
	if interactive {
		s.Stop()
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range reports {
		failed += len(r.Failures)
	}

	err = printResult(reportsOutput(reports), func() {
		for _, r := range reports {
			printReport(r)
		}
	})
	if err != nil {
		return err
	}

	if failed != 0 {
		return &commands.CliError{
			Text: fmt.Sprintf("%s resources failed to load", humanize.Comma(int64(failed))),
			Help: "Run with --verbose to see every failure as it happens",
		}
	}
	return nil
}

func printReport(r *conformance.Report) {
	title := r.Root
	if r.Version != "" {
		title += " (" + r.Version + ")"
	}
	logger.Headline(title)

	logger.Info(fmt.Sprintf(
		"  %s blockstates, %s block models, %s item models in %s",
		humanize.Comma(int64(r.Checked[assets.KindBlockStates])),
		humanize.Comma(int64(r.Checked[assets.KindBlockModel])),
		humanize.Comma(int64(r.Checked[assets.KindItemModel])),
		r.Duration.Round(time.Millisecond),
	))
	if r.OK() {
		logger.Success("  all resources loaded")
		return
	}
	for _, f := range r.Failures {
		fmt.Printf("  %s %s\n", gchalk.Red("✗"), f.Location)
		fmt.Printf("    %s\n", gchalk.Gray(f.Err.Error()))
	}
}

type reportOutput struct {
	Root     string         `json:"root" yaml:"root"`
	Version  string         `json:"version,omitempty" yaml:"version,omitempty"`
	Checked  map[string]int `json:"checked" yaml:"checked"`
	Failures []failureEntry `json:"failures" yaml:"failures"`
	Duration string         `json:"duration" yaml:"duration"`
}

type failureEntry struct {
	Kind  string `json:"kind" yaml:"kind"`
	ID    string `json:"id" yaml:"id"`
	Error string `json:"error" yaml:"error"`
}

func reportsOutput(reports []*conformance.Report) []reportOutput {
	out := make([]reportOutput, len(reports))
	for i, r := range reports {
		checked := map[string]int{}
		for kind, n := range r.Checked {
			checked[kind.String()] = n
		}
		failures := make([]failureEntry, len(r.Failures))
		for j, f := range r.Failures {
			failures[j] = failureEntry{Kind: f.Location.Kind.String(), ID: f.Location.ID.String(), Error: f.Err.Error()}
		}
		out[i] = reportOutput{
			Root:     r.Root,
			Version:  r.Version,
			Checked:  checked,
			Failures: failures,
			Duration: r.Duration.String(),
		}
	}
	return out
}
