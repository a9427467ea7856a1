package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/minepkg/mcassets/internals/commands"
	"github.com/minepkg/mcassets/pkg/assets"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	runner := &listRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "list <kind>",
		Short: "Lists all resources of a kind",
		Long: `Lists all resources of a kind. Known kinds are:
  blockstates, block_model, item_model, texture, texture_meta`,
		Example: `
  mcassets list blockstates
  mcassets list block-model --namespace create`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"blockstates", "block_model", "item_model", "texture", "texture_meta"},
	}, runner)

	cmd.Flags().StringVarP(&runner.namespace, "namespace", "n", "", "only list this namespace (all by default)")

	rootCmd.AddCommand(cmd.Command)
}

type listRunner struct {
	namespace string
}

func (l *listRunner) RunE(cmd *cobra.Command, args []string) error {
	kind, err := assets.ParseResourceKind(args[0])
	if err != nil {
		return &commands.CliError{
			Text:        err.Error(),
			Suggestions: []string{"Use one of: blockstates, block_model, item_model, texture, texture_meta"},
		}
	}
	if kind == assets.KindLang {
		return &commands.CliError{Text: "lang files can not be listed"}
	}

	pack, err := openPack()
	if err != nil {
		return err
	}
	defer pack.Close()

	namespaces := []string{l.namespace}
	if l.namespace == "" {
		namespaces, err = pack.Namespaces()
		if err != nil {
			return err
		}
		slices.Sort(namespaces)
	}

	var ids []string
	for _, ns := range namespaces {
		err := pack.ForEach(ns, kind, func(loc assets.ResourceLocation, _ string) error {
			ids = append(ids, loc.ID.String())
			return nil
		})
		// only complain about missing directories if a namespace was asked for
		if err != nil && !(assets.IsNotFound(err) && l.namespace == "") {
			return err
		}
	}
	slices.Sort(ids)

	return printResult(ids, func() {
		for _, id := range ids {
			fmt.Println(id)
		}
		logger.Log(fmt.Sprintf("%s %s", humanize.Comma(int64(len(ids))), kind))
	})
}
