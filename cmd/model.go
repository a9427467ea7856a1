package cmd

import (
	"fmt"
	"strings"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/mcassets/internals/commands"
	"github.com/minepkg/mcassets/pkg/assets"
	"github.com/spf13/cobra"
)

func init() {
	runner := &modelRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "model <model>",
		Short: "Prints a block or item model",
		Example: `
  mcassets model block/stone --chain
  mcassets model compass --item
  mcassets model cube_all --flatten --output json`,
		Args: cobra.ExactArgs(1),
	}, runner)

	cmd.Flags().BoolVar(&runner.item, "item", false, "load an item model (default for ids starting with item/)")
	cmd.Flags().BoolVar(&runner.chain, "chain", false, "print the parent chain")
	cmd.Flags().BoolVar(&runner.textures, "textures", false, "print the resolved texture variables")
	cmd.Flags().BoolVar(&runner.flatten, "flatten", false, "merge the model with all of its parents")

	rootCmd.AddCommand(cmd.Command)
}

type modelRunner struct {
	item     bool
	chain    bool
	textures bool
	flatten  bool
}

type modelOutput struct {
	Model    *assets.Model   `json:"model,omitempty" yaml:"model,omitempty"`
	Chain    []string        `json:"chain,omitempty" yaml:"chain,omitempty"`
	Textures assets.Textures `json:"textures,omitempty" yaml:"textures,omitempty"`
}

func (m *modelRunner) location(id string) assets.ResourceLocation {
	kind := assets.KindBlockModel
	if m.item || strings.HasPrefix(assets.ResourceIdentifier(id).Path(), "item/") {
		kind = assets.KindItemModel
	}
	return assets.NewResourceLocation(kind, id)
}

func (m *modelRunner) RunE(cmd *cobra.Command, args []string) error {
	pack, err := openPack()
	if err != nil {
		return err
	}
	defer pack.Close()

	loc := m.location(args[0])
	model, err := pack.LoadModel(loc)
	if err != nil {
		return err
	}

	out := modelOutput{Model: model}
	var chain []*assets.Model
	if m.chain || m.textures || m.flatten {
		chain, err = pack.ResolveParentChain(model)
		if err != nil {
			return err
		}
	}
	if m.chain {
		for _, c := range chain {
			if l, ok := c.Location(); ok {
				out.Chain = append(out.Chain, l.ID.String())
			}
		}
	}
	if m.textures {
		out.Textures, err = assets.ResolveTextures(chain)
		if err != nil {
			return err
		}
	}
	if m.flatten {
		out.Model = assets.Flatten(chain)
	}

	return printResult(out, func() {
		logger.Headline(loc.String())
		fmt.Println(gchalk.Gray(pack.PathOf(loc)))

		if len(out.Chain) > 0 {
			fmt.Println(gchalk.Bold("Parents:"))
			for i, name := range out.Chain {
				fmt.Printf("  %d. %s\n", i, name)
			}
			last := chain[len(chain)-1]
			if last.Parent != nil && assets.IsBuiltin(*last.Parent) {
				fmt.Printf("  %d. %s\n", len(chain), gchalk.Gray(*last.Parent))
			}
		}

		textures := out.Model.Textures
		title := "Textures:"
		if out.Textures != nil {
			textures = out.Textures
			title = "Resolved textures:"
		}
		if len(textures) > 0 {
			fmt.Println(gchalk.Bold(title))
			for _, name := range sortedKeys(textures) {
				fmt.Printf("  #%s = %s\n", name, textures[name])
			}
		}

		if len(out.Model.Elements) > 0 {
			fmt.Println(gchalk.Bold(fmt.Sprintf("Elements: %d", len(out.Model.Elements))))
			for _, el := range out.Model.Elements {
				fmt.Printf("  %v → %v (%d faces)\n", el.From, el.To, len(el.Faces))
			}
		}
		if len(out.Model.Display) > 0 {
			fmt.Println(gchalk.Bold("Display:"))
			for _, pos := range sortedKeys(out.Model.Display) {
				fmt.Printf("  %s\n", pos)
			}
		}
	})
}
