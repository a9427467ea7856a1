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
	runner := &blockStatesRunner{}
	cmd := commands.New(&cobra.Command{
		Use:     "blockstates <block>",
		Aliases: []string{"bs", "block"},
		Short:   "Prints the variants or multipart cases of a block",
		Example: `
  mcassets blockstates oak_planks
  mcassets blockstates minecraft:oak_stairs --state facing=east,half=top,shape=straight`,
		Args: cobra.ExactArgs(1),
	}, runner)

	cmd.Flags().StringVar(&runner.state, "state", "", "print the models used for this block state (property=value,…)")

	rootCmd.AddCommand(cmd.Command)
}

type blockStatesRunner struct {
	state string
}

func (b *blockStatesRunner) RunE(cmd *cobra.Command, args []string) error {
	pack, err := openPack()
	if err != nil {
		return err
	}
	defer pack.Close()

	states, err := pack.LoadBlockStates(args[0])
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("state") {
		state, err := parseState(b.state)
		if err != nil {
			return err
		}
		models := states.ModelsFor(state)
		return printResult(models, func() {
			if len(models) == 0 {
				logger.Warn("No model matches this state")
				return
			}
			for _, m := range models {
				fmt.Println(formatModelProperties(m))
			}
		})
	}

	return printResult(states, func() {
		id := assets.ResourceIdentifier(args[0])
		if states.IsMultipart() {
			cases, _ := states.Cases()
			logger.Headline(fmt.Sprintf("%s (multipart, %d cases)", id, len(cases)))
			for _, c := range cases {
				when := "always"
				if c.When != nil {
					when = formatWhen(*c.When)
				}
				fmt.Println(gchalk.Bold(when))
				printVariant(c.Apply)
			}
			return
		}

		keys, _ := states.VariantKeys()
		logger.Headline(fmt.Sprintf("%s (%d variants)", id, len(keys)))
		for _, key := range keys {
			variant, _, _ := states.Variant(key)
			name := key
			if name == "" {
				name = `""`
			}
			fmt.Println(gchalk.Bold(name))
			printVariant(variant)
		}
	})
}

func printVariant(v assets.Variant) {
	total := v.TotalWeight()
	for _, m := range v {
		line := "  " + formatModelProperties(m)
		if len(v) > 1 && total > 0 {
			line += gchalk.Gray(fmt.Sprintf(" (%.0f%%)", float64(m.EffectiveWeight())/float64(total)*100))
		}
		fmt.Println(line)
	}
}

func formatModelProperties(m assets.ModelProperties) string {
	parts := []string{m.Model}
	if m.X != nil {
		parts = append(parts, fmt.Sprintf("x=%d", *m.X))
	}
	if m.Y != nil {
		parts = append(parts, fmt.Sprintf("y=%d", *m.Y))
	}
	if m.IsUVLocked() {
		parts = append(parts, "uvlock")
	}
	if m.Weight != nil {
		parts = append(parts, fmt.Sprintf("weight=%d", *m.Weight))
	}
	return strings.Join(parts, " ")
}

func formatWhen(w assets.WhenClause) string {
	conditions := make([]string, len(w.Conditions))
	for i, c := range w.Conditions {
		conditions[i] = formatCondition(c)
	}
	switch w.Op {
	case assets.OpOr:
		return strings.Join(conditions, " OR ")
	case assets.OpAnd:
		return strings.Join(conditions, " AND ")
	}
	return strings.Join(conditions, "")
}

func formatCondition(c assets.Condition) string {
	parts := make([]string, 0, len(c))
	for _, name := range sortedKeys(c) {
		parts = append(parts, name+"="+c[name].String())
	}
	return strings.Join(parts, ",")
}
