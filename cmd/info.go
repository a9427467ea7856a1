package cmd

import (
	"fmt"
	"io/fs"

	"github.com/dustin/go-humanize"
	"github.com/jwalton/gchalk"
	"github.com/minepkg/mcassets/internals/commands"
	"github.com/minepkg/mcassets/pkg/assets"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "info",
		Short: "Prints an overview of the asset pack",
		Args:  cobra.NoArgs,
	}, &infoRunner{})

	rootCmd.AddCommand(cmd.Command)
}

type infoRunner struct{}

type namespaceInfo struct {
	Name         string `json:"name" yaml:"name"`
	BlockStates  int    `json:"blockstates" yaml:"blockstates"`
	BlockModels  int    `json:"block_models" yaml:"block_models"`
	ItemModels   int    `json:"item_models" yaml:"item_models"`
	Textures     int    `json:"textures" yaml:"textures"`
	TextureBytes uint64 `json:"texture_bytes" yaml:"texture_bytes"`
	Language     string `json:"language,omitempty" yaml:"language,omitempty"`
}

type packInfo struct {
	Root        string          `json:"root" yaml:"root"`
	PackFormat  int             `json:"pack_format,omitempty" yaml:"pack_format,omitempty"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Namespaces  []namespaceInfo `json:"namespaces" yaml:"namespaces"`
}

func (i *infoRunner) RunE(cmd *cobra.Command, args []string) error {
	pack, err := openPack()
	if err != nil {
		return err
	}
	defer pack.Close()

	info := packInfo{Root: pack.Root()}
	meta, err := pack.LoadPackMeta()
	switch {
	case err == nil:
		info.PackFormat = meta.Pack.PackFormat
		info.Description = meta.Pack.DescriptionText()
	case !assets.IsNotFound(err):
		return err
	}

	namespaces, err := pack.Namespaces()
	if err != nil {
		return err
	}
	slices.Sort(namespaces)

	for _, ns := range namespaces {
		nsInfo := namespaceInfo{Name: ns}
		counters := map[assets.ResourceKind]*int{
			assets.KindBlockStates: &nsInfo.BlockStates,
			assets.KindBlockModel:  &nsInfo.BlockModels,
			assets.KindItemModel:   &nsInfo.ItemModels,
		}
		for kind, counter := range counters {
			err := pack.ForEach(ns, kind, func(assets.ResourceLocation, string) error {
				*counter++
				return nil
			})
			if err != nil && !assets.IsNotFound(err) {
				return err
			}
		}

		err := pack.ForEachTexture(ns, func(loc assets.ResourceLocation, _ string) error {
			nsInfo.Textures++
			if stat, err := fs.Stat(pack.FS(), loc.SlashPath()); err == nil {
				nsInfo.TextureBytes += uint64(stat.Size())
			}
			return nil
		})
		if err != nil && !assets.IsNotFound(err) {
			return err
		}

		if lang, err := pack.LoadLang(ns, "en_us"); err == nil {
			nsInfo.Language = lang["language.name"]
		}
		info.Namespaces = append(info.Namespaces, nsInfo)
	}

	return printResult(info, func() {
		logger.Headline(info.Root)
		if info.PackFormat != 0 {
			fmt.Printf("pack format %d: %s\n", info.PackFormat, info.Description)
		}
		for _, ns := range info.Namespaces {
			fmt.Println(gchalk.Bold(ns.Name))
			fmt.Printf("  blockstates:  %s\n", humanize.Comma(int64(ns.BlockStates)))
			fmt.Printf("  block models: %s\n", humanize.Comma(int64(ns.BlockModels)))
			fmt.Printf("  item models:  %s\n", humanize.Comma(int64(ns.ItemModels)))
			fmt.Printf("  textures:     %s (%s)\n", humanize.Comma(int64(ns.Textures)), humanize.Bytes(ns.TextureBytes))
			if ns.Language != "" {
				fmt.Printf("  language:     %s\n", ns.Language)
			}
		}
	})
}
