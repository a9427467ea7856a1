package assets

import (
	"fmt"
	"strings"

	strcase "github.com/stoewer/go-strcase"
)

// ResourceCategory is the top level directory of a resource
type ResourceCategory int

const (
	// CategoryAssets are client side resources in `assets/`
	CategoryAssets ResourceCategory = iota
	// CategoryData are server side resources in `data/`
	CategoryData
)

// Directory returns the directory name of this category
func (c ResourceCategory) Directory() string {
	if c == CategoryData {
		return "data"
	}
	return "assets"
}

// ResourceKind is the type of a resource. It determines the directory and
// file extension of the resource.
type ResourceKind int

const (
	// KindBlockStates are `blockstates/*.json` files
	KindBlockStates ResourceKind = iota
	// KindBlockModel are `models/block/*.json` files
	KindBlockModel
	// KindItemModel are `models/item/*.json` files
	KindItemModel
	// KindTexture are `textures/**.png` files
	KindTexture
	// KindTextureMeta are `textures/**.png.mcmeta` files
	KindTextureMeta
	// KindLang are `lang/*.json` files (`*.lang` before 1.13)
	KindLang
)

var kindNames = map[ResourceKind]string{
	KindBlockStates: "blockstates",
	KindBlockModel:  "block_model",
	KindItemModel:   "item_model",
	KindTexture:     "texture",
	KindTextureMeta: "texture_meta",
	KindLang:        "lang",
}

// Kinds lists all known kinds
var Kinds = []ResourceKind{
	KindBlockStates,
	KindBlockModel,
	KindItemModel,
	KindTexture,
	KindTextureMeta,
	KindLang,
}

func (k ResourceKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ResourceKind(%d)", int(k))
}

// Category is always CategoryAssets for the kinds known so far
func (k ResourceKind) Category() ResourceCategory {
	return CategoryAssets
}

// Directory returns the directory (relative to `assets/<namespace>/`) of this kind
func (k ResourceKind) Directory() string {
	switch k {
	case KindBlockStates:
		return "blockstates"
	case KindBlockModel:
		return "models/block"
	case KindItemModel:
		return "models/item"
	case KindTexture, KindTextureMeta:
		return "textures"
	case KindLang:
		return "lang"
	}
	return ""
}

// Extension returns the file extension (without leading dot)
func (k ResourceKind) Extension() string {
	switch k {
	case KindTexture:
		return "png"
	case KindTextureMeta:
		return "png.mcmeta"
	}
	return "json"
}

// IsModel returns true for block and item models
func (k ResourceKind) IsModel() bool {
	return k == KindBlockModel || k == KindItemModel
}

// ParseResourceKind parses kind names like "block_model", "BlockModel", "block-model"
// or "models/block"
func ParseResourceKind(s string) (ResourceKind, error) {
	name := strcase.SnakeCase(strings.ReplaceAll(s, "/", "_"))
	switch name {
	case "block_states", "blockstate", "block_state":
		return KindBlockStates, nil
	case "models_block":
		return KindBlockModel, nil
	case "models_item":
		return KindItemModel, nil
	case "textures":
		return KindTexture, nil
	}
	for kind, kindName := range kindNames {
		if name == kindName {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown resource kind %q", s)
}
