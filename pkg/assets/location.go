package assets

import (
	"fmt"
	"path"
	"path/filepath"
)

// ResourceLocation is a resource identifier together with its kind.
// It knows where the resource is stored inside an asset pack.
type ResourceLocation struct {
	Kind ResourceKind
	ID   ResourceIdentifier
}

// NewResourceLocation returns a location for the given kind and id
func NewResourceLocation(kind ResourceKind, id string) ResourceLocation {
	return ResourceLocation{Kind: kind, ID: ResourceIdentifier(id)}
}

// BlockStatesLocation returns the location of `blockstates/<id>.json`
func BlockStatesLocation(id string) ResourceLocation {
	return NewResourceLocation(KindBlockStates, id)
}

// BlockModelLocation returns the location of `models/block/<id>.json`.
// A "block/" prefix in id is accepted and ignored.
func BlockModelLocation(id string) ResourceLocation {
	return NewResourceLocation(KindBlockModel, id)
}

// ItemModelLocation returns the location of `models/item/<id>.json`.
// An "item/" prefix in id is accepted and ignored.
func ItemModelLocation(id string) ResourceLocation {
	return NewResourceLocation(KindItemModel, id)
}

// TextureLocation returns the location of `textures/<id>.png`
func TextureLocation(id string) ResourceLocation {
	return NewResourceLocation(KindTexture, id)
}

// TextureMetaLocation returns the location of `textures/<id>.png.mcmeta`
func TextureMetaLocation(id string) ResourceLocation {
	return NewResourceLocation(KindTextureMeta, id)
}

// Namespace returns the namespace of the resource
func (l ResourceLocation) Namespace() string {
	return l.ID.Namespace()
}

// Name returns the path of the resource relative to its kind directory (without extension)
func (l ResourceLocation) Name() string {
	if l.Kind.IsModel() {
		return ModelName(string(l.ID))
	}
	return l.ID.Path()
}

// IsBuiltin returns true for builtin models that have no file
func (l ResourceLocation) IsBuiltin() bool {
	return l.Kind.IsModel() && IsBuiltin(string(l.ID))
}

// Canonical returns the location with an explicit namespace
func (l ResourceLocation) Canonical() ResourceLocation {
	return ResourceLocation{Kind: l.Kind, ID: l.ID.Canonical()}
}

// SlashPath returns the slash separated path relative to the pack root,
// for example `assets/minecraft/blockstates/stone.json`
func (l ResourceLocation) SlashPath() string {
	return path.Join(
		l.Kind.Category().Directory(),
		l.Namespace(),
		l.Kind.Directory(),
		l.Name()+"."+l.Kind.Extension(),
	)
}

// Path returns the file path of this resource inside root using the
// separator of the current platform
func (l ResourceLocation) Path(root string) string {
	return filepath.Join(root, filepath.FromSlash(l.SlashPath()))
}

// key identifies the file of a location. "stone", "minecraft:stone" and
// "block/stone" (for models) have the same key.
func (l ResourceLocation) key() string {
	return l.SlashPath()
}

func (l ResourceLocation) String() string {
	return fmt.Sprintf("%s(%s:%s)", l.Kind, l.Namespace(), l.Name())
}

// Resolve returns the path of the named resource in root. The namespace
// defaults to "minecraft" if empty. The file is not checked for existence.
//
//	Resolve("/mc", "", KindBlockStates, "oak_planks") // "/mc/assets/minecraft/blockstates/oak_planks.json"
func Resolve(root, namespace string, kind ResourceKind, name string) string {
	id := name
	if namespace != "" {
		id = namespace + ":" + ResourceIdentifier(name).Path()
	}
	return NewResourceLocation(kind, id).Path(root)
}
