/*
Package assets reads Minecraft assets (block states, models, textures) from a
directory, a resource pack zip or a client jar.

	pack := assets.AtPath("~/.minecraft/versions/1.14.4/extracted")

	states, err := pack.LoadBlockStates("oak_planks")
	variants, err := states.Variants()
	fmt.Println(variants[""][0].Model) // block/oak_planks

Every load returns a freshly decoded value. Wrap the pack in a Cache to
share loaded values between callers.
*/
package assets

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mholt/archiver/v3"
)

// AssetPack reads assets from a single root. The root is the directory (or
// archive) that contains `assets/`.
type AssetPack struct {
	root string
	fsys fs.FS

	closer  io.Closer
	tempDir string
}

// AtPath returns an AssetPack reading from the directory root
func AtPath(root string) *AssetPack {
	return &AssetPack{root: root, fsys: os.DirFS(root)}
}

// NewAssetPack returns an AssetPack reading from fsys. name is only used in
// error messages.
func NewAssetPack(name string, fsys fs.FS) *AssetPack {
	return &AssetPack{root: name, fsys: fsys}
}

// Open returns an AssetPack for a directory, a zip resource pack, a jar or
// any other archive format archiver knows (those get extracted to a
// temporary directory). Call Close when done.
func Open(root string) (*AssetPack, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newError(ErrNotFound, root, err)
		}
		return nil, newError(ErrIO, root, err)
	}
	if info.IsDir() {
		return AtPath(root), nil
	}

	switch strings.ToLower(filepath.Ext(root)) {
	case ".zip", ".jar":
		r, err := zip.OpenReader(root)
		if err != nil {
			return nil, newError(ErrIO, root, err)
		}
		return &AssetPack{root: root, fsys: r, closer: r}, nil
	}

	format, err := archiver.ByExtension(root)
	if err != nil {
		return nil, newError(ErrIO, root, err)
	}
	unarchiver, ok := format.(archiver.Unarchiver)
	if !ok {
		return nil, newErrorf(ErrIO, root, "archive format can not be extracted")
	}
	tempDir, err := os.MkdirTemp("", "mcassets-")
	if err != nil {
		return nil, newError(ErrIO, root, err)
	}
	if err := unarchiver.Unarchive(root, tempDir); err != nil {
		os.RemoveAll(tempDir)
		return nil, newError(ErrIO, root, err)
	}
	return &AssetPack{root: root, fsys: os.DirFS(tempDir), tempDir: tempDir}, nil
}

// Close releases the archive (if any)
func (p *AssetPack) Close() error {
	var err error
	if p.closer != nil {
		err = p.closer.Close()
	}
	if p.tempDir != "" {
		if rmErr := os.RemoveAll(p.tempDir); err == nil {
			err = rmErr
		}
	}
	return err
}

// Root returns the root this pack was opened with
func (p *AssetPack) Root() string {
	return p.root
}

// FS returns the underlying file system
func (p *AssetPack) FS() fs.FS {
	return p.fsys
}

// PathOf returns the path of a resource for display purposes
func (p *AssetPack) PathOf(loc ResourceLocation) string {
	return loc.Path(p.root)
}

// Exists returns true if the resource file exists
func (p *AssetPack) Exists(loc ResourceLocation) bool {
	_, err := fs.Stat(p.fsys, loc.SlashPath())
	return err == nil
}

// ReadResource returns the raw bytes of a resource.
// Fails with ErrNotFound if the file does not exist.
func (p *AssetPack) ReadResource(loc ResourceLocation) ([]byte, error) {
	return readFile(p.fsys, loc.SlashPath(), p.PathOf(loc))
}

// LoadBlockStates loads the block states of a block.
//
//	pack.LoadBlockStates("stone")
//	pack.LoadBlockStates("minecraft:dirt")
func (p *AssetPack) LoadBlockStates(id string) (*BlockStates, error) {
	return loadResource[BlockStates](p, BlockStatesLocation(id))
}

// LoadBlockModel loads a block model by name ("stone") or path ("block/stone")
func (p *AssetPack) LoadBlockModel(id string) (*Model, error) {
	return p.LoadModel(BlockModelLocation(id))
}

// LoadItemModel loads an item model by name ("compass") or path ("item/compass")
func (p *AssetPack) LoadItemModel(id string) (*Model, error) {
	return p.LoadModel(ItemModelLocation(id))
}

// LoadModel loads a block or item model
func (p *AssetPack) LoadModel(loc ResourceLocation) (*Model, error) {
	if !loc.Kind.IsModel() {
		return nil, newErrorf(ErrNotFound, loc.SlashPath(), "%s is not a model", loc)
	}
	if loc.IsBuiltin() {
		return nil, newErrorf(ErrNotFound, loc.SlashPath(), "%s is builtin and has no file", loc)
	}
	m, err := loadResource[Model](p, loc)
	if err != nil {
		return nil, err
	}
	m.location = &loc
	return m, nil
}

// ResolveParentChain loads the ancestors of m from this pack
func (p *AssetPack) ResolveParentChain(m *Model) ([]*Model, error) {
	return m.ResolveParentChain(p)
}

// LoadBlockModelRecursive loads a block model and all its ancestors.
// The first element is the requested model, the last the topmost parent.
func (p *AssetPack) LoadBlockModelRecursive(id string) ([]*Model, error) {
	m, err := p.LoadBlockModel(id)
	if err != nil {
		return nil, err
	}
	return m.ResolveParentChain(p)
}

// LoadItemModelRecursive loads an item model and all its ancestors
func (p *AssetPack) LoadItemModelRecursive(id string) ([]*Model, error) {
	m, err := p.LoadItemModel(id)
	if err != nil {
		return nil, err
	}
	return m.ResolveParentChain(p)
}

// LoadTextureMeta loads the `.png.mcmeta` file of a texture ("block/water_still")
func (p *AssetPack) LoadTextureMeta(id string) (*TextureMeta, error) {
	return loadResource[TextureMeta](p, TextureMetaLocation(id))
}

// LoadPackMeta loads `pack.mcmeta` from the pack root
func (p *AssetPack) LoadPackMeta() (*PackMeta, error) {
	display := filepath.Join(p.root, "pack.mcmeta")
	data, err := readFile(p.fsys, "pack.mcmeta", display)
	if err != nil {
		return nil, err
	}
	return decode[PackMeta](data, display)
}

func loadResource[T any](p *AssetPack, loc ResourceLocation) (*T, error) {
	data, err := p.ReadResource(loc)
	if err != nil {
		return nil, err
	}
	return decode[T](data, p.PathOf(loc))
}

// Namespaces lists the namespaces in `assets/`
func (p *AssetPack) Namespaces() ([]string, error) {
	entries, err := fs.ReadDir(p.fsys, CategoryAssets.Directory())
	if err != nil {
		return nil, p.fsError(CategoryAssets.Directory(), err)
	}
	var namespaces []string
	for _, entry := range entries {
		if entry.IsDir() {
			namespaces = append(namespaces, entry.Name())
		}
	}
	return namespaces, nil
}

// WalkFunc is called for every resource found by ForEach. path is the file path for display.
type WalkFunc func(loc ResourceLocation, path string) error

// ForEach calls fn for every resource of kind in namespace. Sub directories
// are walked, entries whose name starts with "_" are skipped.
// Fails with ErrNotFound if the directory does not exist.
func (p *AssetPack) ForEach(namespace string, kind ResourceKind, fn WalkFunc) error {
	dir := path.Join(kind.Category().Directory(), namespace, kind.Directory())
	suffix := "." + kind.Extension()

	err := fs.WalkDir(p.fsys, dir, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if name != dir && strings.HasPrefix(d.Name(), "_") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(name, suffix) {
			return nil
		}
		rel := strings.TrimSuffix(strings.TrimPrefix(name, dir+"/"), suffix)
		loc := NewResourceLocation(kind, namespace+":"+rel)
		return fn(loc, filepath.Join(p.root, filepath.FromSlash(name)))
	})
	if err != nil {
		var assetErr *Error
		if errors.As(err, &assetErr) {
			return err
		}
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return p.fsError(pathErr.Path, pathErr)
		}
		return err
	}
	return nil
}

// ForEachBlockStates calls fn for every file in `assets/<namespace>/blockstates/`
func (p *AssetPack) ForEachBlockStates(namespace string, fn WalkFunc) error {
	return p.ForEach(namespace, KindBlockStates, fn)
}

// ForEachBlockModel calls fn for every file in `assets/<namespace>/models/block/`
func (p *AssetPack) ForEachBlockModel(namespace string, fn WalkFunc) error {
	return p.ForEach(namespace, KindBlockModel, fn)
}

// ForEachItemModel calls fn for every file in `assets/<namespace>/models/item/`
func (p *AssetPack) ForEachItemModel(namespace string, fn WalkFunc) error {
	return p.ForEach(namespace, KindItemModel, fn)
}

// ForEachTexture calls fn for every png in `assets/<namespace>/textures/`
func (p *AssetPack) ForEachTexture(namespace string, fn WalkFunc) error {
	return p.ForEach(namespace, KindTexture, fn)
}

func (p *AssetPack) fsError(name string, err error) error {
	display := filepath.Join(p.root, filepath.FromSlash(name))
	if os.IsNotExist(err) {
		return newError(ErrNotFound, display, err)
	}
	return newError(ErrIO, display, err)
}
