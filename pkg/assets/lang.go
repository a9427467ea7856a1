package assets

import (
	"encoding/json"
	"errors"
	"path"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
)

// Lang maps translation keys ("block.minecraft.stone") to text
type Lang map[string]string

// LoadLang loads the translations of a locale ("en_us") in a namespace.
// `lang/<locale>.json` is tried first, then the pre-1.13 `lang/<locale>.lang`
// properties format (as "en_US" and "en_us").
func (p *AssetPack) LoadLang(namespace, locale string) (Lang, error) {
	if namespace == "" {
		namespace = MinecraftNamespace
	}
	dir := path.Join(KindLang.Category().Directory(), namespace, KindLang.Directory())
	lower := strings.ToLower(locale)

	name := path.Join(dir, lower+".json")
	data, err := readFile(p.fsys, name, p.displayPath(name))
	if err == nil {
		lang := Lang{}
		if err := json.Unmarshal(data, &lang); err != nil {
			return nil, newError(ErrParse, p.displayPath(name), err)
		}
		return lang, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	for _, candidate := range legacyLangNames(locale) {
		name := path.Join(dir, candidate)
		data, err := readFile(p.fsys, name, p.displayPath(name))
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return parseLegacyLang(data, p.displayPath(name))
	}

	return nil, newErrorf(ErrNotFound, p.displayPath(path.Join(dir, lower+".json")), "no lang file for %s", locale)
}

func legacyLangNames(locale string) []string {
	names := []string{locale + ".lang"}
	parts := strings.SplitN(locale, "_", 2)
	if len(parts) == 2 {
		// en_US
		mixed := strings.ToLower(parts[0]) + "_" + strings.ToUpper(parts[1]) + ".lang"
		if mixed != names[0] {
			names = append(names, mixed)
		}
	}
	if lower := strings.ToLower(locale) + ".lang"; lower != names[0] {
		names = append(names, lower)
	}
	return names
}

// parseLegacyLang parses `key=value` lines. Values may contain "%s" and "${…}",
// so expansion is disabled.
func parseLegacyLang(data []byte, displayPath string) (Lang, error) {
	loader := properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes(data)
	if err != nil {
		return nil, newError(ErrParse, displayPath, err)
	}
	return Lang(props.Map()), nil
}

func (p *AssetPack) displayPath(name string) string {
	return filepath.Join(p.root, filepath.FromSlash(name))
}
