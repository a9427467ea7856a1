package assets

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ResolveTexture resolves a texture variable ("all" or "#all") against a
// parent chain. The first model (the child) wins over its ancestors, and
// "#other" values are followed until a texture path is found.
func ResolveTexture(chain []*Model, name string) (string, error) {
	variable := strings.TrimPrefix(name, "#")
	seen := map[string]bool{}

	for {
		if seen[variable] {
			return "", newErrorf(ErrUnresolvedTextureVariable, "", "#%s references itself", variable)
		}
		seen[variable] = true

		value, ok := lookupTexture(chain, variable)
		if !ok {
			return "", newErrorf(ErrUnresolvedTextureVariable, chainPath(chain), "#%s is not defined", variable)
		}
		if !IsTextureVariable(value) {
			return value, nil
		}
		variable = value[1:]
	}
}

// ResolveTextures resolves every texture variable defined anywhere in the chain
func ResolveTextures(chain []*Model) (Textures, error) {
	names := map[string]bool{}
	for _, m := range chain {
		for name := range m.Textures {
			names[name] = true
		}
	}
	sorted := maps.Keys(names)
	slices.Sort(sorted)

	resolved := make(Textures, len(sorted))
	for _, name := range sorted {
		value, err := ResolveTexture(chain, name)
		if err != nil {
			return nil, err
		}
		resolved[name] = value
	}
	return resolved, nil
}

// ResolveFaceTexture returns the texture path of an element face
func ResolveFaceTexture(chain []*Model, face ElementFace) (string, error) {
	if !IsTextureVariable(face.Texture) {
		return face.Texture, nil
	}
	return ResolveTexture(chain, face.Texture)
}

func lookupTexture(chain []*Model, variable string) (string, bool) {
	for _, m := range chain {
		if value, ok := m.Textures[variable]; ok {
			return value, true
		}
	}
	return "", false
}

func chainPath(chain []*Model) string {
	if len(chain) == 0 {
		return ""
	}
	if loc, ok := chain[0].Location(); ok {
		return loc.SlashPath()
	}
	return ""
}
