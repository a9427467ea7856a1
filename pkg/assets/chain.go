package assets

// MaxInheritanceDepth is the maximum number of models in a parent chain
const MaxInheritanceDepth = 64

// ModelLoader loads models by location. Implemented by AssetPack and Cache.
type ModelLoader interface {
	LoadModel(loc ResourceLocation) (*Model, error)
}

// ResolveParentChain returns the model followed by its parent, grandparent
// and so on. The walk stops at a model without parent or with a builtin
// parent ("builtin/generated").
//
// Parent references with a "block/" or "item/" prefix are loaded as that
// kind of model, references without prefix (pre-1.13) as the same kind as
// the child.
//
// A loop fails with ErrCyclicInheritance, more than MaxInheritanceDepth
// models fail with ErrInheritanceTooDeep.
func (m *Model) ResolveParentChain(loader ModelLoader) ([]*Model, error) {
	current, ok := m.Location()
	if !ok {
		current = ResourceLocation{Kind: KindBlockModel}
	}

	chain := []*Model{m}
	visited := map[string]bool{}
	if ok {
		visited[current.key()] = true
	}

	for model := m; model.HasParent(); {
		parent := *model.Parent
		next := NewResourceLocation(modelKindOf(parent, current.Kind), parent)

		if visited[next.key()] {
			return nil, newErrorf(ErrCyclicInheritance, next.SlashPath(), "%s is its own ancestor", next)
		}
		if len(chain) >= MaxInheritanceDepth {
			return nil, newErrorf(ErrInheritanceTooDeep, next.SlashPath(), "more than %d models", MaxInheritanceDepth)
		}
		visited[next.key()] = true

		loaded, err := loader.LoadModel(next)
		if err != nil {
			return nil, err
		}
		chain = append(chain, loaded)
		model = loaded
		current = next
	}

	return chain, nil
}
