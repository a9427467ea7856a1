package assets

import "strings"

// MinecraftNamespace is assumed for identifiers without an explicit namespace
const MinecraftNamespace = "minecraft"

// ResourceIdentifier is a namespaced id like "minecraft:block/stone" or just "stone".
// The namespace is everything before the first ":".
type ResourceIdentifier string

// HasNamespace returns true if the identifier contains an explicit namespace
func (id ResourceIdentifier) HasNamespace() bool {
	return strings.Contains(string(id), ":")
}

// Namespace returns the namespace of this identifier ("minecraft" if there is none)
func (id ResourceIdentifier) Namespace() string {
	parts := strings.SplitN(string(id), ":", 2)
	if len(parts) == 2 {
		return parts[0]
	}
	return MinecraftNamespace
}

// Path returns the part after the namespace
func (id ResourceIdentifier) Path() string {
	parts := strings.SplitN(string(id), ":", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return parts[0]
}

// Canonical returns the identifier with an explicit namespace
func (id ResourceIdentifier) Canonical() ResourceIdentifier {
	if id.HasNamespace() {
		return id
	}
	return ResourceIdentifier(MinecraftNamespace + ":" + string(id))
}

// String returns the canonical form
func (id ResourceIdentifier) String() string {
	return string(id.Canonical())
}

// ModelName strips the "block/" or "item/" prefix used by model references
// since 1.13. Pre-1.13 references ("cube_all") are returned as is.
//
//	ModelName("block/cube_all") // "cube_all"
//	ModelName("minecraft:item/generated") // "generated"
func ModelName(id string) string {
	p := ResourceIdentifier(id).Path()
	if rest, ok := cutModelPrefix(p); ok {
		return rest
	}
	return p
}

// IsBuiltin returns true for models like "builtin/generated" that are
// provided by the game itself and have no file
func IsBuiltin(id string) bool {
	return strings.HasPrefix(ResourceIdentifier(id).Path(), "builtin/")
}

// modelKindOf returns the model kind a reference points to, based on its
// prefix. References without prefix keep the given fallback kind.
func modelKindOf(id string, fallback ResourceKind) ResourceKind {
	p := ResourceIdentifier(id).Path()
	switch {
	case strings.HasPrefix(p, "block/"):
		return KindBlockModel
	case strings.HasPrefix(p, "item/"):
		return KindItemModel
	}
	return fallback
}

func cutModelPrefix(p string) (string, bool) {
	for _, prefix := range []string{"block/", "item/"} {
		if strings.HasPrefix(p, prefix) {
			return p[len(prefix):], true
		}
	}
	return p, false
}
