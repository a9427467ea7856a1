package assets

import (
	"sort"

	"github.com/Masterminds/semver/v3"
)

// namespacedModelsVersion is the first release writing "minecraft:block/…" references
var namespacedModelsVersion = semver.MustParse("1.16.2")

// flatteningVersion is the release that renamed block ids and moved models to "block/…"
var flatteningVersion = semver.MustParse("1.13.0")

// IsFlattened returns true if the given Minecraft version ("1.12.2", "1.14")
// uses the post-1.13 layout: `""` single variant keys, "block/" model
// prefixes and json lang files. Pre-releases of 1.13 count as flattened.
func IsFlattened(version string) (bool, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, err
	}
	base, _ := v.SetPrerelease("")
	return !base.LessThan(flatteningVersion), nil
}

// SingleVariantName returns the variant key used by blocks without
// properties in the given version: "" since 1.13, "normal" before
func SingleVariantName(version string) (string, error) {
	flat, err := IsFlattened(version)
	if err != nil {
		return "", err
	}
	if flat {
		return "", nil
	}
	return "normal", nil
}

// ModelReference returns how the vanilla blockstates of a version reference
// a block model: "stone" before 1.13, "block/stone" up to 1.16.1 and
// "minecraft:block/stone" since 1.16.2.
func ModelReference(version string, model string) (string, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return "", err
	}
	base, _ := v.SetPrerelease("")
	switch {
	case base.LessThan(flatteningVersion):
		return model, nil
	case base.LessThan(namespacedModelsVersion):
		return "block/" + model, nil
	}
	return MinecraftNamespace + ":block/" + model, nil
}

// SortVersions sorts Minecraft versions ascending. Versions that are not
// semver (snapshots like "19w02a") are sorted to the end, in their original order.
func SortVersions(versions []string) {
	parsed := make(map[string]*semver.Version, len(versions))
	for _, v := range versions {
		if sv, err := semver.NewVersion(v); err == nil {
			parsed[v] = sv
		}
	}
	sort.SliceStable(versions, func(i, j int) bool {
		a, b := parsed[versions[i]], parsed[versions[j]]
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		return a.LessThan(b)
	})
}
