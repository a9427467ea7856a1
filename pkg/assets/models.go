package assets

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Model is the content of a `models/block/*.json` or `models/item/*.json` file.
//
// All fields are optional. Unset fields are nil so they can be told apart
// from explicitly empty ones. Parent is only a reference: use
// ResolveParentChain to load the ancestors.
type Model struct {
	// Parent references another model like "block/cube_all" or "builtin/generated"
	Parent *string `json:"parent,omitempty" yaml:"parent,omitempty"`
	// AmbientOcclusion controls ambient occlusion (true if unset)
	AmbientOcclusion *bool `json:"ambientocclusion,omitempty" yaml:"ambientocclusion,omitempty"`
	// Textures maps texture variables to texture paths or other "#variables"
	Textures Textures `json:"textures,omitempty" yaml:"textures,omitempty"`
	// Elements replace the elements of all parents if set
	Elements []Element `json:"elements,omitempty" yaml:"elements,omitempty"`
	// Display contains transforms per display position ("gui", "head", "firstperson_righthand" …)
	Display map[string]Transform `json:"display,omitempty" yaml:"display,omitempty"`
	// GUILight is "front" or "side" (item models only)
	GUILight *string `json:"gui_light,omitempty" yaml:"gui_light,omitempty"`
	// Overrides are predicate based model replacements (item models only)
	Overrides []ItemOverride `json:"overrides,omitempty" yaml:"overrides,omitempty"`

	location *ResourceLocation
}

// Location returns where the model was loaded from (if it was loaded from an asset pack)
func (m *Model) Location() (ResourceLocation, bool) {
	if m.location == nil {
		return ResourceLocation{}, false
	}
	return *m.location, true
}

// HasParent returns true if the model has a parent that is not builtin
func (m *Model) HasParent() bool {
	return m.Parent != nil && !IsBuiltin(*m.Parent)
}

// Element is one cuboid of a model
type Element struct {
	// From and To are the corners of the cuboid in the range -16..32
	From     [3]float64             `json:"from" yaml:"from"`
	To       [3]float64             `json:"to" yaml:"to"`
	Rotation *ElementRotation       `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Shade    *bool                  `json:"shade,omitempty" yaml:"shade,omitempty"`
	Faces    map[string]ElementFace `json:"faces,omitempty" yaml:"faces,omitempty"`
	// LightEmission overrides the block light of this element (1.21+)
	LightEmission *int `json:"light_emission,omitempty" yaml:"light_emission,omitempty"`
}

// ElementRotation rotates an element around one axis
type ElementRotation struct {
	Origin  [3]float64 `json:"origin" yaml:"origin"`
	Axis    string     `json:"axis" yaml:"axis"`
	Angle   float64    `json:"angle" yaml:"angle"`
	Rescale *bool      `json:"rescale,omitempty" yaml:"rescale,omitempty"`
}

// Matrix returns the rotation as a matrix in block units (1 = 16 pixels)
func (r ElementRotation) Matrix() mgl32.Mat4 {
	angle := mgl32.DegToRad(float32(r.Angle))
	origin := mgl32.Vec3{float32(r.Origin[0] / 16), float32(r.Origin[1] / 16), float32(r.Origin[2] / 16)}

	var rot mgl32.Mat4
	scale := mgl32.Vec3{1, 1, 1}
	rescale := float32(1)
	if r.Rescale != nil && *r.Rescale {
		rescale = float32(1 / math.Cos(float64(angle)))
	}
	switch r.Axis {
	case "x":
		rot = mgl32.HomogRotate3DX(angle)
		scale = mgl32.Vec3{1, rescale, rescale}
	case "y":
		rot = mgl32.HomogRotate3DY(angle)
		scale = mgl32.Vec3{rescale, 1, rescale}
	case "z":
		rot = mgl32.HomogRotate3DZ(angle)
		scale = mgl32.Vec3{rescale, rescale, 1}
	default:
		return mgl32.Ident4()
	}

	return mgl32.Translate3D(origin[0], origin[1], origin[2]).
		Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2])).
		Mul4(rot).
		Mul4(mgl32.Translate3D(-origin[0], -origin[1], -origin[2]))
}

// ElementFace is one face of an element
type ElementFace struct {
	UV *[4]float64 `json:"uv,omitempty" yaml:"uv,omitempty"`
	// Texture is a "#variable" reference (or a texture path in very old files)
	Texture   string  `json:"texture" yaml:"texture"`
	CullFace  *string `json:"cullface,omitempty" yaml:"cullface,omitempty"`
	Rotation  *int    `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	TintIndex *int    `json:"tintindex,omitempty" yaml:"tintindex,omitempty"`
}

// Transform is a display transformation
type Transform struct {
	Rotation    *[3]float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Translation *[3]float64 `json:"translation,omitempty" yaml:"translation,omitempty"`
	Scale       *[3]float64 `json:"scale,omitempty" yaml:"scale,omitempty"`
}

// Matrix returns translation * rotation (x, y, z) * scale.
// Translation is given in pixels and converted to block units.
func (t Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Ident4()
	if t.Translation != nil {
		tr := *t.Translation
		m = m.Mul4(mgl32.Translate3D(float32(tr[0]/16), float32(tr[1]/16), float32(tr[2]/16)))
	}
	if t.Rotation != nil {
		rot := *t.Rotation
		m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(float32(rot[0]))))
		m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(float32(rot[1]))))
		m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(float32(rot[2]))))
	}
	if t.Scale != nil {
		s := *t.Scale
		m = m.Mul4(mgl32.Scale3D(float32(s[0]), float32(s[1]), float32(s[2])))
	}
	return m
}

// ItemOverride replaces the model of an item if all predicates match
type ItemOverride struct {
	Predicate map[string]float64 `json:"predicate" yaml:"predicate"`
	Model     string             `json:"model" yaml:"model"`
}

// Textures maps texture variables to values. A value is either a texture
// path ("block/stone") or a reference to another variable ("#all").
type Textures map[string]string

// IsTextureVariable returns true for "#variable" references
func IsTextureVariable(value string) bool {
	return strings.HasPrefix(value, "#")
}

// Flatten merges a parent chain (as returned by ResolveParentChain) into one
// model without parent. Children override their parents: textures per
// variable, display per position, everything else as a whole.
// Texture references are not resolved.
func Flatten(chain []*Model) *Model {
	flat := &Model{}
	for _, m := range chain {
		if m.Textures != nil {
			if flat.Textures == nil {
				flat.Textures = Textures{}
			}
			for name, value := range m.Textures {
				if _, ok := flat.Textures[name]; !ok {
					flat.Textures[name] = value
				}
			}
		}
		if m.Display != nil {
			if flat.Display == nil {
				flat.Display = map[string]Transform{}
			}
			for pos, t := range m.Display {
				if _, ok := flat.Display[pos]; !ok {
					flat.Display[pos] = t
				}
			}
		}
		if flat.AmbientOcclusion == nil {
			flat.AmbientOcclusion = m.AmbientOcclusion
		}
		if flat.Elements == nil {
			flat.Elements = m.Elements
		}
		if flat.GUILight == nil {
			flat.GUILight = m.GUILight
		}
		if flat.Overrides == nil {
			flat.Overrides = m.Overrides
		}
	}
	if len(chain) > 0 {
		last := chain[len(chain)-1]
		if last.Parent != nil && IsBuiltin(*last.Parent) {
			builtin := *last.Parent
			flat.Parent = &builtin
		}
	}
	return flat
}
