package assets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// BlockStates is the content of a `blockstates/<block>.json` file.
//
// It holds either a mapping from variant name to models ("variants") or a
// list of conditional cases ("multipart"), never both.
type BlockStates struct {
	variants  map[string]Variant
	multipart []Case
}

// NewVariantBlockStates returns "variants" style block states
func NewVariantBlockStates(variants map[string]Variant) *BlockStates {
	if variants == nil {
		variants = map[string]Variant{}
	}
	return &BlockStates{variants: variants}
}

// NewMultipartBlockStates returns "multipart" style block states
func NewMultipartBlockStates(cases []Case) *BlockStates {
	if cases == nil {
		cases = []Case{}
	}
	return &BlockStates{multipart: cases}
}

// IsMultipart returns true if the states are defined using "multipart"
func (b *BlockStates) IsMultipart() bool {
	return b.multipart != nil
}

// Variants returns the mapping from variant name to Variant.
// Fails with ErrWrongVariant for multipart block states.
//
// The variant name consists of the block properties separated by commas,
// like "face=wall,facing=east,powered=false". Blocks with a single variant
// use "" (or "normal" before 1.13).
func (b *BlockStates) Variants() (map[string]Variant, error) {
	if b.variants == nil {
		return nil, newErrorf(ErrWrongVariant, "", "block states are defined as multipart")
	}
	return b.variants, nil
}

// Variant looks up a single variant by its exact name. No normalization of
// the property order is done.
func (b *BlockStates) Variant(key string) (Variant, bool, error) {
	variants, err := b.Variants()
	if err != nil {
		return nil, false, err
	}
	v, ok := variants[key]
	return v, ok, nil
}

// VariantKeys returns all variant names sorted
func (b *BlockStates) VariantKeys() ([]string, error) {
	variants, err := b.Variants()
	if err != nil {
		return nil, err
	}
	keys := maps.Keys(variants)
	slices.Sort(keys)
	return keys, nil
}

// Cases returns the multipart cases.
// Fails with ErrWrongVariant for variant block states.
func (b *BlockStates) Cases() ([]Case, error) {
	if b.multipart == nil {
		return nil, newErrorf(ErrWrongVariant, "", "block states are defined as variants")
	}
	return b.multipart, nil
}

// ModelsFor returns the models that apply to a block with the given
// properties.
//
// For variants the variant with the most properties that all match the
// given state is picked and all of its (weighted) models are returned.
// For multipart all models of matching cases are returned in order.
func (b *BlockStates) ModelsFor(state map[string]string) []ModelProperties {
	if b.multipart != nil {
		var models []ModelProperties
		for _, c := range b.multipart {
			if c.Applies(state) {
				models = append(models, c.Apply...)
			}
		}
		return models
	}

	keys := maps.Keys(b.variants)
	slices.Sort(keys)

	best := -1
	var found Variant
	for _, key := range keys {
		props := ParseVariantKey(key)
		if !props.Matches(state) {
			continue
		}
		if len(props) > best {
			best = len(props)
			found = b.variants[key]
		}
	}
	return found
}

// UnmarshalJSON decodes either a "variants" or a "multipart" document
func (b *BlockStates) UnmarshalJSON(data []byte) error {
	var raw struct {
		Variants  map[string]Variant `json:"variants"`
		Multipart []Case             `json:"multipart"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.Variants != nil && raw.Multipart != nil:
		return errors.New(`block states define both "variants" and "multipart"`)
	case raw.Variants != nil:
		*b = BlockStates{variants: raw.Variants}
	case raw.Multipart != nil:
		*b = BlockStates{multipart: raw.Multipart}
	default:
		return errors.New(`block states define neither "variants" nor "multipart"`)
	}
	return nil
}

// MarshalJSON encodes the block states in the same shape they were read
func (b BlockStates) MarshalJSON() ([]byte, error) {
	if b.multipart != nil {
		return json.Marshal(struct {
			Multipart []Case `json:"multipart"`
		}{b.multipart})
	}
	return json.Marshal(struct {
		Variants map[string]Variant `json:"variants"`
	}{b.variants})
}

// MarshalYAML is used by the CLI to print block states
func (b BlockStates) MarshalYAML() (interface{}, error) {
	if b.multipart != nil {
		return map[string]interface{}{"multipart": b.multipart}, nil
	}
	return map[string]interface{}{"variants": b.variants}, nil
}

// Variant is the list of models a variant (or multipart case) can render
// with. The JSON value can be a single object or an array of objects; a
// single object becomes a list with one element. Never empty once decoded.
type Variant []ModelProperties

// Models returns all possible models of this variant
func (v Variant) Models() []ModelProperties {
	return v
}

// TotalWeight is the sum of all model weights
func (v Variant) TotalWeight() uint64 {
	var total uint64
	for _, m := range v {
		total += uint64(m.EffectiveWeight())
	}
	return total
}

// Pick returns the model selected by n, where n is in [0, TotalWeight()).
// Larger values wrap around. An empty variant returns zero ModelProperties.
func (v Variant) Pick(n uint64) ModelProperties {
	if len(v) == 0 {
		return ModelProperties{}
	}
	total := v.TotalWeight()
	if total == 0 {
		return v[0]
	}
	n %= total
	for _, m := range v {
		w := uint64(m.EffectiveWeight())
		if n < w {
			return m
		}
		n -= w
	}
	return v[len(v)-1]
}

// UnmarshalJSON is needed because a variant is either one object or an array
func (v *Variant) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return errors.New("empty variant")
	}

	switch trimmed[0] {
	case '[':
		var models []ModelProperties
		if err := json.Unmarshal(trimmed, &models); err != nil {
			return err
		}
		if len(models) == 0 {
			return errors.New("variant has an empty model list")
		}
		*v = models
	case '{':
		var model ModelProperties
		if err := json.Unmarshal(trimmed, &model); err != nil {
			return err
		}
		*v = Variant{model}
	default:
		return fmt.Errorf("variant must be an object or an array, got %.20s", trimmed)
	}
	return nil
}

// MarshalJSON writes single model variants as an object
func (v Variant) MarshalJSON() ([]byte, error) {
	if len(v) == 1 {
		return json.Marshal(v[0])
	}
	return json.Marshal([]ModelProperties(v))
}

// MarshalYAML mirrors MarshalJSON
func (v Variant) MarshalYAML() (interface{}, error) {
	if len(v) == 1 {
		return v[0], nil
	}
	return []ModelProperties(v), nil
}

// ModelProperties references a model and how it should be rotated
type ModelProperties struct {
	// Model is the model reference, like "block/stone" (1.13+) or "stone"
	Model string `json:"model" yaml:"model"`
	// X rotation in increments of 90 degrees
	X *int `json:"x,omitempty" yaml:"x,omitempty"`
	// Y rotation in increments of 90 degrees
	Y *int `json:"y,omitempty" yaml:"y,omitempty"`
	// UVLock locks the texture rotation
	UVLock *bool `json:"uvlock,omitempty" yaml:"uvlock,omitempty"`
	// Weight is the relative probability for this model if a variant has more than one
	Weight *uint32 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// UnmarshalJSON requires the "model" field
func (m *ModelProperties) UnmarshalJSON(data []byte) error {
	type plain ModelProperties
	var raw struct {
		plain
		Model *string `json:"model"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Model == nil {
		return errors.New(`model properties without "model"`)
	}
	*m = ModelProperties(raw.plain)
	m.Model = *raw.Model
	return nil
}

// XRotation returns the x rotation (0 if unset)
func (m ModelProperties) XRotation() int {
	if m.X == nil {
		return 0
	}
	return *m.X
}

// YRotation returns the y rotation (0 if unset)
func (m ModelProperties) YRotation() int {
	if m.Y == nil {
		return 0
	}
	return *m.Y
}

// IsUVLocked returns the uvlock value (false if unset)
func (m ModelProperties) IsUVLocked() bool {
	return m.UVLock != nil && *m.UVLock
}

// EffectiveWeight returns the weight (1 if unset)
func (m ModelProperties) EffectiveWeight() uint32 {
	if m.Weight == nil {
		return 1
	}
	return *m.Weight
}

// ModelLocation returns the location of the referenced block model
func (m ModelProperties) ModelLocation() ResourceLocation {
	return NewResourceLocation(modelKindOf(m.Model, KindBlockModel), m.Model)
}

// Property is one "name=value" pair of a variant name
type Property struct {
	Name  string
	Value string
}

// VariantProperties are the parsed properties of a variant name
type VariantProperties []Property

// ParseVariantKey splits a variant name like "facing=north,half=top" into its
// properties in source order. "" and the pre-1.13 "normal" have no properties.
// Parts without "=" (like "inventory") become a property without value.
func ParseVariantKey(key string) VariantProperties {
	if key == "" || key == "normal" {
		return VariantProperties{}
	}
	parts := strings.Split(key, ",")
	props := make(VariantProperties, 0, len(parts))
	for _, part := range parts {
		name, value, _ := strings.Cut(part, "=")
		props = append(props, Property{Name: name, Value: value})
	}
	return props
}

// Matches returns true if every property is set to the same value in state
func (p VariantProperties) Matches(state map[string]string) bool {
	for _, prop := range p {
		actual, ok := state[prop.Name]
		if !ok || actual != prop.Value {
			return false
		}
	}
	return true
}

// Map returns the properties as a map
func (p VariantProperties) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, prop := range p {
		m[prop.Name] = prop.Value
	}
	return m
}

// String joins the properties back into a variant name
func (p VariantProperties) String() string {
	parts := make([]string, len(p))
	for i, prop := range p {
		if prop.Value == "" {
			parts[i] = prop.Name
			continue
		}
		parts[i] = prop.Name + "=" + prop.Value
	}
	return strings.Join(parts, ",")
}
