package metadata

import (
	"github.com/feral-file/ff-forge/internal/domain"
)

// Document is a token metadata document. It is handled as a plain map so
// fields this service does not know about survive a rebuild untouched.
type Document map[string]any

// Attribute is one display attribute of a metadata document
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// FileRef is one entry of a document's properties.files list
type FileRef struct {
	URI  string `json:"uri"`
	Type string `json:"type"`
}

// BuildReveal merges a reveal's allocation into the prior metadata
// document. The prior document is not mutated; every field the reveal
// does not own is carried over unchanged.
func BuildReveal(prior Document, alloc domain.Allocation, imageURL, externalURL string) Document {
	doc := clone(prior)

	doc["image"] = imageURL
	doc["external_url"] = externalURL
	doc["recipe"] = string(alloc.Pool)
	doc["stat_points"] = alloc.StatPoints
	doc["cosmetic_points"] = alloc.CosmeticPoints
	doc["stat_tier"] = string(alloc.StatTier)
	doc["cosmetic_tier"] = string(alloc.CosmeticTier)
	doc["hero_tier"] = alloc.HeroTier

	setFile(doc, imageURL)

	return doc
}

// BuildCustomize merges a customization into the prior metadata document.
// The prior document is not mutated.
func BuildCustomize(prior Document, tokenName string, skills domain.Skills, traits domain.CosmeticTraits, imageURL, externalURL string) Document {
	doc := clone(prior)

	doc["image"] = imageURL
	doc["external_url"] = externalURL
	doc["token_name"] = tokenName
	doc["constitution"] = skills.Constitution
	doc["strength"] = skills.Strength
	doc["dexterity"] = skills.Dexterity
	doc["wisdom"] = skills.Wisdom
	doc["intelligence"] = skills.Intelligence
	doc["charisma"] = skills.Charisma
	doc["attributes"] = TraitAttributes(traits)

	setFile(doc, imageURL)

	return doc
}

// TraitAttributes maps selected cosmetic traits onto display attributes
// in their canonical order
func TraitAttributes(traits domain.CosmeticTraits) []Attribute {
	values := traitValues(traits)

	attributes := make([]Attribute, 0, len(domain.CosmeticTraitOrder))
	for _, key := range domain.CosmeticTraitOrder {
		attributes = append(attributes, Attribute{
			TraitType: domain.CosmeticTraitDisplayNames[key],
			Value:     values[key],
		})
	}
	return attributes
}

// setFile replaces the document's properties.files list with the single
// published image
func setFile(doc Document, imageURL string) {
	properties, ok := doc["properties"].(map[string]any)
	if !ok {
		properties = make(map[string]any)
	}
	properties["files"] = []FileRef{{URI: imageURL, Type: "image/png"}}
	doc["properties"] = properties
}

// clone deep-copies a document so builders never mutate their input.
// Nested maps and slices are copied; scalar values are shared.
func clone(doc Document) Document {
	if doc == nil {
		return Document{}
	}
	return cloneMap(doc)
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return cloneMap(value)
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

func traitValues(t domain.CosmeticTraits) map[string]string {
	return map[string]string{
		"race":         t.Race,
		"sex":          t.Sex,
		"faceStyle":    t.FaceStyle,
		"eyeDetail":    t.EyeDetail,
		"eyes":         t.Eyes,
		"facialHair":   t.FacialHair,
		"glasses":      t.Glasses,
		"hairStyle":    t.HairStyle,
		"hairColor":    t.HairColor,
		"necklace":     t.Necklace,
		"earring":      t.Earring,
		"nosePiercing": t.NosePiercing,
		"scar":         t.Scar,
		"tattoo":       t.Tattoo,
		"background":   t.Background,
	}
}
