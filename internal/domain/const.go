package domain

const (
	// Gateway constants
	DEFAULT_IPFS_GATEWAY = "https://ipfs.io"

	// Pipeline constants
	DEFAULT_REVEAL_MAX_ATTEMPTS = 5
)

// CosmeticTraitOrder fixes the order attributes appear in published
// metadata. Keys are the inbound request field names.
var CosmeticTraitOrder = []string{
	"race",
	"sex",
	"faceStyle",
	"eyeDetail",
	"eyes",
	"facialHair",
	"glasses",
	"hairStyle",
	"hairColor",
	"necklace",
	"earring",
	"nosePiercing",
	"scar",
	"tattoo",
	"background",
}

// CosmeticTraitDisplayNames maps inbound trait field names to the
// trait_type labels used in published metadata attributes.
var CosmeticTraitDisplayNames = map[string]string{
	"race":         "Race",
	"sex":          "Sex",
	"faceStyle":    "Face Style",
	"eyeDetail":    "Eye Detail",
	"eyes":         "Eyes",
	"facialHair":   "Facial Hair",
	"glasses":      "Glasses",
	"hairStyle":    "Hair Style",
	"hairColor":    "Hair Color",
	"necklace":     "Necklace",
	"earring":      "Earring",
	"nosePiercing": "Nose Piercing",
	"scar":         "Scar",
	"tattoo":       "Tattoo",
	"background":   "Background",
}
