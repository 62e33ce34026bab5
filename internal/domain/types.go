package domain

import (
	"fmt"
	"regexp"
)

// Stage represents how far a token has progressed through its lifecycle.
// A token is born minted, becomes revealed exactly once, and may become
// customized exactly once after that.
type Stage string

const (
	StageMinted     Stage = "minted"
	StageRevealed   Stage = "revealed"
	StageCustomized Stage = "customized"
)

// IsValidStage checks if a stage is valid
func IsValidStage(stage Stage) bool {
	return stage == StageMinted ||
		stage == StageRevealed ||
		stage == StageCustomized
}

// RecipePool identifies a finite pool of pre-generated recipes that
// revealed tokens draw from.
type RecipePool string

const (
	PoolWoodlandRespite RecipePool = "Woodland Respite"
	PoolDawnOfMan       RecipePool = "Dawn of Man"
)

// RecipePools lists every pool tokens can draw from.
func RecipePools() []RecipePool {
	return []RecipePool{PoolWoodlandRespite, PoolDawnOfMan}
}

// IsValidRecipePool checks if a pool is one of the known recipe pools
func IsValidRecipePool(pool RecipePool) bool {
	return pool == PoolWoodlandRespite || pool == PoolDawnOfMan
}

// Tier is a named rarity band derived from a point score.
type Tier string

const (
	TierCommon    Tier = "Common"
	TierUncommon  Tier = "Uncommon"
	TierRare      Tier = "Rare"
	TierEpic      Tier = "Epic"
	TierLegendary Tier = "Legendary"
)

// TierForPoints maps a 0-100 point score onto its rarity band.
func TierForPoints(points int) Tier {
	switch {
	case points <= 20:
		return TierCommon
	case points <= 40:
		return TierUncommon
	case points <= 60:
		return TierRare
	case points <= 80:
		return TierEpic
	default:
		return TierLegendary
	}
}

// Allocation is a recipe slot claimed for a single reveal, together with
// the tiers derived from its scores.
type Allocation struct {
	Pool           RecipePool `json:"pool"`
	SlotNumber     int        `json:"slot_number"`
	StatPoints     int        `json:"stat_points"`
	CosmeticPoints int        `json:"cosmetic_points"`
	StatTier       Tier       `json:"stat_tier"`
	CosmeticTier   Tier       `json:"cosmetic_tier"`
	HeroTier       string     `json:"hero_tier"`
}

// Skills are the six stat values a player distributes during customization.
type Skills struct {
	Constitution int `json:"constitution"`
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Wisdom       int `json:"wisdom"`
	Intelligence int `json:"intelligence"`
	Charisma     int `json:"charisma"`
}

// CosmeticTraits are the visual attributes a player selects during
// customization. Field order matches the attribute order of published
// metadata.
type CosmeticTraits struct {
	Race         string `json:"race"`
	Sex          string `json:"sex"`
	FaceStyle    string `json:"faceStyle"`
	EyeDetail    string `json:"eyeDetail"`
	Eyes         string `json:"eyes"`
	FacialHair   string `json:"facialHair"`
	Glasses      string `json:"glasses"`
	HairStyle    string `json:"hairStyle"`
	HairColor    string `json:"hairColor"`
	Necklace     string `json:"necklace"`
	Earring      string `json:"earring"`
	NosePiercing string `json:"nosePiercing"`
	Scar         string `json:"scar"`
	Tattoo       string `json:"tattoo"`
	Background   string `json:"background"`
}

// RevealRequest carries everything the reveal pipeline needs for one token.
type RevealRequest struct {
	TokenAddress string     `json:"token_address"`
	MetadataURI  string     `json:"metadata_uri"`
	MintName     string     `json:"mint_name"`
	MintNumber   int        `json:"mint_number"`
	Pool         RecipePool `json:"pool"`
}

// RevealResult reports the recipe a reveal ended up drawing.
type RevealResult struct {
	TokenAddress   string `json:"token_address"`
	StatPoints     int    `json:"stat_points"`
	CosmeticPoints int    `json:"cosmetic_points"`
	StatTier       Tier   `json:"stat_tier"`
	CosmeticTier   Tier   `json:"cosmetic_tier"`
	HeroTier       string `json:"hero_tier"`
	MetadataURL    string `json:"metadata_url"`
}

// CustomizeRequest carries everything the customize pipeline needs for
// one revealed token.
type CustomizeRequest struct {
	TokenAddress string         `json:"token_address"`
	TokenID      string         `json:"token_id"`
	TokenName    string         `json:"token_name"`
	MetadataURI  string         `json:"metadata_uri"`
	Skills       Skills         `json:"skills"`
	Traits       CosmeticTraits `json:"cosmetic_traits"`
}

// CustomizeResult reports where the customized metadata landed.
type CustomizeResult struct {
	TokenAddress string `json:"token_address"`
	MetadataURL  string `json:"metadata_url"`
	ImageURL     string `json:"image_url"`
}

var tokenAddressRegex = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

// IsValidTokenAddress checks that an address is plausible base58 mint
// address. It does not prove the mint exists on chain.
func IsValidTokenAddress(address string) bool {
	return tokenAddressRegex.MatchString(address)
}

// HeroImageKey builds the lookup key for the pre-pinned reveal image of a
// pool/tier combination, e.g. "woodland_respite/legendary".
func HeroImageKey(pool RecipePool, heroTier string) string {
	return fmt.Sprintf("%s/%s", snakeCase(string(pool)), snakeCase(heroTier))
}

func snakeCase(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r == ' ':
			out = append(out, '_')
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
