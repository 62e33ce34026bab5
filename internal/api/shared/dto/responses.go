package dto

import "github.com/feral-file/ff-forge/internal/domain"

// RevealResponse reports the recipe a reveal drew
type RevealResponse struct {
	TokenAddress   string      `json:"token_address"`
	StatPoints     int         `json:"stat_points"`
	CosmeticPoints int         `json:"cosmetic_points"`
	StatTier       domain.Tier `json:"stat_tier"`
	CosmeticTier   domain.Tier `json:"cosmetic_tier"`
	HeroTier       string      `json:"hero_tier"`
	MetadataURL    string      `json:"metadata_url"`
}

// MapRevealResultToDTO maps a pipeline result to the response body
func MapRevealResultToDTO(result *domain.RevealResult) *RevealResponse {
	return &RevealResponse{
		TokenAddress:   result.TokenAddress,
		StatPoints:     result.StatPoints,
		CosmeticPoints: result.CosmeticPoints,
		StatTier:       result.StatTier,
		CosmeticTier:   result.CosmeticTier,
		HeroTier:       result.HeroTier,
		MetadataURL:    result.MetadataURL,
	}
}

// CustomizeResponse reports where the customized metadata landed
type CustomizeResponse struct {
	Success      bool   `json:"success"`
	TokenAddress string `json:"token_address"`
	MetadataURL  string `json:"metadata_url"`
	ImageURL     string `json:"image_url"`
}

// MapCustomizeResultToDTO maps a pipeline result to the response body
func MapCustomizeResultToDTO(result *domain.CustomizeResult) *CustomizeResponse {
	return &CustomizeResponse{
		Success:      true,
		TokenAddress: result.TokenAddress,
		MetadataURL:  result.MetadataURL,
		ImageURL:     result.ImageURL,
	}
}

// CheckTokenIDResponse reports whether a character token id is taken
type CheckTokenIDResponse struct {
	TokenIDExists bool `json:"token_id_exists"`
}

// PoolAvailability reports the remaining slots of one recipe pool
type PoolAvailability struct {
	Pool      domain.RecipePool `json:"pool"`
	Total     int64             `json:"total"`
	Remaining int64             `json:"remaining"`
}

// RecipeAvailabilityResponse reports the remaining slots of every pool
type RecipeAvailabilityResponse struct {
	Pools []PoolAvailability `json:"pools"`
}
