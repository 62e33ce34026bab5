package dto

import (
	"fmt"

	apierrors "github.com/feral-file/ff-forge/internal/api/shared/errors"
	"github.com/feral-file/ff-forge/internal/domain"
)

const maxSkillPoints = 100

// RevealRequest represents the request body for revealing a token
type RevealRequest struct {
	TokenAddress string            `json:"token_address"`
	MetadataURI  string            `json:"metadata_uri"`
	MintName     string            `json:"mint_name"`
	MintNumber   int               `json:"mint_number"`
	Recipe       domain.RecipePool `json:"recipe"`
}

// Validate validates the request body
func (r *RevealRequest) Validate() error {
	if r.TokenAddress == "" {
		return apierrors.NewValidationError("token_address is required")
	}
	if !domain.IsValidTokenAddress(r.TokenAddress) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid token address: %s", r.TokenAddress))
	}
	if r.MetadataURI == "" {
		return apierrors.NewValidationError("metadata_uri is required")
	}
	if r.MintName == "" {
		return apierrors.NewValidationError("mint_name is required")
	}
	if r.MintNumber <= 0 {
		return apierrors.NewValidationError("mint_number must be positive")
	}
	if !domain.IsValidRecipePool(r.Recipe) {
		return apierrors.NewValidationError(fmt.Sprintf("unknown recipe pool: %s", r.Recipe))
	}
	return nil
}

// ToDomain maps the request body onto the pipeline request
func (r *RevealRequest) ToDomain() *domain.RevealRequest {
	return &domain.RevealRequest{
		TokenAddress: r.TokenAddress,
		MetadataURI:  r.MetadataURI,
		MintName:     r.MintName,
		MintNumber:   r.MintNumber,
		Pool:         r.Recipe,
	}
}

// CustomizeRequest represents the request body for customizing a revealed token
type CustomizeRequest struct {
	TokenAddress string                `json:"token_address"`
	TokenID      string                `json:"token_id"`
	TokenName    string                `json:"token_name"`
	MetadataURI  string                `json:"metadata_uri"`
	Skills       domain.Skills         `json:"skills"`
	Traits       domain.CosmeticTraits `json:"cosmetic_traits"`
}

// Validate validates the request body
func (r *CustomizeRequest) Validate() error {
	if r.TokenAddress == "" {
		return apierrors.NewValidationError("token_address is required")
	}
	if !domain.IsValidTokenAddress(r.TokenAddress) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid token address: %s", r.TokenAddress))
	}
	if r.TokenID == "" {
		return apierrors.NewValidationError("token_id is required")
	}
	if r.TokenName == "" {
		return apierrors.NewValidationError("token_name is required")
	}
	if r.MetadataURI == "" {
		return apierrors.NewValidationError("metadata_uri is required")
	}

	skills := []struct {
		name  string
		value int
	}{
		{"constitution", r.Skills.Constitution},
		{"strength", r.Skills.Strength},
		{"dexterity", r.Skills.Dexterity},
		{"wisdom", r.Skills.Wisdom},
		{"intelligence", r.Skills.Intelligence},
		{"charisma", r.Skills.Charisma},
	}
	for _, s := range skills {
		if s.value < 0 || s.value > maxSkillPoints {
			return apierrors.NewValidationError(fmt.Sprintf("skill %s must be between 0 and %d", s.name, maxSkillPoints))
		}
	}

	return nil
}

// ToDomain maps the request body onto the pipeline request
func (r *CustomizeRequest) ToDomain() *domain.CustomizeRequest {
	return &domain.CustomizeRequest{
		TokenAddress: r.TokenAddress,
		TokenID:      r.TokenID,
		TokenName:    r.TokenName,
		MetadataURI:  r.MetadataURI,
		Skills:       r.Skills,
		Traits:       r.Traits,
	}
}

// CheckTokenIDRequest represents the request body for the token id uniqueness check
type CheckTokenIDRequest struct {
	TokenID string `json:"token_id"`
}

// Validate validates the request body
func (r *CheckTokenIDRequest) Validate() error {
	if r.TokenID == "" {
		return apierrors.NewValidationError("token_id is required")
	}
	return nil
}
