package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForPoints(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   Tier
	}{
		{"zero points", 0, TierCommon},
		{"upper common bound", 20, TierCommon},
		{"lower uncommon bound", 21, TierUncommon},
		{"upper uncommon bound", 40, TierUncommon},
		{"mid rare", 50, TierRare},
		{"upper rare bound", 60, TierRare},
		{"epic", 75, TierEpic},
		{"lower legendary bound", 81, TierLegendary},
		{"max points", 100, TierLegendary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TierForPoints(tt.points))
		})
	}
}

func TestIsValidTokenAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"valid mint address", "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU", true},
		{"valid short address", "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T", true},
		{"empty", "", false},
		{"too short", "abc", false},
		{"contains zero digit", "0xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU", false},
		{"contains uppercase o", "OxKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAs", false},
		{"hex address", "0x1234567890abcdef1234567890abcdef12345678", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidTokenAddress(tt.address))
		})
	}
}

func TestIsValidStage(t *testing.T) {
	assert.True(t, IsValidStage(StageMinted))
	assert.True(t, IsValidStage(StageRevealed))
	assert.True(t, IsValidStage(StageCustomized))
	assert.False(t, IsValidStage(Stage("burned")))
	assert.False(t, IsValidStage(Stage("")))
}

func TestHeroImageKey(t *testing.T) {
	assert.Equal(t, "woodland_respite/legendary", HeroImageKey(PoolWoodlandRespite, "Legendary"))
	assert.Equal(t, "dawn_of_man/common", HeroImageKey(PoolDawnOfMan, "Common"))
}
