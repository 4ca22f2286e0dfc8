package ratings

import (
	"context"

	"Backend-VendorRisk/src/models"
	"Backend-VendorRisk/src/utils"
)

// RatingLabel is the discrete risk classification of a 0-100 score.
type RatingLabel string

const (
	RatingVeryLow  RatingLabel = "Very Low"
	RatingLow      RatingLabel = "Low"
	RatingMedium   RatingLabel = "Medium"
	RatingHigh     RatingLabel = "High"
	RatingCritical RatingLabel = "Critical"
)

// ScoringConfig holds the four inclusive upper bounds that split 0-100 into
// five ratings. It is immutable once constructed: handlers load it per
// request instead of consulting ambient settings mid-computation.
type ScoringConfig struct {
	VeryLowMax int `json:"veryLowMax"`
	LowMax     int `json:"lowMax"`
	MediumMax  int `json:"mediumMax"`
	HighMax    int `json:"highMax"`
}

// DefaultConfig returns the default thresholds: ≤20 Very Low, ≤40 Low,
// ≤60 Medium, ≤80 High, else Critical.
func DefaultConfig() ScoringConfig {
	return ScoringConfig{VeryLowMax: 20, LowMax: 40, MediumMax: 60, HighMax: 80}
}

// Rate maps a score to its rating. Bounds are checked in ascending order and
// the first satisfied bound wins, so the mapping is total over all integers.
func (c ScoringConfig) Rate(score int) RatingLabel {
	switch {
	case score <= c.VeryLowMax:
		return RatingVeryLow
	case score <= c.LowMax:
		return RatingLow
	case score <= c.MediumMax:
		return RatingMedium
	case score <= c.HighMax:
		return RatingHigh
	default:
		return RatingCritical
	}
}

// LoadConfig reads the thresholds from the settings store (Redis
// read-through over Mongo), falling back to the defaults per key.
func LoadConfig(ctx context.Context) ScoringConfig {
	def := DefaultConfig()
	return ScoringConfig{
		VeryLowMax: utils.GetIntSetting(ctx, models.SettingThresholdVeryLow, def.VeryLowMax),
		LowMax:     utils.GetIntSetting(ctx, models.SettingThresholdLow, def.LowMax),
		MediumMax:  utils.GetIntSetting(ctx, models.SettingThresholdMedium, def.MediumMax),
		HighMax:    utils.GetIntSetting(ctx, models.SettingThresholdHigh, def.HighMax),
	}
}
