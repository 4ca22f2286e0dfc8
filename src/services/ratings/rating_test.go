package ratings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateDefaultBoundaries(t *testing.T) {
	config := DefaultConfig()

	cases := []struct {
		score    int
		expected RatingLabel
	}{
		{0, RatingVeryLow},
		{20, RatingVeryLow},
		{21, RatingLow},
		{40, RatingLow},
		{41, RatingMedium},
		{60, RatingMedium},
		{61, RatingHigh},
		{80, RatingHigh},
		{81, RatingCritical},
		{100, RatingCritical},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, config.Rate(c.score), "score %d", c.score)
	}
}

func TestRateIsTotal(t *testing.T) {
	config := DefaultConfig()

	// Out-of-range inputs still map to a rating instead of panicking.
	assert.Equal(t, RatingVeryLow, config.Rate(-1))
	assert.Equal(t, RatingCritical, config.Rate(250))

	for score := 0; score <= 100; score++ {
		assert.NotEmpty(t, config.Rate(score))
	}
}

func TestRateCustomThresholds(t *testing.T) {
	config := ScoringConfig{VeryLowMax: 10, LowMax: 30, MediumMax: 50, HighMax: 90}

	assert.Equal(t, RatingVeryLow, config.Rate(10))
	assert.Equal(t, RatingLow, config.Rate(11))
	assert.Equal(t, RatingHigh, config.Rate(90))
	assert.Equal(t, RatingCritical, config.Rate(91))
}
