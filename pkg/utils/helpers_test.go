package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	// New Delhi to Mumbai
	assert.InDelta(t, 1148, Haversine(28.6139, 77.2090, 19.0760, 72.8777), 15)
	assert.Equal(t, 0.0, Haversine(22.97, 78.65, 22.97, 78.65))
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(26.8, 80.9))
	assert.True(t, ValidCoordinates(-90, 180))
	assert.False(t, ValidCoordinates(91, 0))
	assert.False(t, ValidCoordinates(0, -181))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 56.3, RoundTo(56.2871, 1))
	assert.Equal(t, 3.14, RoundTo(3.14159, 2))
	assert.Equal(t, 41.0, RoundTo(40.6, 0))
}
