package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterest(t *testing.T) {
	got, err := ParseInterest("food")
	require.NoError(t, err)
	assert.Equal(t, InterestFood, got)

	got, err = ParseInterest(" NIGHTLIFE ")
	require.NoError(t, err)
	assert.Equal(t, InterestNightlife, got)

	_, err = ParseInterest("skydiving")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skydiving")
}
