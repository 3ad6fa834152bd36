package cli

import (
	"testing"

	"github.com/alexanderramin/tripplanner/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTripFields_Request(t *testing.T) {
	f := newTripFields()
	f.Destination = "  Lisbon "
	f.StartDate = "2024-05-01"
	f.EndDate = "2024-05-04"
	f.Budget = " 900 "
	f.Interests = []domain.Interest{domain.InterestNightlife, domain.InterestFood}

	req := f.request()

	assert.Equal(t, "Lisbon", req.Destination)
	assert.Equal(t, 1, req.Travelers)
	assert.Equal(t, "900", req.Budget)
	assert.Equal(t, []domain.Interest{domain.InterestFood, domain.InterestNightlife}, req.Interests,
		"interests follow option order")
	assert.NoError(t, req.Validate())
}

func TestTripFields_RequestDefaults(t *testing.T) {
	f := newTripFields()
	f.Travelers = "abc"

	req := f.request()

	assert.Equal(t, domain.DefaultTravelers, req.Travelers)
	assert.NotNil(t, req.Interests)
	assert.Empty(t, req.Interests)
	assert.ErrorIs(t, req.Validate(), domain.ErrValidation)
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validatePositiveInt(""))
	assert.NoError(t, validatePositiveInt("3"))
	assert.Error(t, validatePositiveInt("0"))
	assert.Error(t, validatePositiveInt("two"))

	assert.NoError(t, validateOptionalDate(""))
	assert.NoError(t, validateOptionalDate("2024-02-29"))
	assert.Error(t, validateOptionalDate("2023-02-29"))
	assert.Error(t, validateOptionalDate("06/01/2024"))
}
