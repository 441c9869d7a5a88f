package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"milkbites/models"
)

func TestEnforceSingleDefault(t *testing.T) {
	addrs := []models.Address{
		{AddressID: "a1", UserID: "u1", IsDefault: true},
		{AddressID: "a2", UserID: "u1", IsDefault: true},
		{AddressID: "a3", UserID: "u1"},
	}

	got := EnforceSingleDefault(addrs, "a2")

	var defaults []string
	for _, a := range got {
		if a.IsDefault {
			defaults = append(defaults, a.AddressID)
		}
	}
	assert.Equal(t, []string{"a2"}, defaults)

	// input is left untouched
	assert.True(t, addrs[0].IsDefault)
}

func TestEnforceSingleDefaultUnknownIDClearsAll(t *testing.T) {
	addrs := []models.Address{
		{AddressID: "a1", IsDefault: true},
	}

	got := EnforceSingleDefault(addrs, "nope")
	assert.False(t, got[0].IsDefault)
}
