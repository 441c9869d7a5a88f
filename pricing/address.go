package pricing

import "milkbites/models"

// EnforceSingleDefault returns the address list with IsDefault set only on
// the address with newDefaultID, cleared everywhere else. The persistence
// layer mirrors this as a clear-all write followed by a set-one write; a
// crash between the two can transiently leave zero defaults, never two.
func EnforceSingleDefault(addresses []models.Address, newDefaultID string) []models.Address {
	out := make([]models.Address, len(addresses))
	for i, a := range addresses {
		a.IsDefault = a.AddressID == newDefaultID
		out[i] = a
	}
	return out
}
