package verification

import (
	"strings"

	"proptrust/internal/domain/entity"
	"proptrust/internal/domain/geo"
)

const (
	maxAddressLength = 500
	maxTitleLength   = 200
)

// ValidateListingFields runs the basic field checks a submission must pass.
func ValidateListingFields(l *entity.Listing) error {
	address := strings.TrimSpace(l.Address)
	switch {
	case address == "":
		return invalid("address is required")
	case len(address) > maxAddressLength:
		return invalid("address must be at most %d characters", maxAddressLength)
	case entity.NormalizeAddress(address) == "":
		return invalid("address must contain letters or digits")
	case len(strings.TrimSpace(l.Title)) > maxTitleLength:
		return invalid("title must be at most %d characters", maxTitleLength)
	case (l.Latitude == nil) != (l.Longitude == nil):
		return invalid("latitude and longitude must be provided together")
	case l.Price != nil && !(*l.Price >= 0):
		return invalid("price must not be negative")
	}

	if l.HasCoordinates() {
		if !geo.ValidLatitude(*l.Latitude) {
			return invalid("latitude must be between -90 and 90")
		}
		if !geo.ValidLongitude(*l.Longitude) {
			return invalid("longitude must be between -180 and 180")
		}
	}

	return nil
}
