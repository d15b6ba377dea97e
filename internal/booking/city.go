package booking

import "strings"

// DefaultCity is sent when no city can be read out of an address.
const DefaultCity = "City"

// CityFromAddress takes the second-to-last comma-separated token of a
// "street, city, region" address.
func CityFromAddress(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) < 2 {
		return DefaultCity
	}

	city := strings.TrimSpace(parts[len(parts)-2])
	if city == "" {
		return DefaultCity
	}
	return city
}
