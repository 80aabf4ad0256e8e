package repolocation

// ConvertLocations turns raw location strings into Locations, keeping
// input order. A nil raws means the caller supplied no list at all and
// maps to a nil result; an empty list maps to an empty one. The first
// invalid entry aborts the whole conversion with no partial result.
func ConvertLocations(raws []string, reg *Registry) ([]Location, error) {
	if raws == nil {
		return nil, nil
	}

	locations := make([]Location, 0, len(raws))
	for _, raw := range raws {
		loc, err := NewLocation(raw, reg)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, nil
}
