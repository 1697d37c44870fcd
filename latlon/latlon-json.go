package latlon

import "encoding/json"

// MarshalJSON encodes g in its Config form, unknown values as null.
func (g *GeoCoordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Config())
}

// UnmarshalJSON applies the decoded values through the setters. The earth
// radius of g is kept.
func (g *GeoCoordinate) UnmarshalJSON(data []byte) error {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	n := New(c)
	n.earthRadius = g.earthRadius
	*g = *n
	return nil
}
