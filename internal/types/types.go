// README: Common value objects shared across modules.
package types

// ID is an opaque identifier (Firebase UID, Google place_id, or UUID string).
type ID string

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}

// Valid reports whether the point is inside the WGS84 range.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Money is an amount in the smallest currency unit.
type Money struct {
	Amount   int64
	Currency string
}
