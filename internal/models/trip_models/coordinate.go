package trip_models

import "fmt"

// Coordinate is a WGS84-like (longitude, latitude) pair in degrees.
// Ranges are not validated; out-of-range values only affect distance math.
type Coordinate struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%f,%f", c.Lng, c.Lat)
}
