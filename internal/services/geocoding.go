package services

import (
	"context"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"

	"travelbah/internal/geo"
	"travelbah/internal/models/trip_models"
)

// Geocoder resolves free text to a coordinate. ok is false when the
// backend has no match; err is reserved for transport failures.
type Geocoder interface {
	Geocode(ctx context.Context, text string) (coord trip_models.Coordinate, ok bool, err error)
	Name() string
}

var coordPairPattern = regexp.MustCompile(`(-?\d+(\.\d+)?)\s*,\s*(-?\d+(\.\d+)?)`)

// ParseCoordinatePair reads a "lat, lng" pair anywhere in text.
func ParseCoordinatePair(text string) (trip_models.Coordinate, bool) {
	m := coordPairPattern.FindStringSubmatch(text)
	if m == nil {
		return trip_models.Coordinate{}, false
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return trip_models.Coordinate{}, false
	}
	lng, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return trip_models.Coordinate{}, false
	}
	return trip_models.Coordinate{Lng: lng, Lat: lat}, true
}

type namedPlace struct {
	key   string
	coord trip_models.Coordinate
}

// Known places in the Sabah service region.
var namedPlaces = []namedPlace{
	{key: "tawau airport", coord: trip_models.Coordinate{Lng: 117.894444, Lat: 4.320278}},
	{key: "tawau town", coord: trip_models.Coordinate{Lng: 117.895, Lat: 4.244}},
	{key: "tawau", coord: trip_models.Coordinate{Lng: 117.889, Lat: 4.244}},
	{key: "semporna", coord: trip_models.Coordinate{Lng: 118.611, Lat: 4.481}},
	{key: "kota kinabalu", coord: trip_models.Coordinate{Lng: 116.074, Lat: 5.980}},
	{key: "kk", coord: trip_models.Coordinate{Lng: 116.074, Lat: 5.980}},
}

func normalizePlace(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// LookupNamedPlace matches text against the named-place table. An exact key
// wins; otherwise the longest key contained in text. "kk" only matches exactly
// since it is too short to search for inside other words.
func LookupNamedPlace(text string) (trip_models.Coordinate, bool) {
	place := normalizePlace(text)
	if place == "" {
		return trip_models.Coordinate{}, false
	}

	var best *namedPlace
	for i := range namedPlaces {
		np := &namedPlaces[i]
		if place == np.key {
			return np.coord, true
		}
		if np.key == "kk" || !strings.Contains(place, np.key) {
			continue
		}
		if best == nil || len(np.key) > len(best.key) {
			best = np
		}
	}
	if best == nil {
		return trip_models.Coordinate{}, false
	}
	return best.coord, true
}

// JitterFallback places text at a small offset in [0, 0.02) degrees from
// center. The offset is an FNV hash of the normalized text so the same input
// always lands on the same spot.
func JitterFallback(text string, center trip_models.Coordinate) trip_models.Coordinate {
	h := fnv.New64a()
	_, _ = h.Write([]byte(normalizePlace(text)))
	sum := h.Sum64()

	fx := float64(sum&0xffffffff) / float64(1<<32)
	fy := float64(sum>>32) / float64(1<<32)
	return trip_models.Coordinate{
		Lng: geo.Round(center.Lng+fx*0.02, 6),
		Lat: geo.Round(center.Lat+fy*0.02, 6),
	}
}
