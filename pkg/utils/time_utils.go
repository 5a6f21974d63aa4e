package utils

import "time"

// Sabah time (MYT, +08:00), used when the configured zone cannot be loaded.
var mytLoc = time.FixedZone("MYT", 8*3600)

// LoadServiceLocation resolves the service time zone, falling back to MYT.
func LoadServiceLocation(name string) *time.Location {
	if name == "" {
		return mytLoc
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return mytLoc
}

// Clock returns the current time. Scoring reads the hour through it so
// tests can pin the time of day.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
func SystemClock() Clock { return systemClock{} }

// FixedClock always reports t.
type FixedClock time.Time

func (f FixedClock) Now() time.Time { return time.Time(f) }

// LocalHour is the hour of t in loc.
func LocalHour(t time.Time, loc *time.Location) int {
	if loc == nil {
		loc = mytLoc
	}
	return t.In(loc).Hour()
}

func FormatRFC3339Local(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = mytLoc
	}
	return t.In(loc).Format(time.RFC3339)
}
