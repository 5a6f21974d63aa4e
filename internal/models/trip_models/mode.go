package trip_models

import (
	"fmt"
	"strings"
)

// Mode biases category weighting. It never mutates POIs or routes.
type Mode string

const (
	ModeFood      Mode = "food"
	ModeChill     Mode = "chill"
	ModeEfficient Mode = "efficient"
)

var Modes = []Mode{ModeFood, ModeChill, ModeEfficient}

func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// RoutingProfile is the directions profile requested from a live router.
func (m Mode) RoutingProfile() string {
	if m == ModeEfficient {
		return "driving-car"
	}
	return "driving-hgv"
}

// Event is a per-call situational modifier. The zero value means no event.
type Event string

const (
	EventNone    Event = ""
	EventRain    Event = "rain"
	EventTraffic Event = "traffic"
	EventTired   Event = "tired"
)

// ParseEvent maps "" and "none" to EventNone and rejects anything unknown.
func ParseEvent(s string) (Event, error) {
	switch e := strings.ToLower(strings.TrimSpace(s)); e {
	case "", "none", "null":
		return EventNone, nil
	case string(EventRain), string(EventTraffic), string(EventTired):
		return Event(e), nil
	default:
		return EventNone, fmt.Errorf("unknown event %q", s)
	}
}
