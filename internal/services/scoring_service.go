package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"travelbah/internal/geo"
	"travelbah/internal/models/trip_models"
	"travelbah/pkg/utils"
)

const (
	maxStops          = 6
	minStops          = 3
	stopScoreFloor    = 1 // strictly greater is required
	surpriseThreshold = 3 // inclusive
	surpriseProgress  = 0.4

	// Catalogs smaller than this are scored inline.
	parallelScoringMin = 256
)

// modeBonus maps (mode, category) to a fixed affinity bonus.
var modeBonus = map[trip_models.Mode]map[trip_models.Category]int{
	trip_models.ModeFood: {
		trip_models.CategoryFood:          3,
		trip_models.CategoryStay:          1,
		trip_models.CategorySpot:          1,
		trip_models.CategoryEntertainment: 1,
	},
	trip_models.ModeChill: {
		trip_models.CategoryFood:          2,
		trip_models.CategoryStay:          2,
		trip_models.CategorySpot:          3,
		trip_models.CategoryEntertainment: 2,
	},
	trip_models.ModeEfficient: {
		trip_models.CategoryFood:          1,
		trip_models.CategoryStay:          2,
		trip_models.CategorySpot:          1,
		trip_models.CategoryEntertainment: 1,
	},
}

// ProximityBands are inclusive distance cutoffs in km.
type ProximityBands struct {
	NearKm float64
	MidKm  float64
}

var (
	routeBands    = ProximityBands{NearKm: 1, MidKm: 3}
	surpriseBands = ProximityBands{NearKm: 1.5, MidKm: 3}
)

func (b ProximityBands) bonus(distKm float64) int {
	switch {
	case distKm <= b.NearKm:
		return 2
	case distKm <= b.MidKm:
		return 1
	default:
		return -2
	}
}

// ScoreBreakdown lists the independent terms that make up a score.
type ScoreBreakdown struct {
	Proximity int
	Mode      int
	TimeOfDay int
	Partner   int
	Event     int
}

func (b ScoreBreakdown) Total() int {
	return b.Proximity + b.Mode + b.TimeOfDay + b.Partner + b.Event
}

type ScoringServiceInterface interface {
	Score(poi trip_models.POI, path []trip_models.Coordinate, mode trip_models.Mode, event trip_models.Event) int
	SelectStops(catalog []trip_models.POI, path []trip_models.Coordinate, mode trip_models.Mode, event trip_models.Event) []trip_models.POI
	SelectSurprise(catalog []trip_models.POI, path []trip_models.Coordinate, mode trip_models.Mode) (trip_models.POI, bool)
}

// Scorer ranks POIs against a route. It holds no mutable state; the clock
// is only read to find the local hour.
type Scorer struct {
	clock utils.Clock
	loc   *time.Location
}

func NewScorer(clock utils.Clock, loc *time.Location) *Scorer {
	if clock == nil {
		clock = utils.SystemClock()
	}
	return &Scorer{clock: clock, loc: loc}
}

func (s *Scorer) Score(poi trip_models.POI, path []trip_models.Coordinate, mode trip_models.Mode, event trip_models.Event) int {
	return s.Breakdown(poi, path, mode, event, s.hour()).Total()
}

// Breakdown scores poi at the given local hour.
func (s *Scorer) Breakdown(poi trip_models.POI, path []trip_models.Coordinate, mode trip_models.Mode, event trip_models.Event, hour int) ScoreBreakdown {
	return ScoreBreakdown{
		Proximity: routeBands.bonus(geo.MinDistanceKm(poi.Coordinate, path)),
		Mode:      modeAffinity(mode, poi.Category),
		TimeOfDay: timeOfDayBonus(poi, hour),
		Partner:   partnerBonus(poi),
		Event:     eventModifier(poi, event),
	}
}

func (s *Scorer) hour() int {
	return utils.LocalHour(s.clock.Now(), s.loc)
}

func modeAffinity(mode trip_models.Mode, category trip_models.Category) int {
	byCategory, ok := modeBonus[mode]
	if !ok {
		panic(fmt.Sprintf("scoring: no bonus table for mode %q", mode))
	}
	bonus, ok := byCategory[category]
	if !ok {
		panic(fmt.Sprintf("scoring: no bonus for mode %q category %q", mode, category))
	}
	return bonus
}

func isMealHour(hour int) bool {
	return (hour >= 11 && hour <= 14) || (hour >= 18 && hour <= 21)
}

func timeOfDayBonus(poi trip_models.POI, hour int) int {
	if isMealHour(hour) {
		if poi.HasAnyTag("seafood", "local") {
			return 2
		}
		return 1
	}
	if poi.HasAnyTag("cafe", "quiet") {
		return 2
	}
	return 1
}

func partnerBonus(poi trip_models.POI) int {
	if poi.IsPartner() {
		return 1
	}
	return 0
}

func eventModifier(poi trip_models.POI, event trip_models.Event) int {
	switch event {
	case trip_models.EventRain:
		if poi.HasTag("indoor") || poi.Category == trip_models.CategoryStay {
			return 3
		}
		return -1
	case trip_models.EventTraffic:
		if poi.Category == trip_models.CategoryFood || poi.Category == trip_models.CategoryStay {
			return 2
		}
		return 0
	case trip_models.EventTired:
		if poi.HasTag("quiet") || poi.Category == trip_models.CategoryStay || poi.Category == trip_models.CategoryEntertainment {
			return 3
		}
		return -1
	default:
		return 0
	}
}

// scoreAll scores every POI, keeping results in catalog order. Large
// catalogs are split across goroutines; each writes its own index range.
func scoreAll(catalog []trip_models.POI, score func(trip_models.POI) int) []trip_models.ScoredCandidate {
	out := make([]trip_models.ScoredCandidate, len(catalog))
	if len(catalog) < parallelScoringMin {
		for i, poi := range catalog {
			out[i] = trip_models.ScoredCandidate{POI: poi, Score: score(poi)}
		}
		return out
	}

	const chunk = 128
	var g errgroup.Group
	for start := 0; start < len(catalog); start += chunk {
		start, end := start, min(start+chunk, len(catalog))
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = trip_models.ScoredCandidate{POI: catalog[i], Score: score(catalog[i])}
			}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// SelectStops returns up to six POIs with score > 1, best first, with at most
// one POI per (category, name family). Ties keep catalog order. The list may
// hold fewer than three entries; it is never padded with weaker POIs.
func (s *Scorer) SelectStops(catalog []trip_models.POI, path []trip_models.Coordinate, mode trip_models.Mode, event trip_models.Event) []trip_models.POI {
	hour := s.hour()
	scored := scoreAll(catalog, func(p trip_models.POI) int {
		return s.Breakdown(p, path, mode, event, hour).Total()
	})

	kept := scored[:0]
	for _, c := range scored {
		if c.Score > stopScoreFloor {
			kept = append(kept, c)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Score > kept[j].Score })

	type familyKey struct {
		category trip_models.Category
		family   string
	}
	seen := make(map[familyKey]struct{}, maxStops)
	chosen := make([]trip_models.POI, 0, maxStops)
	for _, c := range kept {
		if len(chosen) >= maxStops {
			break
		}
		k := familyKey{category: c.POI.Category, family: c.POI.Family()}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		chosen = append(chosen, c.POI)
	}
	return chosen
}

// SurpriseAnchor is the path point at 40% of the point sequence, or the
// midpoint when that index is out of range.
func SurpriseAnchor(path []trip_models.Coordinate) (trip_models.Coordinate, bool) {
	if len(path) == 0 {
		return trip_models.Coordinate{}, false
	}
	idx := int(math.Floor(float64(len(path)) * surpriseProgress))
	if idx < 0 || idx >= len(path) {
		idx = len(path) / 2
	}
	return path[idx], true
}

// SelectSurprise picks the single best POI near the 40% point of the path.
// It ignores time of day and events, and may repeat a regular stop.
func (s *Scorer) SelectSurprise(catalog []trip_models.POI, path []trip_models.Coordinate, mode trip_models.Mode) (trip_models.POI, bool) {
	anchor, ok := SurpriseAnchor(path)
	if !ok {
		return trip_models.POI{}, false
	}

	scored := scoreAll(catalog, func(p trip_models.POI) int {
		return surpriseBands.bonus(geo.DistanceKm(anchor, p.Coordinate)) +
			modeAffinity(mode, p.Category) +
			partnerBonus(p)
	})

	var best trip_models.ScoredCandidate
	found := false
	for _, c := range scored {
		if c.Score < surpriseThreshold {
			continue
		}
		if !found || c.Score > best.Score {
			best, found = c, true
		}
	}
	return best.POI, found
}
