package trip_models

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryFood          Category = "food"
	CategoryStay          Category = "stay"
	CategorySpot          Category = "spot"
	CategoryEntertainment Category = "entertainment"
)

// Categories lists every category in catalog order.
var Categories = []Category{CategoryFood, CategoryStay, CategorySpot, CategoryEntertainment}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

type PartnerStatus string

const (
	PartnerNone    PartnerStatus = "none"
	PartnerPartner PartnerStatus = "partner"
)

// POI is an immutable catalog entry. Selection only ever reads it.
type POI struct {
	ID            string
	Name          string
	Category      Category
	Coordinate    Coordinate
	Tags          []string
	PriceLevel    int
	PartnerStatus PartnerStatus
	ShortDesc     string
	OpenHours     string
}

// Family is the first whitespace-delimited token of the name.
// "Seafood House 1" and "Seafood House 2" share the family "Seafood".
func (p POI) Family() string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func (p POI) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (p POI) HasAnyTag(tags ...string) bool {
	for _, t := range tags {
		if p.HasTag(t) {
			return true
		}
	}
	return false
}

func (p POI) IsPartner() bool {
	return p.PartnerStatus == PartnerPartner
}

// ScoredCandidate pairs a POI with its score for a single scoring pass.
type ScoredCandidate struct {
	POI   POI
	Score int
}
