package response_models

import "travelbah/internal/models/trip_models"

type POI struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Category      string                 `json:"category"`
	Coordinate    trip_models.Coordinate `json:"coordinate"`
	Tags          []string               `json:"tags"`
	PriceLevel    int                    `json:"price_level"`
	PartnerStatus string                 `json:"partner_status"`
	ShortDesc     string                 `json:"short_desc,omitempty"`
	OpenHours     string                 `json:"open_hours,omitempty"`
}

func NewPOI(p trip_models.POI) POI {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return POI{
		ID:            p.ID,
		Name:          p.Name,
		Category:      string(p.Category),
		Coordinate:    p.Coordinate,
		Tags:          tags,
		PriceLevel:    p.PriceLevel,
		PartnerStatus: string(p.PartnerStatus),
		ShortDesc:     p.ShortDesc,
		OpenHours:     p.OpenHours,
	}
}

func NewPOIs(pois []trip_models.POI) []POI {
	out := make([]POI, 0, len(pois))
	for _, p := range pois {
		out = append(out, NewPOI(p))
	}
	return out
}
