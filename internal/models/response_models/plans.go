package response_models

import "travelbah/internal/models/trip_models"

type Route struct {
	Path       []trip_models.Coordinate `json:"path"`
	DistanceKm float64                  `json:"distance_km"`
	EtaMinutes int                      `json:"eta_minutes"`
	Source     string                   `json:"source"`
}

type PlanResponse struct {
	OriginName      string                 `json:"origin_name"`
	DestinationName string                 `json:"destination_name"`
	Origin          trip_models.Coordinate `json:"origin"`
	Destination     trip_models.Coordinate `json:"destination"`
	Mode            string                 `json:"mode"`
	Event           string                 `json:"event,omitempty"`
	Route           Route                  `json:"route"`
	Stops           []POI                  `json:"stops"`
	SurpriseDrop    *POI                   `json:"surprise_drop,omitempty"`
	GeneratedAt     string                 `json:"generated_at"`
}
