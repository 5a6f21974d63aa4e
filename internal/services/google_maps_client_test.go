package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"googlemaps.github.io/maps"
	"travelbah/internal/models/trip_models"
)

func TestGoogleMaps(t *testing.T) {
	polyline := maps.Encode([]maps.LatLng{{Lat: 4.244, Lng: 117.889}, {Lat: 4.26, Lng: 117.91}})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/maps/api/geocode/json":
			if r.URL.Query().Get("region") != "my" {
				http.Error(w, "missing region", http.StatusBadRequest)
				return
			}
			if r.URL.Query().Get("address") == "Paris Cafe" {
				fmt.Fprint(w, `{"status":"OK","results":[{"geometry":{"location":{"lat":48.8566,"lng":2.3522}}}]}`)
				return
			}
			fmt.Fprint(w, `{"status":"OK","results":[{"geometry":{"location":{"lat":4.3,"lng":117.95}}}]}`)
		case "/maps/api/directions/json":
			fmt.Fprintf(w, `{"status":"OK","routes":[{"overview_polyline":{"points":%q},
				"legs":[{"distance":{"value":3000},"duration":{"value":600}},{"distance":{"value":1321},"duration":{"value":1200}}]}]}`, polyline)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	g, err := NewGoogleMaps("AIza-test-key", time.Second, 0, maps.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewGoogleMaps: %v", err)
	}

	coord, ok, err := g.Geocode(context.Background(), "Balung")
	if err != nil || !ok || coord != (trip_models.Coordinate{Lng: 117.95, Lat: 4.3}) {
		t.Fatalf("Geocode = %v %v %v", coord, ok, err)
	}

	if coord, ok, err := g.Geocode(context.Background(), "Paris Cafe"); err != nil || ok {
		t.Fatalf("result outside Sabah accepted: %v %v %v", coord, ok, err)
	}

	r, err := g.ComputeRoute(context.Background(), ServiceCenter, trip_models.Coordinate{Lng: 117.91, Lat: 4.26}, "driving-hgv")
	if err != nil {
		t.Fatalf("ComputeRoute: %v", err)
	}
	if len(r.Path) != 2 || r.Source != trip_models.RouteSourceGoogle {
		t.Fatalf("route = %+v", r)
	}
	if r.DistanceKm != 4.3 || r.EtaMinutes != 30 {
		t.Fatalf("distance %v eta %d", r.DistanceKm, r.EtaMinutes)
	}
}

func TestWithinBounds(t *testing.T) {
	cases := []struct {
		p    maps.LatLng
		want bool
	}{
		{maps.LatLng{Lat: 4.244, Lng: 117.889}, true},
		{maps.LatLng{Lat: 4.0, Lng: 115.7}, true},
		{maps.LatLng{Lat: 7.4, Lng: 119.4}, true},
		{maps.LatLng{Lat: 3.99, Lng: 117.0}, false},
		{maps.LatLng{Lat: 5.0, Lng: 119.41}, false},
		{maps.LatLng{Lat: 48.8566, Lng: 2.3522}, false},
	}
	for _, tc := range cases {
		if got := withinBounds(sabahBounds, tc.p); got != tc.want {
			t.Errorf("withinBounds(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}
