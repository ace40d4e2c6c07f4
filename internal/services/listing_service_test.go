package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"rently-backend/internal/models"
)

func TestViewportPolygon(t *testing.T) {
	v := models.Viewport{
		NorthEastLat: 32.8,
		NorthEastLng: -96.7,
		SouthWestLat: 32.7,
		SouthWestLng: -96.8,
	}

	want := "-96.800000 32.700000,-96.700000 32.700000,-96.700000 32.800000,-96.800000 32.800000,-96.800000 32.700000"
	if got := viewportPolygon(v); got != want {
		t.Errorf("viewportPolygon() = %q, want %q", got, want)
	}
}

func TestListingService_BuildQuery(t *testing.T) {
	svc := NewListingService("https://api.example.com", "key", 300)

	testCases := []struct {
		name string
		req  models.ListingSearchRequest
		want map[string]string
	}{
		{
			name: "city search with default limit",
			req:  models.ListingSearchRequest{City: "Dallas", State: "TX"},
			want: map[string]string{"city": "Dallas", "state": "TX", "limit": "50", "status": "Active"},
		},
		{
			name: "limit capped at 100",
			req:  models.ListingSearchRequest{City: "Dallas", Limit: 500},
			want: map[string]string{"limit": "50"},
		},
		{
			name: "explicit limit kept",
			req:  models.ListingSearchRequest{City: "Dallas", Limit: 20},
			want: map[string]string{"limit": "20"},
		},
		{
			name: "viewport becomes a polygon",
			req: models.ListingSearchRequest{Viewport: models.Viewport{
				NorthEastLat: 1, NorthEastLng: 1, SouthWestLat: 0, SouthWestLng: 0,
			}},
			want: map[string]string{"polygon": "0.000000 0.000000,1.000000 0.000000,1.000000 1.000000,0.000000 1.000000,0.000000 0.000000"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := svc.buildQuery(&tc.req)
			for key, want := range tc.want {
				if got := q.Get(key); got != want {
					t.Errorf("query[%s] = %q, want %q", key, got, want)
				}
			}
		})
	}
}

func TestListingService_BuildQuery_EmptyViewport(t *testing.T) {
	svc := NewListingService("https://api.example.com", "key", 300)
	q := svc.buildQuery(&models.ListingSearchRequest{City: "Dallas"})
	if q.Has("polygon") {
		t.Error("empty viewport should not produce a polygon parameter")
	}
}

func TestListingService_Search(t *testing.T) {
	var gotPath, gotKey string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-Api-Key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"id": "123-Main-St,-Dallas,-TX-75201",
			"formattedAddress": "123 Main St, Dallas, TX 75201",
			"city": "Dallas",
			"state": "TX",
			"price": 1850,
			"bedrooms": 2,
			"bathrooms": 1.5,
			"squareFootage": 950,
			"latitude": 32.78,
			"longitude": -96.79,
			"propertyType": "Apartment",
			"photos": ["https://cdn.example.com/1.jpg"]
		}]`))
	}))
	defer upstream.Close()

	svc := NewListingService(upstream.URL, "secret-key", 0)
	listings, err := svc.Search(context.Background(), &models.ListingSearchRequest{City: "Dallas"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotPath != "/listings/rental/long-term" {
		t.Errorf("upstream path = %q, want /listings/rental/long-term", gotPath)
	}
	if gotKey != "secret-key" {
		t.Errorf("X-Api-Key = %q, want secret-key", gotKey)
	}
	if len(listings) != 1 {
		t.Fatalf("listings = %d, want 1", len(listings))
	}
	got := listings[0]
	if got.Address != "123 Main St, Dallas, TX 75201" {
		t.Errorf("address = %q", got.Address)
	}
	if got.Price != 1850 || got.Beds != 2 || got.Baths != 1.5 {
		t.Errorf("price/beds/baths = %d/%v/%v", got.Price, got.Beds, got.Baths)
	}
}

func TestListingService_Search_Unconfigured(t *testing.T) {
	svc := NewListingService("", "", 0)
	if _, err := svc.Search(context.Background(), &models.ListingSearchRequest{City: "Dallas"}); !IsValidation(err) {
		t.Errorf("Search() error = %v, want validation error", err)
	}
}

func TestListingService_Search_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	svc := NewListingService(upstream.URL, "key", 0)
	if _, err := svc.Search(context.Background(), &models.ListingSearchRequest{City: "Dallas"}); err == nil {
		t.Error("Search() expected error on upstream 429")
	}
}
