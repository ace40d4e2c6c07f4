package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"rently-backend/internal/cache"
	"rently-backend/internal/metrics"
	"rently-backend/internal/models"
)

// ListingService proxies listing searches to the third-party listings
// provider so the API key never reaches the browser. Responses are cached
// in Redis keyed by the upstream query string.
type ListingService struct {
	BaseURL  string
	APIKey   string
	CacheTTL time.Duration
	Client   *http.Client
}

func NewListingService(baseURL, apiKey string, cacheTTLSeconds int) *ListingService {
	return &ListingService{
		BaseURL:  baseURL,
		APIKey:   apiKey,
		CacheTTL: time.Duration(cacheTTLSeconds) * time.Second,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// viewportPolygon converts two viewport corners into the closed polygon
// string the provider expects: the four corners in order, first point
// repeated at the end, as "lng lat" pairs joined by commas.
func viewportPolygon(v models.Viewport) string {
	pts := [][2]float64{
		{v.SouthWestLng, v.SouthWestLat},
		{v.NorthEastLng, v.SouthWestLat},
		{v.NorthEastLng, v.NorthEastLat},
		{v.SouthWestLng, v.NorthEastLat},
		{v.SouthWestLng, v.SouthWestLat}, // close the ring
	}
	out := ""
	for i, p := range pts {
		if i > 0 {
			out += ","
		}
		out += strconv.FormatFloat(p[0], 'f', 6, 64) + " " + strconv.FormatFloat(p[1], 'f', 6, 64)
	}
	return out
}

func (s *ListingService) buildQuery(req *models.ListingSearchRequest) url.Values {
	q := url.Values{}
	if req.City != "" {
		q.Set("city", req.City)
	}
	if req.State != "" {
		q.Set("state", req.State)
	}
	empty := models.Viewport{}
	if req.Viewport != empty {
		q.Set("polygon", viewportPolygon(req.Viewport))
	}
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("status", "Active")
	return q
}

// Search returns active rental listings for the requested area.
func (s *ListingService) Search(ctx context.Context, req *models.ListingSearchRequest) ([]models.Listing, error) {
	if s.BaseURL == "" || s.APIKey == "" {
		return nil, invalidf("listings", "listings provider is not configured")
	}

	query := s.buildQuery(req).Encode()
	cacheKey := cache.ListingSearchKey(query)

	if data, ok := cache.GetCached(ctx, cacheKey); ok {
		var listings []models.Listing
		if err := json.Unmarshal(data, &listings); err == nil {
			metrics.ListingCacheHits.Inc()
			return listings, nil
		}
	}
	metrics.ListingCacheMisses.Inc()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/listings/rental/long-term?"+query, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("X-Api-Key", s.APIKey)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("listings request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listings provider returned %d", resp.StatusCode)
	}

	var upstream []struct {
		ID            string  `json:"id"`
		FormattedAddr string  `json:"formattedAddress"`
		City          string  `json:"city"`
		State         string  `json:"state"`
		Price         int64   `json:"price"`
		Bedrooms      float64 `json:"bedrooms"`
		Bathrooms     float64 `json:"bathrooms"`
		SquareFootage int64   `json:"squareFootage"`
		Latitude      float64 `json:"latitude"`
		Longitude     float64 `json:"longitude"`
		PropertyType  string  `json:"propertyType"`
		Photos        []string `json:"photos"`
	}
	if err := json.Unmarshal(body, &upstream); err != nil {
		return nil, fmt.Errorf("decode listings response: %w", err)
	}

	listings := make([]models.Listing, 0, len(upstream))
	for _, u := range upstream {
		listings = append(listings, models.Listing{
			ID:            u.ID,
			Address:       u.FormattedAddr,
			City:          u.City,
			State:         u.State,
			Price:         u.Price,
			Beds:          u.Bedrooms,
			Baths:         u.Bathrooms,
			SquareFootage: u.SquareFootage,
			Latitude:      u.Latitude,
			Longitude:     u.Longitude,
			PropertyType:  u.PropertyType,
			Photos:        u.Photos,
		})
	}

	if data, err := json.Marshal(listings); err == nil {
		cache.SetCached(ctx, cacheKey, data, s.CacheTTL)
	}

	return listings, nil
}
