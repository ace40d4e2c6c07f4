package models

// Listing is a property listing as returned by the third-party listings
// API. The proxy passes these through untouched apart from JSON mapping.
type Listing struct {
	ID            string   `json:"id"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Price         int64    `json:"price"`
	Beds          float64  `json:"beds"`
	Baths         float64  `json:"baths"`
	SquareFootage int64    `json:"square_footage"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	PropertyType  string   `json:"property_type"`
	Photos        []string `json:"photos"`
}

// Viewport is a map viewport: two corner coordinates from the client.
// The listings API wants a closed polygon instead, see ListingService.
type Viewport struct {
	NorthEastLat float64 `json:"ne_lat"`
	NorthEastLng float64 `json:"ne_lng"`
	SouthWestLat float64 `json:"sw_lat"`
	SouthWestLng float64 `json:"sw_lng"`
}

// ListingSearchRequest represents a listings browse query
type ListingSearchRequest struct {
	Viewport Viewport `json:"viewport"`
	City     string   `json:"city"`
	State    string   `json:"state"`
	Limit    int      `json:"limit"`
}
