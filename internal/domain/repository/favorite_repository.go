package repository

// FavoriteRepository stores per-location favorite marks, keyed by
// (company, location_key, product).
type FavoriteRepository interface {
	// Set marks or unmarks a product as favorite at a location.
	Set(companyID, locationKey, productID string, favorite bool) error
	// ListByLocation returns the favorited product ids at a location.
	ListByLocation(companyID, locationKey string) (map[string]bool, error)
}
