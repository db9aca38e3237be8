package dto

// ErrorResponse standard error body for the API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PageResponse echoes the pagination applied to a listing.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
