package entity

import "time"

// Outlet is a branch location holding its own stock balance.
type Outlet struct {
	ID        string
	CompanyID string
	Code      string // unique per company among non-deleted outlets
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
