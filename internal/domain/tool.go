package domain

import "time"

type Brand struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// Tool is read-only from the booking engine's perspective. Availability is
// always derived from the reservation table, never from a flag on the tool;
// Featured only controls listing placement.
type Tool struct {
	ID             int32     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PhotoURL       string    `json:"photo_url"`
	DailyRateCents int32     `json:"daily_rate_cents"`
	BrandID        int32     `json:"brand_id"`
	CategoryID     int32     `json:"category_id"`
	AdminID        string    `json:"admin_id"`
	Featured       bool      `json:"featured"`
	CreatedOn      time.Time `json:"created_on"`

	Brand    *Brand    `json:"brand,omitempty"`
	Category *Category `json:"category,omitempty"`
}
