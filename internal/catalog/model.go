package catalog

import "time"

// Service is one entry of the salon's menu.
type Service struct {
	ID              int       `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Description     string    `db:"description" json:"description"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	PriceCents      int       `db:"price_cents" json:"price_cents"`
	Active          bool      `db:"active" json:"active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required,max=120"`
	Description     string `json:"description" binding:"max=500"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=5,max=480"`
	PriceCents      int    `json:"price_cents" binding:"min=0"`
}

type UpdateServiceRequest struct {
	Name            string `json:"name" binding:"required,max=120"`
	Description     string `json:"description" binding:"max=500"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=5,max=480"`
	PriceCents      int    `json:"price_cents" binding:"min=0"`
	Active          *bool  `json:"active" binding:"required"`
}
