package gallery

import "time"

type Image struct {
	ID        int       `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	URL       string    `db:"url" json:"url"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateImageRequest struct {
	Title     string `json:"title" binding:"max=120"`
	URL       string `json:"url" binding:"required,url"`
	SortOrder int    `json:"sort_order"`
}
