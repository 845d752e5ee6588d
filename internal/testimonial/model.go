package testimonial

import "time"

type Testimonial struct {
	ID         int       `db:"id" json:"id"`
	ClientName string    `db:"client_name" json:"client_name"`
	Quote      string    `db:"quote" json:"quote"`
	Rating     int       `db:"rating" json:"rating"`
	Approved   bool      `db:"approved" json:"approved"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type SubmitTestimonialRequest struct {
	ClientName string `json:"client_name" binding:"required,max=120"`
	Quote      string `json:"quote" binding:"required,max=1000"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
}
