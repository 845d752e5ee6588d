package testimonial

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrTestimonialNotFound = errors.New("testimonial not found")

type Repository interface {
	Create(ctx context.Context, req SubmitTestimonialRequest) (*Testimonial, error)
	GetApproved(ctx context.Context) ([]Testimonial, error)
	GetAll(ctx context.Context) ([]Testimonial, error)
	Approve(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create stores a submission unapproved; it only shows on the site after
// staff review.
func (r *repository) Create(ctx context.Context, req SubmitTestimonialRequest) (*Testimonial, error) {
	query := `
		INSERT INTO testimonials (client_name, quote, rating, approved)
		VALUES ($1, $2, $3, false)
		RETURNING id, client_name, quote, rating, approved, created_at
	`

	var tm Testimonial
	err := r.db.GetContext(ctx, &tm, query, req.ClientName, req.Quote, req.Rating)
	if err != nil {
		return nil, err
	}

	return &tm, nil
}

func (r *repository) GetApproved(ctx context.Context) ([]Testimonial, error) {
	query := `
		SELECT id, client_name, quote, rating, approved, created_at
		FROM testimonials
		WHERE approved = true
		ORDER BY created_at DESC
	`

	var testimonials []Testimonial
	err := r.db.SelectContext(ctx, &testimonials, query)
	if err != nil {
		return nil, err
	}

	return testimonials, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Testimonial, error) {
	query := `
		SELECT id, client_name, quote, rating, approved, created_at
		FROM testimonials
		ORDER BY created_at DESC
	`

	var testimonials []Testimonial
	err := r.db.SelectContext(ctx, &testimonials, query)
	if err != nil {
		return nil, err
	}

	return testimonials, nil
}

func (r *repository) Approve(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE testimonials SET approved = true WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrTestimonialNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrTestimonialNotFound
	}

	return nil
}
