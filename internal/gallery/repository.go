package gallery

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrImageNotFound = errors.New("image not found")

type Repository interface {
	GetAll(ctx context.Context) ([]Image, error)
	Create(ctx context.Context, req CreateImageRequest) (*Image, error)
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Image, error) {
	query := `
		SELECT id, title, url, sort_order, created_at
		FROM gallery_images
		ORDER BY sort_order ASC, id ASC
	`

	var images []Image
	err := r.db.SelectContext(ctx, &images, query)
	if err != nil {
		return nil, err
	}

	return images, nil
}

func (r *repository) Create(ctx context.Context, req CreateImageRequest) (*Image, error) {
	query := `
		INSERT INTO gallery_images (title, url, sort_order)
		VALUES ($1, $2, $3)
		RETURNING id, title, url, sort_order, created_at
	`

	var img Image
	err := r.db.GetContext(ctx, &img, query, req.Title, req.URL, req.SortOrder)
	if err != nil {
		return nil, err
	}

	return &img, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrImageNotFound
	}

	return nil
}
