package catalog

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrServiceNotFound = errors.New("service not found")

type Repository interface {
	Create(ctx context.Context, req CreateServiceRequest) (*Service, error)
	Update(ctx context.Context, id int, req UpdateServiceRequest) (*Service, error)
	Deactivate(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*Service, error)
	GetAll(ctx context.Context) ([]Service, error)
	GetActive(ctx context.Context) ([]Service, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req CreateServiceRequest) (*Service, error) {
	query := `
		INSERT INTO services (name, description, duration_minutes, price_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, duration_minutes, price_cents, active, created_at
	`

	var svc Service
	err := r.db.GetContext(ctx, &svc, query, req.Name, req.Description, req.DurationMinutes, req.PriceCents)
	if err != nil {
		return nil, err
	}

	return &svc, nil
}

func (r *repository) Update(ctx context.Context, id int, req UpdateServiceRequest) (*Service, error) {
	query := `
		UPDATE services
		SET name = $2, description = $3, duration_minutes = $4, price_cents = $5, active = $6
		WHERE id = $1
		RETURNING id, name, description, duration_minutes, price_cents, active, created_at
	`

	var svc Service
	err := r.db.GetContext(ctx, &svc, query, id, req.Name, req.Description, req.DurationMinutes, req.PriceCents, *req.Active)
	if err != nil {
		return nil, err
	}

	return &svc, nil
}

func (r *repository) Deactivate(ctx context.Context, id int) error {
	query := `UPDATE services SET active = false WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Service, error) {
	query := `
		SELECT id, name, description, duration_minutes, price_cents, active, created_at
		FROM services
		WHERE id = $1
	`

	var svc Service
	err := r.db.GetContext(ctx, &svc, query, id)
	if err != nil {
		return nil, err
	}

	return &svc, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Service, error) {
	query := `
		SELECT id, name, description, duration_minutes, price_cents, active, created_at
		FROM services
		ORDER BY name ASC
	`

	var services []Service
	err := r.db.SelectContext(ctx, &services, query)
	if err != nil {
		return nil, err
	}

	return services, nil
}

func (r *repository) GetActive(ctx context.Context) ([]Service, error) {
	query := `
		SELECT id, name, description, duration_minutes, price_cents, active, created_at
		FROM services
		WHERE active = true
		ORDER BY name ASC
	`

	var services []Service
	err := r.db.SelectContext(ctx, &services, query)
	if err != nil {
		return nil, err
	}

	return services, nil
}
