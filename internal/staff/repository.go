package staff

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrStaffNotFound = errors.New("staff account not found")

type Repository interface {
	Create(ctx context.Context, name, email, passwordHash, role string) (*Staff, error)
	FindByEmail(ctx context.Context, email string) (*Staff, error)
	FindByID(ctx context.Context, id int) (*Staff, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetAll(ctx context.Context) ([]Staff, error)
	Deactivate(ctx context.Context, id int) error
	CountAdmins(ctx context.Context) (int, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, email, passwordHash, role string) (*Staff, error) {
	query := `
		INSERT INTO staff (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, role, active, created_at
	`

	var s Staff
	err := r.db.GetContext(ctx, &s, query, name, email, passwordHash, role)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Staff, error) {
	query := `
		SELECT id, name, email, password_hash, role, active, created_at
		FROM staff
		WHERE email = $1 AND active = true
	`

	var s Staff
	err := r.db.GetContext(ctx, &s, query, email)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Staff, error) {
	query := `
		SELECT id, name, email, password_hash, role, active, created_at
		FROM staff
		WHERE id = $1
	`

	var s Staff
	err := r.db.GetContext(ctx, &s, query, id)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM staff WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Staff, error) {
	query := `
		SELECT id, name, email, password_hash, role, active, created_at
		FROM staff
		ORDER BY created_at ASC
	`

	var accounts []Staff
	err := r.db.SelectContext(ctx, &accounts, query)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// Deactivate disables login without deleting the account. Deactivated
// accounts stay listed for the audit trail.
func (r *repository) Deactivate(ctx context.Context, id int) error {
	query := `UPDATE staff SET active = false WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrStaffNotFound
	}

	return nil
}

func (r *repository) CountAdmins(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM staff WHERE role = 'admin' AND active = true`

	var count int
	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, err
	}

	return count, nil
}
