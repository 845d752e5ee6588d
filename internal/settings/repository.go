package settings

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Setting is one key of the shop profile shown on the public site: name,
// address, phone, social links.
type Setting struct {
	Key   string `db:"key" json:"key"`
	Value string `db:"value" json:"value"`
}

type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}

type Repository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, values map[string]string) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) (map[string]string, error) {
	var rows []Setting
	err := r.db.SelectContext(ctx, &rows, `SELECT key, value FROM settings ORDER BY key ASC`)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}

	return values, nil
}

func (r *repository) Upsert(ctx context.Context, values map[string]string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`

	for key, value := range values {
		if _, err := tx.ExecContext(ctx, query, key, value); err != nil {
			return err
		}
	}

	return tx.Commit()
}
