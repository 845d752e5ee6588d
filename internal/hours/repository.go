package hours

import (
	"context"

	"barbershop/internal/schedule"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	GetWeek(ctx context.Context) ([]DayEntry, error)
	ReplaceWeek(ctx context.Context, days []DayEntry) error
	Week(ctx context.Context) (schedule.WeekHours, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetWeek(ctx context.Context) ([]DayEntry, error) {
	query := `
		SELECT weekday, open_time, close_time, closed
		FROM opening_hours
		ORDER BY weekday ASC
	`

	var days []DayEntry
	err := r.db.SelectContext(ctx, &days, query)
	if err != nil {
		return nil, err
	}

	return days, nil
}

func (r *repository) ReplaceWeek(ctx context.Context, days []DayEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE opening_hours
		SET open_time = $2, close_time = $3, closed = $4
		WHERE weekday = $1
	`

	for _, day := range days {
		if _, err := tx.ExecContext(ctx, query, day.Weekday, day.Open, day.Close, day.Closed); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Week loads the stored rows and converts them for the scheduling engine.
func (r *repository) Week(ctx context.Context) (schedule.WeekHours, error) {
	days, err := r.GetWeek(ctx)
	if err != nil {
		return nil, err
	}

	return ToWeekHours(days)
}
