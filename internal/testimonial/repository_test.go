package testimonial

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

func testimonialRow(id int, approved bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "client_name", "quote", "rating", "approved", "created_at"}).
		AddRow(id, "Alice", "Best fade in town.", 5, approved, time.Now())
}

func TestCreate_StartsUnapproved(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	req := SubmitTestimonialRequest{ClientName: "Alice", Quote: "Best fade in town.", Rating: 5}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO testimonials")).
		WithArgs(req.ClientName, req.Quote, req.Rating).
		WillReturnRows(testimonialRow(1, false))

	tm, err := repo.Create(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, tm.Approved)
}

func TestGetApproved(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE approved = true")).
		WillReturnRows(testimonialRow(1, true))

	testimonials, err := repo.GetApproved(context.Background())
	require.NoError(t, err)
	require.Len(t, testimonials, 1)
	assert.True(t, testimonials[0].Approved)
}

func TestApprove_NotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("SET approved = true")).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Approve(context.Background(), 99), ErrTestimonialNotFound)
}
