package gallery

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

func TestGetAll(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	rows := sqlmock.NewRows([]string{"id", "title", "url", "sort_order", "created_at"}).
		AddRow(1, "Fade", "https://cdn.example.com/fade.jpg", 1, time.Now()).
		AddRow(2, "Pompadour", "https://cdn.example.com/pomp.jpg", 2, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("FROM gallery_images")).WillReturnRows(rows)

	images, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "Fade", images[0].Title)
}

func TestCreate(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	req := CreateImageRequest{Title: "Fade", URL: "https://cdn.example.com/fade.jpg", SortOrder: 1}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO gallery_images")).
		WithArgs(req.Title, req.URL, req.SortOrder).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "url", "sort_order", "created_at"}).
			AddRow(1, req.Title, req.URL, req.SortOrder, time.Now()))

	img, err := repo.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, img.ID)
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM gallery_images WHERE id = $1")).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 99), ErrImageNotFound)
}
