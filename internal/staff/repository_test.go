package staff

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

func staffRow(id int, role string, active bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "active", "created_at"}).
		AddRow(id, "Owner", "owner@barbershop.test", "hash", role, active, time.Now())
}

func TestCreate(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO staff")).
		WithArgs("Owner", "owner@barbershop.test", "hash", RoleAdmin).
		WillReturnRows(staffRow(1, RoleAdmin, true))

	account, err := repo.Create(context.Background(), "Owner", "owner@barbershop.test", "hash", RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, account.ID)
	assert.Equal(t, RoleAdmin, account.Role)
}

func TestFindByEmail_OnlyActive(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1 AND active = true")).
		WithArgs("owner@barbershop.test").
		WillReturnRows(staffRow(1, RoleAdmin, true))

	account, err := repo.FindByEmail(context.Background(), "owner@barbershop.test")
	require.NoError(t, err)
	assert.True(t, account.Active)
}

func TestEmailExists(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("owner@barbershop.test").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "owner@barbershop.test")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDeactivate_NotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE staff SET active = false WHERE id = $1")).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Deactivate(context.Background(), 99), ErrStaffNotFound)
}

func TestCountAdmins(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM staff WHERE role = 'admin' AND active = true")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountAdmins(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
