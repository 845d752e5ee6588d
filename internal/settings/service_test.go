package settings

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockRepository) Upsert(ctx context.Context, values map[string]string) error {
	args := m.Called(ctx, values)
	return args.Error(0)
}

func testValues() map[string]string {
	return map[string]string{
		"shop_name": "The Barbershop",
		"phone":     "+1 555 0100",
	}
}

func TestGet_CacheHit(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	repo := new(MockRepository)
	svc := NewService(repo, rdb)
	ctx := context.Background()

	data, err := json.Marshal(testValues())
	require.NoError(t, err)
	redisMock.ExpectGet(cacheKey).SetVal(string(data))

	values, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "The Barbershop", values["shop_name"])

	repo.AssertNotCalled(t, "GetAll", mock.Anything)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestGet_CacheMissFillsCache(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	repo := new(MockRepository)
	svc := NewService(repo, rdb)
	ctx := context.Background()

	data, err := json.Marshal(testValues())
	require.NoError(t, err)

	redisMock.ExpectGet(cacheKey).RedisNil()
	repo.On("GetAll", ctx).Return(testValues(), nil)
	redisMock.ExpectSet(cacheKey, data, cacheTTL).SetVal("OK")

	values, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+1 555 0100", values["phone"])

	repo.AssertExpectations(t)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestGet_CacheDownStillServes(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	repo := new(MockRepository)
	svc := NewService(repo, rdb)
	ctx := context.Background()

	redisMock.ExpectGet(cacheKey).SetErr(assert.AnError)
	repo.On("GetAll", ctx).Return(testValues(), nil)
	redisMock.Regexp().ExpectSet(cacheKey, `.*`, cacheTTL).SetErr(assert.AnError)

	values, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, values, 2)
}

func TestUpdate_InvalidatesCache(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	repo := new(MockRepository)
	svc := NewService(repo, rdb)
	ctx := context.Background()

	update := map[string]string{"phone": "+1 555 0199"}
	repo.On("Upsert", ctx, update).Return(nil)
	redisMock.ExpectDel(cacheKey).SetVal(1)

	require.NoError(t, svc.Update(ctx, update))
	repo.AssertExpectations(t)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
