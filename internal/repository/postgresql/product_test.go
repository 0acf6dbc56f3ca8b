package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/verdantmarket/farmstand/internal/db/mocks"
	"github.com/verdantmarket/farmstand/internal/repository"
	"github.com/verdantmarket/farmstand/internal/repository/postgresql"
)

func TestProductRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("product found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewProductRepo(mockDB)

		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("prod-1")).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				product := dest.(*repository.Product)
				product.ID = "prod-1"
				product.Name = "Carrots"
				product.Available = 10
				return nil
			})

		product, err := repo.GetByID(ctx, "prod-1")
		require.NoError(t, err)
		assert.Equal(t, "Carrots", product.Name)
		assert.Equal(t, 10, product.Available)
	})

	t.Run("product missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewProductRepo(mockDB)

		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("ghost")).
			Return(pgx.ErrNoRows)

		_, err := repo.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestProductRepo_ReserveTx(t *testing.T) {
	ctx := context.Background()

	t.Run("reservation succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewProductRepo(mockDB)

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Eq("prod-1"), gomock.Eq(4), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		assert.NoError(t, repo.ReserveTx(ctx, mockTx, "prod-1", 4))
	})

	t.Run("available below requested quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewProductRepo(mockDB)

		// The conditional update matches no row: the guard and the
		// decrement are one statement, so the counter cannot go negative.
		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Eq("prod-1"), gomock.Eq(50), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.ReserveTx(ctx, mockTx, "prod-1", 50)
		assert.ErrorIs(t, err, repository.ErrConditionFailed)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewProductRepo(mockDB)

		expectedErr := errors.New("connection refused")
		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.ReserveTx(ctx, mockTx, "prod-1", 1)
		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestProductRepo_SellTx(t *testing.T) {
	ctx := context.Background()

	t.Run("reserved converts to sold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewProductRepo(mockDB)

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Eq("prod-1"), gomock.Eq(2), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		assert.NoError(t, repo.SellTx(ctx, mockTx, "prod-1", 2))
	})

	t.Run("selling more than reserved fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewProductRepo(mockDB)

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Eq("prod-1"), gomock.Eq(99), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.SellTx(ctx, mockTx, "prod-1", 99)
		assert.ErrorIs(t, err, repository.ErrConditionFailed)
	})
}

func TestProductRepo_ResetAll(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewProductRepo(mockDB)

	// Rollover may fire twice; both calls issue the same unconditional
	// zeroing update.
	mockDB.EXPECT().
		Exec(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pgconn.CommandTag("UPDATE 42"), nil).
		Times(2)

	assert.NoError(t, repo.ResetAll(ctx))
	assert.NoError(t, repo.ResetAll(ctx))
}
