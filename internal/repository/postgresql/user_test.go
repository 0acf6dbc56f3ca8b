package postgresql_test

import (
	"context"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	mock_database "github.com/verdantmarket/farmstand/internal/db/mocks"
	"github.com/verdantmarket/farmstand/internal/repository"
	"github.com/verdantmarket/farmstand/internal/repository/postgresql"
)

func TestUserRepo_ValidateUser(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	expectUser := func(mockDB *mock_database.MockDB) {
		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("alice")).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				user := dest.(*repository.User)
				user.ID = "cust-1"
				user.Username = "alice"
				user.Password = string(hash)
				user.Role = repository.RoleCustomer
				user.Balance = 100
				return nil
			})
	}

	t.Run("correct password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)
		expectUser(mockDB)

		user, err := repo.ValidateUser(ctx, "alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, "cust-1", user.ID)
		assert.Equal(t, repository.RoleCustomer, user.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)
		expectUser(mockDB)

		_, err := repo.ValidateUser(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})

	t.Run("unknown username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("bob")).
			Return(repository.ErrObjectNotFound)

		_, err := repo.ValidateUser(ctx, "bob", "whatever")
		assert.Error(t, err)
	})
}

func TestUserRepo_DebitBalanceTx(t *testing.T) {
	ctx := context.Background()

	t.Run("balance covers the amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Eq("cust-1"), gomock.Eq(95)).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		assert.NoError(t, repo.DebitBalanceTx(ctx, mockTx, "cust-1", 95))
	})

	t.Run("balance too low", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Eq("cust-1"), gomock.Eq(1000)).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.DebitBalanceTx(ctx, mockTx, "cust-1", 1000)
		assert.ErrorIs(t, err, repository.ErrConditionFailed)
	})
}

func TestUserRepo_CreditBalanceTx(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewUserRepo(mockDB)

	mockTx.EXPECT().
		Exec(gomock.Any(), gomock.Any(), gomock.Eq("cust-1"), gomock.Eq(40)).
		Return(pgconn.CommandTag("UPDATE 1"), nil)

	assert.NoError(t, repo.CreditBalanceTx(ctx, mockTx, "cust-1", 40))
}
