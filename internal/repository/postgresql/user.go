package postgresql

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
	"golang.org/x/crypto/bcrypt"

	"github.com/verdantmarket/farmstand/internal/db"
	"github.com/verdantmarket/farmstand/internal/repository"
	"github.com/verdantmarket/farmstand/internal/storage"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) storage.UserRepository {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user *repository.User, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
        INSERT INTO users (id, username, password, role, balance)
        VALUES ($1, $2, $3, $4, $5)
    `, user.ID, user.Username, string(hashedPassword), user.Role, user.Balance)
	return err
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE id = $1", id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE username = $1", username)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ValidateUser checks basic-auth credentials against the stored bcrypt hash.
func (r *UserRepo) ValidateUser(ctx context.Context, username, password string) (*repository.User, error) {
	user, err := r.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, repository.ErrObjectNotFound
	}
	return user, nil
}

// DebitBalanceTx subtracts amount conditionally, so two settlements racing
// on the same account cannot overdraw it.
func (r *UserRepo) DebitBalanceTx(ctx context.Context, tx db.Tx, id string, amount int) error {
	cmdTag, err := tx.Exec(ctx, `
        UPDATE users SET balance = balance - $2 WHERE id = $1 AND balance >= $2
    `, id, amount)
	if err != nil {
		return fmt.Errorf("failed to debit user %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrConditionFailed
	}
	return nil
}

func (r *UserRepo) CreditBalanceTx(ctx context.Context, tx db.Tx, id string, amount int) error {
	cmdTag, err := tx.Exec(ctx,
		"UPDATE users SET balance = balance + $2 WHERE id = $1", id, amount)
	if err != nil {
		return fmt.Errorf("failed to credit user %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
