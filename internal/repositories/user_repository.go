package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fibertrack/internal/entities"
	apperrors "fibertrack/pkg/errors"
)

type UserRepositoryInterface interface {
	FindByID(ctx context.Context, id int64) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	Create(ctx context.Context, user entities.User) (*entities.User, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

func (r *UserRepository) findOne(ctx context.Context, pred sq.Eq) (*entities.User, error) {
	query, args, err := sq.Select("id", "username", "password", "name", "role", "email").
		From("users").
		Where(pred).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var u entities.User
	err = queryEngine(ctx, r.storage).QueryRow(ctx, query, args...).
		Scan(&u.ID, &u.Username, &u.Password, &u.Name, &u.Role, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"username": username})
}

func (r *UserRepository) Create(ctx context.Context, user entities.User) (*entities.User, error) {
	query, args, err := sq.Insert("users").
		Columns("username", "password", "name", "role", "email").
		Values(user.Username, user.Password, user.Name, user.Role, user.Email).
		Suffix("RETURNING id, username, password, name, role, email").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var u entities.User
	err = queryEngine(ctx, r.storage).QueryRow(ctx, query, args...).
		Scan(&u.ID, &u.Username, &u.Password, &u.Name, &u.Role, &u.Email)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return &u, nil
}
