package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"promptcraft/backend/internal/model"
	"promptcraft/backend/internal/snowflake"
)

type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
	// FindByUsername returns nil, nil when no user has that name.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func scanUser(row rowScanner) (model.User, error) {
	var u model.User
	var createdAt string
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &createdAt); err != nil {
		return model.User{}, err
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return model.User{}, fmt.Errorf("parse user created_at: %w", err)
	}
	u.CreatedAt = t
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, username, passwordHash string) (model.User, error) {
	user := model.User{
		ID:           snowflake.NextID(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	_, err := conn(ctx, r.db).ExecContext(
		ctx,
		`INSERT INTO users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		user.ID,
		user.Username,
		user.PasswordHash,
		formatTime(user.CreatedAt),
	)
	if err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT id, username, password_hash, created_at FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT id, username, password_hash, created_at FROM users WHERE username = ?`, username)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}
