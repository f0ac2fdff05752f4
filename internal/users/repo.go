package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/costaverde/backend/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already taken")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, user *User) (*User, error) {
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO users (email, password_hash, display_name, role, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		user.Email, user.PasswordHash, user.DisplayName, user.Role, user.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailTaken
		} else if err != nil {
			return nil, err
		}
		return nil, errors.New("unexpected error, no rows returned")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	addedUser := *user
	addedUser.ID = id
	return &addedUser, nil
}

func (r *Repo) FindByEmail(ctx context.Context, email string) (*User, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, email, password_hash, display_name, role, created_at FROM users WHERE email = $1;`,
		email,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrUserNotFound
	}

	var id int
	var userEmail, passwordHash, displayName, role string
	var createdAt time.Time
	if err := rows.Scan(&id, &userEmail, &passwordHash, &displayName, &role, &createdAt); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	return &User{
		ID:           id,
		Email:        userEmail,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
		Role:         role,
		CreatedAt:    createdAt,
	}, nil
}
