package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrSettingNotFound = errors.New("setting not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, key string) (*Setting, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT key, value, updated_at FROM settings WHERE key = $1;`,
		key,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrSettingNotFound
	}

	var setting Setting
	if err := rows.Scan(&setting.Key, &setting.Value, &setting.UpdatedAt); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	return &setting, nil
}

// GetString returns the value for key, or an empty string when the key does
// not exist. Storage errors are returned as-is.
func (r *Repo) GetString(ctx context.Context, key string) (string, error) {
	setting, err := r.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return "", nil
		}
		return "", err
	}
	return setting.Value, nil
}

func (r *Repo) Upsert(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("setting key empty")
	}

	_, err := r.db.Exec(
		ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, $3)
			ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = $3;`,
		key, value, time.Now(),
	)
	return err
}

func (r *Repo) Delete(ctx context.Context, key string) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM settings WHERE key = $1;`,
		key,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSettingNotFound
	}
	return nil
}

func (r *Repo) All(ctx context.Context) ([]Setting, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT key, value, updated_at FROM settings ORDER BY key;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []Setting
	for rows.Next() {
		var setting Setting
		if err := rows.Scan(&setting.Key, &setting.Value, &setting.UpdatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		all = append(all, setting)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return all, nil
}
