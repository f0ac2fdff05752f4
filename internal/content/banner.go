package content

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrBannerNotFound = errors.New("banner not found")

// Banner is one hero banner on the public landing page. Position drives the
// carousel order; inactive banners stay stored but are not served publicly.
type Banner struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	ImageURL  string    `json:"imageUrl"`
	Position  int       `json:"position"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *Repo) AddBanner(ctx context.Context, banner *Banner) (*Banner, error) {
	if banner.Title == "" || banner.ImageURL == "" {
		return nil, errors.New("banner title or image url empty")
	}

	banner.CreatedAt = time.Now()
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO banners (title, subtitle, image_url, position, active, created_at)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		banner.Title, banner.Subtitle, banner.ImageURL, banner.Position, banner.Active, banner.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	banner.ID = id
	return banner, nil
}

func (r *Repo) UpdateBanner(ctx context.Context, banner *Banner) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE banners SET title = $1, subtitle = $2, image_url = $3, position = $4, active = $5 WHERE id = $6;`,
		banner.Title, banner.Subtitle, banner.ImageURL, banner.Position, banner.Active, banner.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBannerNotFound
	}
	return nil
}

func (r *Repo) DeleteBanner(ctx context.Context, id int) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM banners WHERE id = $1;`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBannerNotFound
	}
	return nil
}

func (r *Repo) Banners(ctx context.Context, activeOnly bool) ([]Banner, error) {
	query := `SELECT id, title, subtitle, image_url, position, active, created_at FROM banners ORDER BY position, id;`
	if activeOnly {
		query = `SELECT id, title, subtitle, image_url, position, active, created_at FROM banners WHERE active ORDER BY position, id;`
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banners []Banner
	for rows.Next() {
		var b Banner
		if err := rows.Scan(&b.ID, &b.Title, &b.Subtitle, &b.ImageURL, &b.Position, &b.Active, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		banners = append(banners, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return banners, nil
}
