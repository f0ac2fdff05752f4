package content

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrVideoNotFound = errors.New("video not found")

// Video is an embedded promotional video (youtube/vimeo URL).
type Video struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Position  int       `json:"position"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *Repo) AddVideo(ctx context.Context, video *Video) (*Video, error) {
	if video.URL == "" {
		return nil, errors.New("video url empty")
	}

	video.CreatedAt = time.Now()
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO videos (title, url, position, active, created_at)
			VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		video.Title, video.URL, video.Position, video.Active, video.CreatedAt,
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

	video.ID = id
	return video, nil
}

func (r *Repo) UpdateVideo(ctx context.Context, video *Video) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE videos SET title = $1, url = $2, position = $3, active = $4 WHERE id = $5;`,
		video.Title, video.URL, video.Position, video.Active, video.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrVideoNotFound
	}
	return nil
}

func (r *Repo) DeleteVideo(ctx context.Context, id int) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM videos WHERE id = $1;`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrVideoNotFound
	}
	return nil
}

func (r *Repo) Videos(ctx context.Context, activeOnly bool) ([]Video, error) {
	query := `SELECT id, title, url, position, active, created_at FROM videos ORDER BY position, id;`
	if activeOnly {
		query = `SELECT id, title, url, position, active, created_at FROM videos WHERE active ORDER BY position, id;`
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []Video
	for rows.Next() {
		var v Video
		if err := rows.Scan(&v.ID, &v.Title, &v.URL, &v.Position, &v.Active, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		videos = append(videos, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return videos, nil
}
