package content

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrGalleryImageNotFound = errors.New("gallery image not found")

// GalleryImage is one photo in the public gallery. The file itself lives
// elsewhere (CDN / uploads dir); here only the URL is tracked.
type GalleryImage struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *Repo) AddGalleryImage(ctx context.Context, image *GalleryImage) (*GalleryImage, error) {
	if image.ImageURL == "" {
		return nil, errors.New("gallery image url empty")
	}

	image.CreatedAt = time.Now()
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO gallery_images (title, image_url, position, created_at)
			VALUES ($1, $2, $3, $4) RETURNING id;`,
		image.Title, image.ImageURL, image.Position, image.CreatedAt,
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

	image.ID = id
	return image, nil
}

func (r *Repo) UpdateGalleryImage(ctx context.Context, image *GalleryImage) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE gallery_images SET title = $1, image_url = $2, position = $3 WHERE id = $4;`,
		image.Title, image.ImageURL, image.Position, image.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGalleryImageNotFound
	}
	return nil
}

func (r *Repo) DeleteGalleryImage(ctx context.Context, id int) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM gallery_images WHERE id = $1;`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGalleryImageNotFound
	}
	return nil
}

func (r *Repo) GalleryImages(ctx context.Context) ([]GalleryImage, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, image_url, position, created_at FROM gallery_images ORDER BY position, id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []GalleryImage
	for rows.Next() {
		var img GalleryImage
		if err := rows.Scan(&img.ID, &img.Title, &img.ImageURL, &img.Position, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return images, nil
}
