package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrLeadNotFound = errors.New("lead not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) AddLead(ctx context.Context, lead *Lead) (*Lead, error) {
	if lead.Email == "" || lead.Message == "" {
		return nil, errors.New("lead email or message empty")
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO contact_lead (name, email, phone, message, user_ip, created_at)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		lead.Name, lead.Email, lead.Phone, lead.Message, lead.UserIP, lead.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&lead.ID); err != nil {
			return nil, err
		}
		return lead, nil
	}

	return nil, errors.New("unexpected error, failed to insert lead")
}

func (r *Repo) CountAll(ctx context.Context) (int, error) {
	rows, err := r.db.Query(ctx, `SELECT COUNT(*) FROM contact_lead;`)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	var count int
	for rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return -1, err
		}
	}

	return count, nil
}

func (r *Repo) LeadsPage(ctx context.Context, page, size int) ([]Lead, error) {
	limit := size
	offset := (page - 1) * size

	total, err := r.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	if total <= offset {
		// over the last page, show the last one
		offset = total - size
		if offset < 0 {
			offset = 0
		}
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, email, phone, message, user_ip, created_at
			FROM contact_lead
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2;`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("get leads page: %w", err)
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		var l Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Message, &l.UserIP, &l.CreatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return leads, nil
}

func (r *Repo) DeleteLead(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contact_lead WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLeadNotFound
	}
	return nil
}
