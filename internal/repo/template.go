package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mehak-2/packpal-app-be/internal/domain"
)

// TemplateRepo defines the persistence operations for saved packing list
// templates.
type TemplateRepo interface {
	// Create inserts a new template and returns the persisted record.
	Create(ctx context.Context, tpl domain.Template) (domain.Template, error)

	// ListPaged returns one page of templates ordered by created_at descending,
	// plus the total count across all pages.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Template, int64, error)

	// Delete removes a template by ID. Returns domain.ErrNotFound if it does
	// not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTemplateRepo is the Postgres implementation of TemplateRepo.
type pgTemplateRepo struct {
	db db
}

// NewTemplateRepo constructs a TemplateRepo backed by the provided db connection.
func NewTemplateRepo(db db) TemplateRepo {
	return &pgTemplateRepo{db: db}
}

// Create inserts a new template row and returns the full persisted record.
func (r *pgTemplateRepo) Create(ctx context.Context, tpl domain.Template) (domain.Template, error) {
	const q = `
		INSERT INTO templates (name, destination, country, packing_list)
		VALUES (@name, @destination, @country, @packing_list)
		RETURNING id, name, destination, country, packing_list, created_at`

	payload, err := json.Marshal(tpl.PackingList.Normalize())
	if err != nil {
		return domain.Template{}, fmt.Errorf("repo.TemplateRepo.Create: marshal: %w", err)
	}

	args := pgx.NamedArgs{
		"name":         tpl.Name,
		"destination":  tpl.Destination,
		"country":      tpl.Country,
		"packing_list": payload,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTemplate(row)
	if err != nil {
		return domain.Template{}, fmt.Errorf("repo.TemplateRepo.Create: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of templates, newest first, with the total count.
func (r *pgTemplateRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Template, int64, error) {
	const countQ = `SELECT count(*) FROM templates`

	var total int64
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TemplateRepo.ListPaged: count: %w", err)
	}

	const q = `
		SELECT id, name, destination, country, packing_list, created_at
		FROM templates
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TemplateRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var templates []domain.Template
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TemplateRepo.ListPaged: scan: %w", err)
		}
		templates = append(templates, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TemplateRepo.ListPaged: rows: %w", err)
	}

	return templates, total, nil
}

// Delete removes a template by primary key.
func (r *pgTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM templates WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TemplateRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TemplateRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanTemplate maps a single database row into a domain.Template.
func scanTemplate(s scanner) (domain.Template, error) {
	var (
		tpl     domain.Template
		id      pgtype.UUID
		packing []byte
	)

	err := s.Scan(&id, &tpl.Name, &tpl.Destination, &tpl.Country, &packing, &tpl.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Template{}, domain.ErrNotFound
		}
		return domain.Template{}, err
	}

	tpl.ID = uuid.UUID(id.Bytes)
	if packing != nil {
		if err := json.Unmarshal(packing, &tpl.PackingList); err != nil {
			return domain.Template{}, fmt.Errorf("unmarshal packing list: %w", err)
		}
	}

	return tpl, nil
}
