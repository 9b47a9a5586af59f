package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mehak-2/packpal-app-be/internal/domain"
	"github.com/mehak-2/packpal-app-be/internal/repo"
)

// TemplateService implements business logic for saved packing list templates.
type TemplateService struct {
	templates repo.TemplateRepo
}

// NewTemplateService constructs a TemplateService backed by the provided repo.
func NewTemplateService(templates repo.TemplateRepo) *TemplateService {
	return &TemplateService{templates: templates}
}

// Create validates and persists a new template. The packing list is
// normalized so templates carry the same invariants as trip lists.
// Returns domain.ErrValidation if input violates business rules.
func (s *TemplateService) Create(ctx context.Context, tpl domain.Template) (domain.Template, error) {
	if strings.TrimSpace(tpl.Name) == "" {
		return domain.Template{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	tpl.PackingList = tpl.PackingList.Normalize()

	result, err := s.templates.Create(ctx, tpl)
	if err != nil {
		return domain.Template{}, fmt.Errorf("service.TemplateService.Create: %w", err)
	}
	return result, nil
}

// List returns one page of templates plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TemplateService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Template, int64, error) {
	templates, total, err := s.templates.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TemplateService.List: %w", err)
	}
	if templates == nil {
		templates = []domain.Template{}
	}
	return templates, total, nil
}

// Delete removes a template by ID.
// Returns domain.ErrNotFound if the template does not exist.
func (s *TemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.templates.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TemplateService.Delete: %w", err)
	}
	return nil
}
