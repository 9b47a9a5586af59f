package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehak-2/packpal-app-be/internal/domain"
	"github.com/mehak-2/packpal-app-be/internal/handler"
)

type mockTemplateServicer struct {
	create func(ctx context.Context, tpl domain.Template) (domain.Template, error)
	list   func(ctx context.Context, p domain.PaginationParams) ([]domain.Template, int64, error)
	delete func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTemplateServicer) Create(ctx context.Context, tpl domain.Template) (domain.Template, error) {
	return m.create(ctx, tpl)
}
func (m *mockTemplateServicer) List(ctx context.Context, p domain.PaginationParams) ([]domain.Template, int64, error) {
	return m.list(ctx, p)
}
func (m *mockTemplateServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.TemplateServicer = (*mockTemplateServicer)(nil)

func newTemplateHandler(svc handler.TemplateServicer) http.Handler {
	return handler.NewServer(nil, nil, svc).Routes()
}

func TestCreateTemplate_201(t *testing.T) {
	svc := &mockTemplateServicer{
		create: func(_ context.Context, tpl domain.Template) (domain.Template, error) {
			tpl.ID = uuid.New()
			return tpl, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"name":        "Beach week",
		"destination": "Sydney",
		"country":     "Australia",
		"packing_list": map[string]any{
			"clothing": []map[string]any{{"name": "Swimsuit", "quantity": 1}},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/templates", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTemplateHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Beach week")
}

func TestCreateTemplate_422(t *testing.T) {
	svc := &mockTemplateServicer{
		create: func(_ context.Context, _ domain.Template) (domain.Template, error) {
			return domain.Template{}, domain.ErrValidation
		},
	}

	body := jsonBody(t, map[string]any{"name": ""})

	req := httptest.NewRequest(http.MethodPost, "/templates", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTemplateHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListTemplates_200(t *testing.T) {
	svc := &mockTemplateServicer{
		list: func(_ context.Context, p domain.PaginationParams) ([]domain.Template, int64, error) {
			assert.Equal(t, 2, p.Page)
			assert.Equal(t, 5, p.Limit)
			return []domain.Template{{Name: "Beach week"}}, 6, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/templates?page=2&limit=5", nil)
	rec := httptest.NewRecorder()

	newTemplateHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data       []domain.Template `json:"data"`
		Pagination struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
			Total int `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 6, resp.Pagination.Total)
}

func TestDeleteTemplate_204(t *testing.T) {
	svc := &mockTemplateServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return nil },
	}

	req := httptest.NewRequest(http.MethodDelete, "/templates/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newTemplateHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteTemplate_404(t *testing.T) {
	svc := &mockTemplateServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return domain.ErrNotFound },
	}

	req := httptest.NewRequest(http.MethodDelete, "/templates/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newTemplateHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
