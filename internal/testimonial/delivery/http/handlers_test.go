package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"central-gpt/internal/testimonial"
	"central-gpt/pkg/log"
)

type mockUseCase struct {
	items     []testimonial.Testimonial
	createErr error
	lastLimit int
}

func (m *mockUseCase) Create(_ context.Context, in testimonial.CreateInput) (testimonial.Testimonial, error) {
	if m.createErr != nil {
		return testimonial.Testimonial{}, m.createErr
	}
	return testimonial.Testimonial{ID: "t1", Text: in.Text, CreatedAt: time.Now()}, nil
}

func (m *mockUseCase) List(_ context.Context, in testimonial.ListInput) ([]testimonial.Testimonial, error) {
	m.lastLimit = in.Limit
	return m.items, nil
}

func (m *mockUseCase) Delete(_ context.Context, id string) error {
	if id != "t1" {
		return testimonial.ErrNotFound
	}
	return nil
}

func newTestRouter(uc testimonial.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc)
	r := gin.New()
	r.GET("/testimonials", h.List)
	r.POST("/admin/testimonials", h.Create)
	r.DELETE("/admin/testimonials/:id", h.Delete)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestList(t *testing.T) {
	uc := &mockUseCase{items: []testimonial.Testimonial{{ID: "t1", Text: "love it"}}}
	r := newTestRouter(uc)

	w := serve(r, http.MethodGet, "/testimonials?limit=5", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"text":"love it"`) || uc.lastLimit != 5 {
		t.Errorf("unexpected body %s limit %d", w.Body.String(), uc.lastLimit)
	}

	if w := serve(r, http.MethodGet, "/testimonials?limit=1000", ""); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for oversized limit, got %d", w.Code)
	}
}

func TestCreate(t *testing.T) {
	if w := serve(newTestRouter(&mockUseCase{}), http.MethodPost, "/admin/testimonials", `{"text":"nice"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := serve(newTestRouter(&mockUseCase{}), http.MethodPost, "/admin/testimonials", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing text, got %d", w.Code)
	}
	w := serve(newTestRouter(&mockUseCase{createErr: testimonial.ErrImageTooBig}), http.MethodPost, "/admin/testimonials", `{"text":"x","image":"data:"}`)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}

func TestDelete(t *testing.T) {
	r := newTestRouter(&mockUseCase{})
	if w := serve(r, http.MethodDelete, "/admin/testimonials/t1", ""); w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if w := serve(r, http.MethodDelete, "/admin/testimonials/nope", ""); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
