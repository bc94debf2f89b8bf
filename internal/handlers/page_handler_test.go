package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/niko9090/glos-italy-website-sub000/internal/config"
	"github.com/niko9090/glos-italy-website-sub000/internal/models"
	"github.com/niko9090/glos-italy-website-sub000/internal/sections"
	"github.com/niko9090/glos-italy-website-sub000/internal/service"
	"github.com/niko9090/glos-italy-website-sub000/pkg/cache"
	"github.com/niko9090/glos-italy-website-sub000/pkg/validator"
)

type stubPageRepository struct {
	pages map[string]*models.Page
}

func (r *stubPageRepository) Create(page *models.Page) error { return nil }
func (r *stubPageRepository) Update(page *models.Page) error { return nil }
func (r *stubPageRepository) Delete(id uint) error           { return nil }

func (r *stubPageRepository) GetByID(id uint) (*models.Page, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPageRepository) GetBySlug(slug string) (*models.Page, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPageRepository) GetByPath(path string) (*models.Page, error) {
	page, ok := r.pages[path]
	if !ok || !page.Published {
		return nil, gorm.ErrRecordNotFound
	}
	return page, nil
}

func (r *stubPageRepository) GetByPathAny(path string) (*models.Page, error) {
	page, ok := r.pages[path]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return page, nil
}

func (r *stubPageRepository) GetAll() ([]models.Page, error)         { return nil, nil }
func (r *stubPageRepository) GetAllAdmin() ([]models.Page, error)    { return nil, nil }
func (r *stubPageRepository) ExistsBySlug(slug string) (bool, error) { return false, nil }

func pageRouter(t *testing.T, cfg *config.Config, repo *stubPageRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.Init()

	c, err := cache.NewCache("", false)
	if err != nil {
		t.Fatalf("failed to build disabled cache: %v", err)
	}

	handler, err := NewPageHandler(cfg, service.NewPageService(repo, c), sections.DefaultRegistry())
	if err != nil {
		t.Fatalf("failed to build page handler: %v", err)
	}

	router := gin.New()
	router.NoRoute(handler.RenderPage)
	return router
}

func stubSite() *stubPageRepository {
	return &stubPageRepository{pages: map[string]*models.Page{
		"/": {
			ID:        1,
			Title:     "Home",
			Published: true,
			Sections: models.PageSections{
				{Key: "hero-1", Type: "hero", Background: "dark", Settings: models.JSONMap{"title": "Machines"}},
				{Key: "faq-1", Type: "faq", Settings: models.JSONMap{
					"items": []interface{}{
						map[string]interface{}{"question": "Q", "answer": "A"},
					},
				}},
			},
		},
		"/draft": {
			ID:        2,
			Title:     "Draft",
			Published: false,
			Sections:  models.PageSections{{Key: "d-1", Type: "hero", Settings: models.JSONMap{"title": "Soon"}}},
		},
	}}
}

func TestRenderPage_PublishedPage(t *testing.T) {
	cfg := &config.Config{SiteName: "GLOS Italy"}
	router := pageRouter(t, cfg, stubSite())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, "Machines") {
		t.Fatalf("expected hero content in body: %s", body)
	}
	if !strings.Contains(body, "page__section--bg-dark") {
		t.Fatalf("expected background class in wrapper: %s", body)
	}
	// dark -> gray is a strong transition, flipped because the source is strong.
	if !strings.Contains(body, "page__divider--curve") || !strings.Contains(body, "page__divider--flipped") {
		t.Fatalf("expected flipped curve divider between hero and faq: %s", body)
	}
	if strings.Contains(body, "data-section-key") {
		t.Fatalf("editing annotations must not appear without a token: %s", body)
	}
}

func TestRenderPage_UnknownPathIs404(t *testing.T) {
	cfg := &config.Config{SiteName: "GLOS Italy"}
	router := pageRouter(t, cfg, stubSite())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
}

func TestRenderPage_DraftVisibleOnlyToEditors(t *testing.T) {
	cfg := &config.Config{SiteName: "GLOS Italy", EditorToken: "secret"}
	router := pageRouter(t, cfg, stubSite())

	req := httptest.NewRequest(http.MethodGet, "/draft", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for draft without token, got %d", recorder.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/draft", nil)
	req.Header.Set("X-Editor-Token", "secret")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 for draft with token, got %d", recorder.Code)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, `data-section-key="d-1"`) {
		t.Fatalf("expected editing annotations for editor: %s", body)
	}
	if !strings.Contains(body, `data-document-id="2"`) {
		t.Fatalf("expected document id annotation: %s", body)
	}
	if !strings.Contains(body, "/static/js/section-manager.js") {
		t.Fatalf("expected section manager script for editor: %s", body)
	}
}
