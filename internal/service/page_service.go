package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
	"github.com/niko9090/glos-italy-website-sub000/internal/repository"
	"github.com/niko9090/glos-italy-website-sub000/pkg/cache"
	"github.com/niko9090/glos-italy-website-sub000/pkg/logger"
)

const (
	pageCacheTTL       = 5 * time.Minute
	pageCacheKeyPrefix = "page:path:"
)

// PageService reads page documents, caching published lookups.
type PageService struct {
	pageRepo repository.PageRepository
	cache    *cache.Cache
}

func NewPageService(pageRepo repository.PageRepository, c *cache.Cache) *PageService {
	return &PageService{
		pageRepo: pageRepo,
		cache:    c,
	}
}

// GetByPath returns the page routed at path. With draft enabled unpublished
// pages are visible and the cache is bypassed so editors always see a fresh
// snapshot.
func (s *PageService) GetByPath(path string, draft bool) (*models.Page, error) {
	path = normalisePagePath(path)

	if draft {
		return s.pageRepo.GetByPathAny(path)
	}

	cacheKey := pageCacheKeyPrefix + path
	if s.cache.Enabled() {
		var cached models.Page
		if err := s.cache.Get(cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	page, err := s.pageRepo.GetByPath(path)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, page, pageCacheTTL); err != nil {
		logger.Warn("Failed to cache page", map[string]interface{}{"path": path, "error": err.Error()})
	}

	return page, nil
}

func (s *PageService) GetByID(id uint) (*models.Page, error) {
	return s.pageRepo.GetByID(id)
}

func (s *PageService) GetAll() ([]models.Page, error) {
	return s.pageRepo.GetAll()
}

func (s *PageService) GetAllAdmin() ([]models.Page, error) {
	return s.pageRepo.GetAllAdmin()
}

// Create persists a new page, assigning keys to any sections that lack one.
func (s *PageService) Create(req models.CreatePageRequest) (*models.Page, error) {
	slug := strings.TrimSpace(strings.ToLower(req.Slug))
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}

	path := normalisePagePath(req.Path)
	if path == "/" && slug != "home" {
		path = "/" + slug
	}

	sections := make(models.PageSections, 0, len(req.Sections))
	for _, section := range req.Sections {
		if section.Key == "" {
			section.Key = uuid.New().String()
		}
		sections = append(sections, section)
	}

	published := false
	if req.Published != nil {
		published = *req.Published
	}

	page := &models.Page{
		Title:       strings.TrimSpace(req.Title),
		Slug:        slug,
		Path:        path,
		Description: strings.TrimSpace(req.Description),
		Published:   published,
		Sections:    sections,
	}

	if err := s.pageRepo.Create(page); err != nil {
		return nil, err
	}

	s.invalidate()
	return page, nil
}

// ExistsBySlug reports whether a page with the slug already exists.
func (s *PageService) ExistsBySlug(slug string) (bool, error) {
	return s.pageRepo.ExistsBySlug(strings.TrimSpace(strings.ToLower(slug)))
}

func (s *PageService) invalidate() {
	if err := s.cache.DeletePattern(pageCacheKeyPrefix + "*"); err != nil {
		logger.Warn("Failed to invalidate page cache", map[string]interface{}{"error": err.Error()})
	}
}

func normalisePagePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
