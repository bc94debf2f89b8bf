package service

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/niko9090/glos-italy-website-sub000/internal/constants"
	"github.com/niko9090/glos-italy-website-sub000/internal/models"
	"github.com/niko9090/glos-italy-website-sub000/internal/repository"
	"github.com/niko9090/glos-italy-website-sub000/pkg/cache"
	"github.com/niko9090/glos-italy-website-sub000/pkg/logger"
)

var (
	// ErrSectionNotFound is returned when the addressed key is absent from the
	// page's current snapshot.
	ErrSectionNotFound = errors.New("section not found")
	// ErrMutationInFlight is returned when a mutation is rejected because
	// another one is still running against the same page.
	ErrMutationInFlight = errors.New("another mutation is in progress for this page")
	// ErrUnknownSectionType is returned when adding a section of a type the
	// registry does not know.
	ErrUnknownSectionType = errors.New("unknown section type")
)

// SectionEditorService mutates the ordered section array of one page. Every
// operation re-fetches a fresh snapshot before computing the change, and a
// per-page guard admits at most one mutation at a time: an overlapping
// request is rejected rather than queued, which closes the lost-update window
// between two rapid reorders.
type SectionEditorService struct {
	pageRepo  repository.PageRepository
	cache     *cache.Cache
	knownType func(sectionType string) bool

	mu       sync.Mutex
	inFlight map[uint]bool
}

func NewSectionEditorService(pageRepo repository.PageRepository, c *cache.Cache, knownType func(string) bool) *SectionEditorService {
	return &SectionEditorService{
		pageRepo:  pageRepo,
		cache:     c,
		knownType: knownType,
		inFlight:  make(map[uint]bool),
	}
}

// begin claims the mutation slot for a page. The caller must release it with
// end once the round trip completes.
func (s *SectionEditorService) begin(pageID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[pageID] {
		return ErrMutationInFlight
	}
	s.inFlight[pageID] = true
	return nil
}

func (s *SectionEditorService) end(pageID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, pageID)
}

// DeleteSection removes the section whose key matches. A key absent from the
// current snapshot is a reported error, not a silent no-op.
func (s *SectionEditorService) DeleteSection(pageID uint, key string) (*models.Page, error) {
	if err := s.begin(pageID); err != nil {
		return nil, err
	}
	defer s.end(pageID)

	page, err := s.pageRepo.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	index := indexOfSection(page.Sections, key)
	if index < 0 {
		return nil, ErrSectionNotFound
	}

	page.Sections = append(page.Sections[:index], page.Sections[index+1:]...)

	if err := s.pageRepo.Update(page); err != nil {
		return nil, err
	}

	s.invalidate()
	return page, nil
}

// MoveSectionUp swaps the section with its predecessor. Moving the first
// section is a no-op: the snapshot is returned unchanged and nothing is
// persisted.
func (s *SectionEditorService) MoveSectionUp(pageID uint, key string) (*models.Page, error) {
	return s.moveSection(pageID, key, -1)
}

// MoveSectionDown swaps the section with its successor, with the symmetric
// no-op on the last section.
func (s *SectionEditorService) MoveSectionDown(pageID uint, key string) (*models.Page, error) {
	return s.moveSection(pageID, key, +1)
}

func (s *SectionEditorService) moveSection(pageID uint, key string, direction int) (*models.Page, error) {
	if err := s.begin(pageID); err != nil {
		return nil, err
	}
	defer s.end(pageID)

	page, err := s.pageRepo.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	index := indexOfSection(page.Sections, key)
	if index < 0 {
		return nil, ErrSectionNotFound
	}

	target := index + direction
	if target < 0 || target >= len(page.Sections) {
		return page, nil
	}

	page.Sections[index], page.Sections[target] = page.Sections[target], page.Sections[index]

	if err := s.pageRepo.Update(page); err != nil {
		return nil, err
	}

	s.invalidate()
	return page, nil
}

// AddSection appends a new section of a known type with a fresh key.
func (s *SectionEditorService) AddSection(pageID uint, req models.AddSectionRequest) (*models.Page, error) {
	sectionType := strings.TrimSpace(strings.ToLower(req.Type))
	if s.knownType != nil && !s.knownType(sectionType) {
		return nil, ErrUnknownSectionType
	}

	if err := s.begin(pageID); err != nil {
		return nil, err
	}
	defer s.end(pageID)

	page, err := s.pageRepo.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	section := models.Section{
		Key:        uuid.New().String(),
		Type:       sectionType,
		Background: constants.NormaliseBackground(req.Background),
		Settings:   req.Settings,
	}

	page.Sections = append(page.Sections, section)

	if err := s.pageRepo.Update(page); err != nil {
		return nil, err
	}

	s.invalidate()
	return page, nil
}

// UpdateSection applies a partial update to the section matching key.
func (s *SectionEditorService) UpdateSection(pageID uint, key string, req models.UpdateSectionRequest) (*models.Page, error) {
	if err := s.begin(pageID); err != nil {
		return nil, err
	}
	defer s.end(pageID)

	page, err := s.pageRepo.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	index := indexOfSection(page.Sections, key)
	if index < 0 {
		return nil, ErrSectionNotFound
	}

	if req.Type != nil {
		sectionType := strings.TrimSpace(strings.ToLower(*req.Type))
		if s.knownType != nil && !s.knownType(sectionType) {
			return nil, ErrUnknownSectionType
		}
		page.Sections[index].Type = sectionType
	}
	if req.Background != nil {
		page.Sections[index].Background = constants.NormaliseBackground(*req.Background)
	}
	if req.Settings != nil {
		page.Sections[index].Settings = *req.Settings
	}

	if err := s.pageRepo.Update(page); err != nil {
		return nil, err
	}

	s.invalidate()
	return page, nil
}

// DuplicateSection inserts a copy of the section immediately after the
// original, under a fresh key.
func (s *SectionEditorService) DuplicateSection(pageID uint, key string) (*models.Page, error) {
	if err := s.begin(pageID); err != nil {
		return nil, err
	}
	defer s.end(pageID)

	page, err := s.pageRepo.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	index := indexOfSection(page.Sections, key)
	if index < 0 {
		return nil, ErrSectionNotFound
	}

	duplicate := page.Sections[index]
	duplicate.Key = uuid.New().String()
	if duplicate.Settings != nil {
		copied := make(models.JSONMap, len(duplicate.Settings))
		for k, v := range duplicate.Settings {
			copied[k] = v
		}
		duplicate.Settings = copied
	}

	insertAt := index + 1
	updated := make(models.PageSections, 0, len(page.Sections)+1)
	updated = append(updated, page.Sections[:insertAt]...)
	updated = append(updated, duplicate)
	updated = append(updated, page.Sections[insertAt:]...)
	page.Sections = updated

	if err := s.pageRepo.Update(page); err != nil {
		return nil, err
	}

	s.invalidate()
	return page, nil
}

func (s *SectionEditorService) invalidate() {
	if err := s.cache.DeletePattern(pageCacheKeyPrefix + "*"); err != nil {
		logger.Warn("Failed to invalidate page cache", map[string]interface{}{"error": err.Error()})
	}
}

func indexOfSection(list models.PageSections, key string) int {
	for i, section := range list {
		if section.Key == key {
			return i
		}
	}
	return -1
}
