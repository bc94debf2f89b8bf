package service

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
	"github.com/niko9090/glos-italy-website-sub000/pkg/cache"
)

// fakePageRepository keeps pages in memory and counts writes so tests can
// assert whether a mutation persisted anything.
type fakePageRepository struct {
	pages   map[uint]*models.Page
	updates int
	blockCh chan struct{}
}

func newFakePageRepository(pages ...*models.Page) *fakePageRepository {
	repo := &fakePageRepository{pages: make(map[uint]*models.Page)}
	for _, page := range pages {
		repo.pages[page.ID] = page
	}
	return repo
}

func (r *fakePageRepository) Create(page *models.Page) error {
	r.pages[page.ID] = page
	return nil
}

func (r *fakePageRepository) Update(page *models.Page) error {
	r.updates++
	r.pages[page.ID] = page
	return nil
}

func (r *fakePageRepository) Delete(id uint) error {
	delete(r.pages, id)
	return nil
}

func (r *fakePageRepository) GetByID(id uint) (*models.Page, error) {
	if r.blockCh != nil {
		<-r.blockCh
	}
	page, ok := r.pages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	snapshot := *page
	snapshot.Sections = append(models.PageSections(nil), page.Sections...)
	return &snapshot, nil
}

func (r *fakePageRepository) GetBySlug(slug string) (*models.Page, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePageRepository) GetByPath(path string) (*models.Page, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePageRepository) GetByPathAny(path string) (*models.Page, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePageRepository) GetAll() ([]models.Page, error)      { return nil, nil }
func (r *fakePageRepository) GetAllAdmin() ([]models.Page, error) { return nil, nil }

func (r *fakePageRepository) ExistsBySlug(slug string) (bool, error) { return false, nil }

func testPage() *models.Page {
	return &models.Page{
		ID: 1,
		Sections: models.PageSections{
			{Key: "alpha", Type: "hero"},
			{Key: "beta", Type: "features"},
			{Key: "gamma", Type: "cta"},
		},
	}
}

func newEditorService(t *testing.T, repo *fakePageRepository) *SectionEditorService {
	t.Helper()

	c, err := cache.NewCache("", false)
	if err != nil {
		t.Fatalf("failed to build disabled cache: %v", err)
	}

	known := map[string]bool{"hero": true, "features": true, "cta": true}
	return NewSectionEditorService(repo, c, func(sectionType string) bool {
		return known[sectionType]
	})
}

func sectionKeys(list models.PageSections) []string {
	keys := make([]string, 0, len(list))
	for _, section := range list {
		keys = append(keys, section.Key)
	}
	return keys
}

func assertKeys(t *testing.T, got models.PageSections, want ...string) {
	t.Helper()
	keys := sectionKeys(got)
	if len(keys) != len(want) {
		t.Fatalf("expected keys %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected keys %v, got %v", want, keys)
		}
	}
}

func TestMoveSectionUp_SwapsWithPredecessor(t *testing.T) {
	repo := newFakePageRepository(testPage())
	svc := newEditorService(t, repo)

	page, err := svc.MoveSectionUp(1, "beta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertKeys(t, page.Sections, "beta", "alpha", "gamma")
	if repo.updates != 1 {
		t.Fatalf("expected one persisted update, got %d", repo.updates)
	}
}

func TestMoveSectionUp_FirstSectionIsNoOp(t *testing.T) {
	repo := newFakePageRepository(testPage())
	svc := newEditorService(t, repo)

	page, err := svc.MoveSectionUp(1, "alpha")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertKeys(t, page.Sections, "alpha", "beta", "gamma")
	if repo.updates != 0 {
		t.Fatalf("boundary move must not persist, got %d updates", repo.updates)
	}
}

func TestMoveSectionDown_LastSectionIsNoOp(t *testing.T) {
	repo := newFakePageRepository(testPage())
	svc := newEditorService(t, repo)

	page, err := svc.MoveSectionDown(1, "gamma")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertKeys(t, page.Sections, "alpha", "beta", "gamma")
	if repo.updates != 0 {
		t.Fatalf("boundary move must not persist, got %d updates", repo.updates)
	}
}

func TestMoveSection_UpThenDownRestoresOrder(t *testing.T) {
	repo := newFakePageRepository(testPage())
	svc := newEditorService(t, repo)

	if _, err := svc.MoveSectionUp(1, "beta"); err != nil {
		t.Fatalf("move up: %v", err)
	}
	page, err := svc.MoveSectionDown(1, "beta")
	if err != nil {
		t.Fatalf("move down: %v", err)
	}

	assertKeys(t, page.Sections, "alpha", "beta", "gamma")
}

func TestDeleteSection_RemovesOnlyMatch(t *testing.T) {
	repo := newFakePageRepository(testPage())
	svc := newEditorService(t, repo)

	page, err := svc.DeleteSection(1, "beta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertKeys(t, page.Sections, "alpha", "gamma")
}

func TestDeleteSection_UnknownKeyIsReported(t *testing.T) {
	repo := newFakePageRepository(testPage())
	svc := newEditorService(t, repo)

	_, err := svc.DeleteSection(1, "missing")
	if !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}
	if repo.updates != 0 {
		t.Fatalf("failed delete must not persist, got %d updates", repo.updates)
	}
}

func TestAddSection_RejectsUnknownType(t *testing.T) {
	repo := newFakePageRepository(testPage())
	svc := newEditorService(t, repo)

	_, err := svc.AddSection(1, models.AddSectionRequest{Type: "bogus"})
	if !errors.Is(err, ErrUnknownSectionType) {
		t.Fatalf("expected ErrUnknownSectionType, got %v", err)
	}
}

func TestAddSection_AppendsWithFreshKey(t *testing.T) {
	repo := newFakePageRepository(testPage())
	svc := newEditorService(t, repo)

	page, err := svc.AddSection(1, models.AddSectionRequest{Type: " Features ", Background: "GRAY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(page.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(page.Sections))
	}
	added := page.Sections[3]
	if added.Type != "features" {
		t.Fatalf("expected normalised type, got %q", added.Type)
	}
	if added.Background != "gray" {
		t.Fatalf("expected normalised background, got %q", added.Background)
	}
	if added.Key == "" || added.Key == "alpha" || added.Key == "beta" || added.Key == "gamma" {
		t.Fatalf("expected a fresh key, got %q", added.Key)
	}
}

func TestUpdateSection_PartialUpdate(t *testing.T) {
	repo := newFakePageRepository(testPage())
	svc := newEditorService(t, repo)

	background := "primary"
	page, err := svc.UpdateSection(1, "beta", models.UpdateSectionRequest{Background: &background})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.Sections[1].Background != "primary" {
		t.Fatalf("expected updated background, got %q", page.Sections[1].Background)
	}
	if page.Sections[1].Type != "features" {
		t.Fatalf("type must be untouched by a background-only update, got %q", page.Sections[1].Type)
	}
}

func TestDuplicateSection_InsertsCopyAfterOriginal(t *testing.T) {
	original := testPage()
	original.Sections[1].Settings = models.JSONMap{"title": "Features"}
	repo := newFakePageRepository(original)
	svc := newEditorService(t, repo)

	page, err := svc.DuplicateSection(1, "beta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(page.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(page.Sections))
	}
	copy := page.Sections[2]
	if copy.Type != "features" {
		t.Fatalf("expected duplicate to keep its type, got %q", copy.Type)
	}
	if copy.Key == "beta" || copy.Key == "" {
		t.Fatalf("expected duplicate under a fresh key, got %q", copy.Key)
	}

	// The settings map must be an independent copy.
	copy.Settings["title"] = "changed"
	if page.Sections[1].Settings["title"] != "Features" {
		t.Fatalf("duplicate settings must not alias the original")
	}
}

func TestMutations_RejectOverlappingRequests(t *testing.T) {
	repo := newFakePageRepository(testPage())
	repo.blockCh = make(chan struct{})
	svc := newEditorService(t, repo)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.MoveSectionUp(1, "beta")
		firstDone <- err
	}()

	// Wait for the first mutation to claim the page slot.
	for {
		svc.mu.Lock()
		claimed := svc.inFlight[1]
		svc.mu.Unlock()
		if claimed {
			break
		}
	}

	_, err := svc.MoveSectionDown(1, "beta")
	if !errors.Is(err, ErrMutationInFlight) {
		t.Fatalf("expected ErrMutationInFlight for overlapping request, got %v", err)
	}

	close(repo.blockCh)
	if err := <-firstDone; err != nil {
		t.Fatalf("first mutation failed: %v", err)
	}

	// A different page is not affected by the guard of page 1.
	repo.pages[2] = &models.Page{ID: 2, Sections: models.PageSections{{Key: "x", Type: "hero"}, {Key: "y", Type: "cta"}}}
	if _, err := svc.MoveSectionDown(2, "x"); err != nil {
		t.Fatalf("guard must be per page, got %v", err)
	}
}
