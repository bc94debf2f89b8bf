package sections

import (
	"strings"
	"testing"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

type noopContext struct{}

func (noopContext) SanitizeHTML(input string) string { return input }

func testDescriptor(sectionType string, renderer Renderer) *SectionDescriptor {
	return &SectionDescriptor{
		Renderer: renderer,
		Metadata: SectionMetadata{Type: sectionType, Name: sectionType, Category: "test"},
	}
}

func TestRegistry_RenderUnknownTypeProducesNoOutput(t *testing.T) {
	reg := NewRegistry()

	html, scripts := reg.Render(noopContext{}, "page", models.Section{Key: "a", Type: "does-not-exist"})
	if html != "" {
		t.Fatalf("expected empty output for unknown type, got %q", html)
	}
	if scripts != nil {
		t.Fatalf("expected no scripts for unknown type, got %v", scripts)
	}
}

func TestRegistry_RenderHiddenTypeProducesNoOutput(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(testDescriptor("stats", func(ctx RenderContext, prefix string, section models.Section) (string, []string) {
		return "<div>stats</div>", nil
	}))
	reg.SetHidden("stats", true)

	html, _ := reg.Render(noopContext{}, "page", models.Section{Key: "a", Type: "stats"})
	if html != "" {
		t.Fatalf("expected hidden type to render nothing, got %q", html)
	}

	reg.SetHidden("stats", false)
	html, _ = reg.Render(noopContext{}, "page", models.Section{Key: "a", Type: "stats"})
	if html == "" {
		t.Fatalf("expected unhidden type to render again")
	}
}

func TestRegistry_RenderRecoversFromPanickingRenderer(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(testDescriptor("broken", func(ctx RenderContext, prefix string, section models.Section) (string, []string) {
		panic("renderer exploded")
	}))

	html, scripts := reg.Render(noopContext{}, "page", models.Section{Key: "a", Type: "broken"})
	if html != "" || scripts != nil {
		t.Fatalf("expected panicking renderer to yield nothing, got html=%q scripts=%v", html, scripts)
	}
}

func TestRegistry_ListMetadataSkipsHidden(t *testing.T) {
	reg := DefaultRegistry()

	for _, meta := range reg.ListMetadata() {
		if reg.IsHidden(meta.Type) {
			t.Fatalf("hidden type %q leaked into the catalog", meta.Type)
		}
		if meta.Type == "stats" {
			t.Fatalf("stats is registered hidden and must not appear in the catalog")
		}
	}
}

func TestRegistry_TypeLookupIsCaseInsensitive(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(testDescriptor("hero", func(ctx RenderContext, prefix string, section models.Section) (string, []string) {
		return "<h1>hi</h1>", nil
	}))

	html, _ := reg.Render(noopContext{}, "page", models.Section{Key: "a", Type: "  HERO "})
	if !strings.Contains(html, "hi") {
		t.Fatalf("expected case-insensitive dispatch, got %q", html)
	}
}

func TestRegistry_RegisterRejectsInvalidDescriptors(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected error for nil descriptor")
	}
	if err := reg.Register(&SectionDescriptor{Metadata: SectionMetadata{Type: ""}}); err == nil {
		t.Fatalf("expected error for empty type")
	}
	if err := reg.Register(&SectionDescriptor{Metadata: SectionMetadata{Type: "x"}}); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}
