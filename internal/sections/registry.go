package sections

import (
	"fmt"
	"strings"
	"sync"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
	"github.com/niko9090/glos-italy-website-sub000/pkg/logger"
)

// RenderContext exposes the minimal capabilities required by section renderers.
type RenderContext interface {
	// SanitizeHTML should clean potentially unsafe markup before rendering.
	SanitizeHTML(input string) string
}

// Renderer produces the HTML output and optional script URLs for one section.
// Renderers must treat the section as read-only.
type Renderer func(ctx RenderContext, prefix string, section models.Section) (string, []string)

// SectionMetadata describes a section type for the editing catalog.
type SectionMetadata struct {
	Type        string                 `json:"type"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Icon        string                 `json:"icon,omitempty"`
	Schema      map[string]interface{} `json:"schema,omitempty"`
}

// SectionDescriptor couples a renderer with its catalog metadata. Hidden
// descriptors stay registered but produce no output when dispatched.
type SectionDescriptor struct {
	Renderer Renderer
	Metadata SectionMetadata
	Hidden   bool
}

// Registry stores the mapping between section types and their descriptors.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]*SectionDescriptor
}

// NewRegistry creates an empty section registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]*SectionDescriptor)}
}

// Register associates a descriptor with its normalised section type.
func (r *Registry) Register(desc *SectionDescriptor) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}
	if desc == nil {
		return fmt.Errorf("descriptor is nil")
	}

	sectionType := strings.TrimSpace(strings.ToLower(desc.Metadata.Type))
	if sectionType == "" {
		return fmt.Errorf("section type is empty")
	}
	if desc.Renderer == nil {
		return fmt.Errorf("renderer is nil for type %s", sectionType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.descriptors == nil {
		r.descriptors = make(map[string]*SectionDescriptor)
	}
	r.descriptors[sectionType] = desc
	return nil
}

// MustRegister registers the descriptor and panics if registration fails.
func (r *Registry) MustRegister(desc *SectionDescriptor) {
	if err := r.Register(desc); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer for the provided section type if it exists.
func (r *Registry) Get(sectionType string) (Renderer, bool) {
	if r == nil {
		return nil, false
	}

	sectionType = strings.TrimSpace(strings.ToLower(sectionType))
	if sectionType == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.descriptors[sectionType]
	if !ok {
		return nil, false
	}
	return desc.Renderer, true
}

// IsHidden reports whether a registered type is currently suppressed.
func (r *Registry) IsHidden(sectionType string) bool {
	if r == nil {
		return false
	}

	sectionType = strings.TrimSpace(strings.ToLower(sectionType))

	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.descriptors[sectionType]
	return ok && desc.Hidden
}

// SetHidden toggles suppression of a registered type. Unknown types are ignored.
func (r *Registry) SetHidden(sectionType string, hidden bool) {
	if r == nil {
		return
	}

	sectionType = strings.TrimSpace(strings.ToLower(sectionType))

	r.mu.Lock()
	defer r.mu.Unlock()
	if desc, ok := r.descriptors[sectionType]; ok {
		desc.Hidden = hidden
	}
}

// ListMetadata returns catalog metadata for all visible section types.
func (r *Registry) ListMetadata() []SectionMetadata {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]SectionMetadata, 0, len(r.descriptors))
	for _, desc := range r.descriptors {
		if desc.Hidden {
			continue
		}
		result = append(result, desc.Metadata)
	}
	return result
}

// Render dispatches one section to its renderer. Unknown and hidden types
// produce no output; a panicking renderer is recovered and logged so a single
// bad section cannot take the whole page down.
func (r *Registry) Render(ctx RenderContext, prefix string, section models.Section) (html string, scripts []string) {
	if r == nil {
		return "", nil
	}

	sectionType := strings.TrimSpace(strings.ToLower(section.Type))
	if sectionType == "" {
		return "", nil
	}

	if r.IsHidden(sectionType) {
		return "", nil
	}

	renderer, ok := r.Get(sectionType)
	if !ok {
		logger.Debug("No renderer registered for section type", map[string]interface{}{
			"type": sectionType,
			"key":  section.Key,
		})
		return "", nil
	}

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error(fmt.Errorf("renderer panic: %v", rec), "Section renderer failed", map[string]interface{}{
				"type": sectionType,
				"key":  section.Key,
			})
			html = ""
			scripts = nil
		}
	}()

	html, scripts = renderer(ctx, prefix, section)
	return html, scripts
}

// Clone creates a copy of the registry with the same descriptors.
func (r *Registry) Clone() *Registry {
	if r == nil {
		return NewRegistry()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for key, desc := range r.descriptors {
		copied := *desc
		cloned.descriptors[key] = &copied
	}
	return cloned
}
