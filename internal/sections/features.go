package sections

import (
	"fmt"
	"strings"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

// RegisterFeatures registers the feature grid section renderer.
func RegisterFeatures(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&SectionDescriptor{
		Renderer: renderFeatures,
		Metadata: SectionMetadata{
			Type:        "features",
			Name:        "Features",
			Description: "Grid of capabilities with icon, heading and short text",
			Category:    "marketing",
			Icon:        "grid",
			Schema: map[string]interface{}{
				"title": map[string]interface{}{
					"type": "string",
				},
				"items": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
					},
				},
			},
		},
	})
}

func renderFeatures(ctx RenderContext, prefix string, section models.Section) (string, []string) {
	items := settingItems(section.Settings, "items")
	if len(items) == 0 {
		return "", nil
	}

	title := settingString(section.Settings, "title")

	featuresClass := fmt.Sprintf("%s__features", prefix)
	titleClass := fmt.Sprintf("%s__features-title", prefix)
	gridClass := fmt.Sprintf("%s__features-grid", prefix)
	itemClass := fmt.Sprintf("%s__features-item", prefix)
	iconClass := fmt.Sprintf("%s__features-icon", prefix)
	headingClass := fmt.Sprintf("%s__features-heading", prefix)
	textClass := fmt.Sprintf("%s__features-text", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + featuresClass + `">`)
	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h2 class="` + titleClass + `">` + ctx.SanitizeHTML(title) + `</h2>`)
	}

	sb.WriteString(`<div class="` + gridClass + `">`)
	for _, item := range items {
		heading := itemString(item, "heading")
		text := itemString(item, "text")
		if strings.TrimSpace(heading) == "" {
			continue
		}
		icon := itemString(item, "icon")

		sb.WriteString(`<div class="` + itemClass + `">`)
		if strings.TrimSpace(icon) != "" {
			sb.WriteString(`<span class="` + iconClass + ` ` + iconClass + `--` + strings.TrimSpace(strings.ToLower(icon)) + `"></span>`)
		}
		sb.WriteString(`<h3 class="` + headingClass + `">` + ctx.SanitizeHTML(heading) + `</h3>`)
		if strings.TrimSpace(text) != "" {
			sb.WriteString(`<p class="` + textClass + `">` + ctx.SanitizeHTML(text) + `</p>`)
		}
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)

	return sb.String(), nil
}
