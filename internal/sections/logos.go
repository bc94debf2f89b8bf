package sections

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

// RegisterLogos registers the partner/certification logo strip renderer.
func RegisterLogos(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&SectionDescriptor{
		Renderer: renderLogos,
		Metadata: SectionMetadata{
			Type:        "logos",
			Name:        "Logo strip",
			Description: "Row of partner or certification logos",
			Category:    "marketing",
			Icon:        "award",
			Schema: map[string]interface{}{
				"logos": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
					},
				},
			},
		},
	})
}

func renderLogos(ctx RenderContext, prefix string, section models.Section) (string, []string) {
	logos := settingItems(section.Settings, "logos")
	if len(logos) == 0 {
		return "", nil
	}

	stripClass := fmt.Sprintf("%s__logos", prefix)
	logoClass := fmt.Sprintf("%s__logos-item", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + stripClass + `">`)
	for _, logo := range logos {
		imageURL := itemString(logo, "image_url")
		if strings.TrimSpace(imageURL) == "" {
			continue
		}
		name := itemString(logo, "name")
		linkURL := itemString(logo, "url")

		sb.WriteString(`<div class="` + logoClass + `">`)
		if strings.TrimSpace(linkURL) != "" {
			sb.WriteString(`<a href="` + template.HTMLEscapeString(linkURL) + `" rel="noopener" target="_blank">`)
		}
		sb.WriteString(`<img src="` + template.HTMLEscapeString(imageURL) + `" alt="` + template.HTMLEscapeString(name) + `" loading="lazy" />`)
		if strings.TrimSpace(linkURL) != "" {
			sb.WriteString(`</a>`)
		}
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)

	return sb.String(), nil
}
