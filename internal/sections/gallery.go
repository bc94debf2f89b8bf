package sections

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

// RegisterGallery registers the photo gallery section renderer.
func RegisterGallery(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&SectionDescriptor{
		Renderer: renderGallery,
		Metadata: SectionMetadata{
			Type:        "gallery",
			Name:        "Gallery",
			Description: "Masonry grid of workshop and product photos",
			Category:    "media",
			Icon:        "image",
			Schema: map[string]interface{}{
				"images": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
					},
				},
			},
		},
	})
}

func renderGallery(ctx RenderContext, prefix string, section models.Section) (string, []string) {
	images := settingItems(section.Settings, "images")
	if len(images) == 0 {
		return "", nil
	}

	galleryClass := fmt.Sprintf("%s__gallery", prefix)
	itemClass := fmt.Sprintf("%s__gallery-item", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + galleryClass + `">`)
	for _, image := range images {
		imageURL := itemString(image, "url")
		if strings.TrimSpace(imageURL) == "" {
			continue
		}
		alt := itemString(image, "alt")

		sb.WriteString(`<div class="` + itemClass + `">`)
		sb.WriteString(`<img src="` + template.HTMLEscapeString(imageURL) + `" alt="` + template.HTMLEscapeString(alt) + `" loading="lazy" />`)
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)

	return sb.String(), nil
}
