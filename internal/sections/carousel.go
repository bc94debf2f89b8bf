package sections

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

// RegisterCarousel registers the image carousel section renderer.
func RegisterCarousel(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&SectionDescriptor{
		Renderer: renderCarousel,
		Metadata: SectionMetadata{
			Type:        "carousel",
			Name:        "Carousel",
			Description: "Horizontal slider of product photos with optional captions",
			Category:    "media",
			Icon:        "images",
			Schema: map[string]interface{}{
				"title": map[string]interface{}{
					"type": "string",
				},
				"slides": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
					},
				},
				"autoplay": map[string]interface{}{
					"type":    "boolean",
					"default": true,
				},
			},
		},
	})
}

func renderCarousel(ctx RenderContext, prefix string, section models.Section) (string, []string) {
	slides := settingItems(section.Settings, "slides")
	if len(slides) == 0 {
		return "", nil
	}

	title := settingString(section.Settings, "title")
	autoplay := settingBool(section.Settings, "autoplay", true)

	carouselClass := fmt.Sprintf("%s__carousel", prefix)
	titleClass := fmt.Sprintf("%s__carousel-title", prefix)
	trackClass := fmt.Sprintf("%s__carousel-track", prefix)
	slideClass := fmt.Sprintf("%s__carousel-slide", prefix)
	captionClass := fmt.Sprintf("%s__carousel-caption", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + carouselClass + `" data-autoplay="` + fmt.Sprintf("%t", autoplay) + `">`)

	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h2 class="` + titleClass + `">` + ctx.SanitizeHTML(title) + `</h2>`)
	}

	sb.WriteString(`<div class="` + trackClass + `">`)
	for _, slide := range slides {
		imageURL := itemString(slide, "image_url")
		if strings.TrimSpace(imageURL) == "" {
			continue
		}
		alt := itemString(slide, "alt")
		caption := itemString(slide, "caption")

		sb.WriteString(`<figure class="` + slideClass + `">`)
		sb.WriteString(`<img src="` + template.HTMLEscapeString(imageURL) + `" alt="` + template.HTMLEscapeString(alt) + `" loading="lazy" />`)
		if strings.TrimSpace(caption) != "" {
			sb.WriteString(`<figcaption class="` + captionClass + `">` + ctx.SanitizeHTML(caption) + `</figcaption>`)
		}
		sb.WriteString(`</figure>`)
	}
	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)

	return sb.String(), []string{"/static/js/carousel.js"}
}
