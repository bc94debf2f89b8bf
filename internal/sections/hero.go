package sections

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

// RegisterHero registers the hero section renderer.
func RegisterHero(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&SectionDescriptor{
		Renderer: renderHero,
		Metadata: SectionMetadata{
			Type:        "hero",
			Name:        "Hero",
			Description: "Full-width banner with headline, supporting text, background image and call-to-action",
			Category:    "marketing",
			Icon:        "star",
			Schema: map[string]interface{}{
				"title": map[string]interface{}{
					"type":     "string",
					"required": true,
				},
				"subtitle": map[string]interface{}{
					"type": "string",
				},
				"image_url": map[string]interface{}{
					"type": "string",
				},
				"image_alt": map[string]interface{}{
					"type":    "string",
					"default": "Hero image",
				},
				"button_text": map[string]interface{}{
					"type":    "string",
					"default": "Discover our machines",
				},
				"button_url": map[string]interface{}{
					"type":    "string",
					"default": "/products",
				},
			},
		},
	})
}

func renderHero(ctx RenderContext, prefix string, section models.Section) (string, []string) {
	settings := section.Settings
	if settings == nil {
		return "", nil
	}

	title := settingString(settings, "title")
	subtitle := settingString(settings, "subtitle")
	imageURL := settingString(settings, "image_url")
	imageAlt := settingString(settings, "image_alt")
	buttonText := settingString(settings, "button_text")
	buttonURL := settingString(settings, "button_url")

	if strings.TrimSpace(title) == "" {
		return "", nil
	}

	if strings.TrimSpace(imageAlt) == "" {
		imageAlt = "Hero image"
	}
	if strings.TrimSpace(buttonText) == "" {
		buttonText = "Discover our machines"
	}
	if strings.TrimSpace(buttonURL) == "" {
		buttonURL = "/products"
	}

	heroClass := fmt.Sprintf("%s__hero", prefix)
	heroContentClass := fmt.Sprintf("%s__hero-content", prefix)
	heroTitleClass := fmt.Sprintf("%s__hero-title", prefix)
	heroSubtitleClass := fmt.Sprintf("%s__hero-subtitle", prefix)
	heroButtonClass := fmt.Sprintf("%s__hero-button", prefix)
	heroImageClass := fmt.Sprintf("%s__hero-image", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + heroClass + `">`)
	sb.WriteString(`<div class="` + heroContentClass + `">`)
	sb.WriteString(`<h1 class="` + heroTitleClass + `">` + ctx.SanitizeHTML(title) + `</h1>`)

	if strings.TrimSpace(subtitle) != "" {
		sb.WriteString(`<p class="` + heroSubtitleClass + `">` + ctx.SanitizeHTML(subtitle) + `</p>`)
	}

	sb.WriteString(`<a href="` + template.HTMLEscapeString(buttonURL) + `" class="` + heroButtonClass + `">`)
	sb.WriteString(template.HTMLEscapeString(buttonText))
	sb.WriteString(`</a>`)
	sb.WriteString(`</div>`)

	if strings.TrimSpace(imageURL) != "" {
		sb.WriteString(`<div class="` + heroImageClass + `">`)
		sb.WriteString(`<img src="` + template.HTMLEscapeString(imageURL) + `" alt="` + template.HTMLEscapeString(imageAlt) + `" />`)
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</div>`)

	return sb.String(), nil
}
