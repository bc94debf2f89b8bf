package sections

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

// RegisterCTA registers the call-to-action banner renderer.
func RegisterCTA(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&SectionDescriptor{
		Renderer: renderCTA,
		Metadata: SectionMetadata{
			Type:        "cta",
			Name:        "Call to action",
			Description: "Short banner with headline and button",
			Category:    "marketing",
			Icon:        "zap",
			Schema: map[string]interface{}{
				"title": map[string]interface{}{
					"type":     "string",
					"required": true,
				},
				"button_text": map[string]interface{}{
					"type":     "string",
					"required": true,
				},
				"button_url": map[string]interface{}{
					"type":     "string",
					"required": true,
				},
			},
		},
	})
}

func renderCTA(ctx RenderContext, prefix string, section models.Section) (string, []string) {
	title := settingString(section.Settings, "title")
	buttonText := settingString(section.Settings, "button_text")
	buttonURL := settingString(section.Settings, "button_url")

	if strings.TrimSpace(title) == "" || strings.TrimSpace(buttonText) == "" || strings.TrimSpace(buttonURL) == "" {
		return "", nil
	}

	ctaClass := fmt.Sprintf("%s__cta", prefix)
	titleClass := fmt.Sprintf("%s__cta-title", prefix)
	buttonClass := fmt.Sprintf("%s__cta-button", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + ctaClass + `">`)
	sb.WriteString(`<h2 class="` + titleClass + `">` + ctx.SanitizeHTML(title) + `</h2>`)
	sb.WriteString(`<a class="` + buttonClass + `" href="` + template.HTMLEscapeString(buttonURL) + `">`)
	sb.WriteString(template.HTMLEscapeString(buttonText))
	sb.WriteString(`</a>`)
	sb.WriteString(`</div>`)

	return sb.String(), nil
}
