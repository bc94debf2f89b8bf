package sections

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

// RegisterPricing registers the pricing table section renderer.
func RegisterPricing(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&SectionDescriptor{
		Renderer: renderPricing,
		Metadata: SectionMetadata{
			Type:        "pricing",
			Name:        "Pricing",
			Description: "Side-by-side service or maintenance plans",
			Category:    "marketing",
			Icon:        "tag",
			Schema: map[string]interface{}{
				"title": map[string]interface{}{
					"type": "string",
				},
				"tiers": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
					},
				},
			},
		},
	})
}

func renderPricing(ctx RenderContext, prefix string, section models.Section) (string, []string) {
	tiers := settingItems(section.Settings, "tiers")
	if len(tiers) == 0 {
		return "", nil
	}

	title := settingString(section.Settings, "title")

	pricingClass := fmt.Sprintf("%s__pricing", prefix)
	titleClass := fmt.Sprintf("%s__pricing-title", prefix)
	gridClass := fmt.Sprintf("%s__pricing-grid", prefix)
	tierClass := fmt.Sprintf("%s__pricing-tier", prefix)
	tierNameClass := fmt.Sprintf("%s__pricing-tier-name", prefix)
	tierPriceClass := fmt.Sprintf("%s__pricing-tier-price", prefix)
	tierFeaturesClass := fmt.Sprintf("%s__pricing-tier-features", prefix)
	tierButtonClass := fmt.Sprintf("%s__pricing-tier-button", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + pricingClass + `">`)
	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h2 class="` + titleClass + `">` + ctx.SanitizeHTML(title) + `</h2>`)
	}

	sb.WriteString(`<div class="` + gridClass + `">`)
	for _, tier := range tiers {
		name := itemString(tier, "name")
		if strings.TrimSpace(name) == "" {
			continue
		}
		price := itemString(tier, "price")
		buttonText := itemString(tier, "button_text")
		buttonURL := itemString(tier, "button_url")

		sb.WriteString(`<div class="` + tierClass + `">`)
		sb.WriteString(`<h3 class="` + tierNameClass + `">` + ctx.SanitizeHTML(name) + `</h3>`)
		if strings.TrimSpace(price) != "" {
			sb.WriteString(`<p class="` + tierPriceClass + `">` + ctx.SanitizeHTML(price) + `</p>`)
		}

		if features, ok := tier["features"].([]interface{}); ok && len(features) > 0 {
			sb.WriteString(`<ul class="` + tierFeaturesClass + `">`)
			for _, feature := range features {
				if text, ok := feature.(string); ok && strings.TrimSpace(text) != "" {
					sb.WriteString(`<li>` + ctx.SanitizeHTML(text) + `</li>`)
				}
			}
			sb.WriteString(`</ul>`)
		}

		if strings.TrimSpace(buttonText) != "" && strings.TrimSpace(buttonURL) != "" {
			sb.WriteString(`<a class="` + tierButtonClass + `" href="` + template.HTMLEscapeString(buttonURL) + `">`)
			sb.WriteString(template.HTMLEscapeString(buttonText))
			sb.WriteString(`</a>`)
		}
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)

	return sb.String(), nil
}
