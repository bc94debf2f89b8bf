package sections

import (
	"fmt"
	"strings"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

// RegisterFAQ registers the frequently-asked-questions section renderer.
func RegisterFAQ(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&SectionDescriptor{
		Renderer: renderFAQ,
		Metadata: SectionMetadata{
			Type:        "faq",
			Name:        "FAQ",
			Description: "Expandable list of questions and answers",
			Category:    "support",
			Icon:        "help-circle",
			Schema: map[string]interface{}{
				"title": map[string]interface{}{
					"type":    "string",
					"default": "Frequently asked questions",
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

func renderFAQ(ctx RenderContext, prefix string, section models.Section) (string, []string) {
	items := settingItems(section.Settings, "items")
	if len(items) == 0 {
		return "", nil
	}

	title := settingString(section.Settings, "title")
	if strings.TrimSpace(title) == "" {
		title = "Frequently asked questions"
	}

	faqClass := fmt.Sprintf("%s__faq", prefix)
	titleClass := fmt.Sprintf("%s__faq-title", prefix)
	itemClass := fmt.Sprintf("%s__faq-item", prefix)
	questionClass := fmt.Sprintf("%s__faq-question", prefix)
	answerClass := fmt.Sprintf("%s__faq-answer", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + faqClass + `">`)
	sb.WriteString(`<h2 class="` + titleClass + `">` + ctx.SanitizeHTML(title) + `</h2>`)

	for _, item := range items {
		question := itemString(item, "question")
		answer := itemString(item, "answer")
		if strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" {
			continue
		}

		sb.WriteString(`<details class="` + itemClass + `">`)
		sb.WriteString(`<summary class="` + questionClass + `">` + ctx.SanitizeHTML(question) + `</summary>`)
		sb.WriteString(`<div class="` + answerClass + `">` + ctx.SanitizeHTML(answer) + `</div>`)
		sb.WriteString(`</details>`)
	}

	sb.WriteString(`</div>`)
	return sb.String(), nil
}
