package sections

import (
	"fmt"
	"strings"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

// RegisterTimeline registers the company history timeline renderer.
func RegisterTimeline(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&SectionDescriptor{
		Renderer: renderTimeline,
		Metadata: SectionMetadata{
			Type:        "timeline",
			Name:        "Timeline",
			Description: "Chronological list of milestones",
			Category:    "content",
			Icon:        "clock",
			Schema: map[string]interface{}{
				"title": map[string]interface{}{
					"type": "string",
				},
				"milestones": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
					},
				},
			},
		},
	})
}

func renderTimeline(ctx RenderContext, prefix string, section models.Section) (string, []string) {
	milestones := settingItems(section.Settings, "milestones")
	if len(milestones) == 0 {
		return "", nil
	}

	title := settingString(section.Settings, "title")

	timelineClass := fmt.Sprintf("%s__timeline", prefix)
	titleClass := fmt.Sprintf("%s__timeline-title", prefix)
	listClass := fmt.Sprintf("%s__timeline-list", prefix)
	entryClass := fmt.Sprintf("%s__timeline-entry", prefix)
	yearClass := fmt.Sprintf("%s__timeline-year", prefix)
	textClass := fmt.Sprintf("%s__timeline-text", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + timelineClass + `">`)
	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h2 class="` + titleClass + `">` + ctx.SanitizeHTML(title) + `</h2>`)
	}

	sb.WriteString(`<ol class="` + listClass + `">`)
	for _, milestone := range milestones {
		year := itemString(milestone, "year")
		text := itemString(milestone, "text")
		if strings.TrimSpace(year) == "" || strings.TrimSpace(text) == "" {
			continue
		}
		sb.WriteString(`<li class="` + entryClass + `">`)
		sb.WriteString(`<span class="` + yearClass + `">` + ctx.SanitizeHTML(year) + `</span>`)
		sb.WriteString(`<span class="` + textClass + `">` + ctx.SanitizeHTML(text) + `</span>`)
		sb.WriteString(`</li>`)
	}
	sb.WriteString(`</ol>`)
	sb.WriteString(`</div>`)

	return sb.String(), nil
}
