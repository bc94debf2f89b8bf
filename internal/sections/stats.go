package sections

import (
	"fmt"
	"strings"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

// RegisterStats registers the key-figures section renderer. The section is
// registered hidden: content referencing it stays valid but renders nothing
// until the block is re-enabled.
func RegisterStats(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&SectionDescriptor{
		Renderer: renderStats,
		Hidden:   true,
		Metadata: SectionMetadata{
			Type:        "stats",
			Name:        "Key figures",
			Description: "Row of headline numbers with labels",
			Category:    "marketing",
			Icon:        "bar-chart",
			Schema: map[string]interface{}{
				"figures": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
					},
				},
			},
		},
	})
}

func renderStats(ctx RenderContext, prefix string, section models.Section) (string, []string) {
	figures := settingItems(section.Settings, "figures")
	if len(figures) == 0 {
		return "", nil
	}

	statsClass := fmt.Sprintf("%s__stats", prefix)
	figureClass := fmt.Sprintf("%s__stats-figure", prefix)
	valueClass := fmt.Sprintf("%s__stats-value", prefix)
	labelClass := fmt.Sprintf("%s__stats-label", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + statsClass + `">`)
	for _, figure := range figures {
		value := itemString(figure, "value")
		label := itemString(figure, "label")
		if strings.TrimSpace(value) == "" {
			continue
		}
		sb.WriteString(`<div class="` + figureClass + `">`)
		sb.WriteString(`<span class="` + valueClass + `">` + ctx.SanitizeHTML(value) + `</span>`)
		if strings.TrimSpace(label) != "" {
			sb.WriteString(`<span class="` + labelClass + `">` + ctx.SanitizeHTML(label) + `</span>`)
		}
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)

	return sb.String(), nil
}
