package sections

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

// RegisterMap registers the location map section renderer. The map itself is
// drawn client-side by the mapping provider; this block only emits the
// container with the configured coordinates.
func RegisterMap(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&SectionDescriptor{
		Renderer: renderMap,
		Metadata: SectionMetadata{
			Type:        "map",
			Name:        "Map",
			Description: "Embedded map with the company location",
			Category:    "support",
			Icon:        "map-pin",
			Schema: map[string]interface{}{
				"title": map[string]interface{}{
					"type": "string",
				},
				"latitude": map[string]interface{}{
					"type":     "string",
					"required": true,
				},
				"longitude": map[string]interface{}{
					"type":     "string",
					"required": true,
				},
				"zoom": map[string]interface{}{
					"type":    "string",
					"default": "14",
				},
			},
		},
	})
}

func renderMap(ctx RenderContext, prefix string, section models.Section) (string, []string) {
	latitude := settingString(section.Settings, "latitude")
	longitude := settingString(section.Settings, "longitude")
	if strings.TrimSpace(latitude) == "" || strings.TrimSpace(longitude) == "" {
		return "", nil
	}

	title := settingString(section.Settings, "title")
	zoom := settingString(section.Settings, "zoom")
	if strings.TrimSpace(zoom) == "" {
		zoom = "14"
	}

	mapClass := fmt.Sprintf("%s__map", prefix)
	titleClass := fmt.Sprintf("%s__map-title", prefix)
	canvasClass := fmt.Sprintf("%s__map-canvas", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + mapClass + `">`)
	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h2 class="` + titleClass + `">` + ctx.SanitizeHTML(title) + `</h2>`)
	}
	sb.WriteString(`<div class="` + canvasClass + `"`)
	sb.WriteString(` data-lat="` + template.HTMLEscapeString(latitude) + `"`)
	sb.WriteString(` data-lng="` + template.HTMLEscapeString(longitude) + `"`)
	sb.WriteString(` data-zoom="` + template.HTMLEscapeString(zoom) + `"`)
	sb.WriteString(`></div>`)
	sb.WriteString(`</div>`)

	return sb.String(), []string{"/static/js/map.js"}
}
