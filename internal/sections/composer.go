package sections

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

// ComposeOptions controls how a page's section list is assembled into HTML.
type ComposeOptions struct {
	// Prefix is the BEM block prefix applied to every class name.
	Prefix string
	// Editing enables the data attributes the editing overlay uses to map
	// rendered sections back to their location in the source document.
	Editing bool
	// DocumentID identifies the source page document in editing mode.
	DocumentID string
}

// Compose renders the ordered section list of one page. Sections are
// processed strictly in array order; between every pair of consecutive
// sections the divider is resolved and rendered when its style is not "none".
// Compose performs no fetching of its own: all data comes from the input list.
func (r *Registry) Compose(ctx RenderContext, list models.PageSections, opts ComposeOptions) (template.HTML, []string) {
	if len(list) == 0 {
		return "", nil
	}

	prefix := strings.TrimSpace(opts.Prefix)
	if prefix == "" {
		prefix = "page"
	}

	var sb strings.Builder
	var scripts []string

	for i, section := range list {
		html, sectionScripts := r.Render(ctx, prefix, section)
		scripts = appendScripts(scripts, sectionScripts)

		if html != "" {
			sb.WriteString(openSectionWrapper(prefix, section, opts))
			sb.WriteString(html)
			sb.WriteString(`</section>`)
		}

		if i < len(list)-1 {
			divider := ResolveDivider(section, list[i+1])
			if !divider.None() {
				sb.WriteString(renderDivider(prefix, divider))
			}
		}
	}

	return template.HTML(sb.String()), scripts
}

// openSectionWrapper emits the opening tag of a section wrapper. In editing
// mode the wrapper carries a structured reference to the entry of the source
// document's sections array so the overlay can correlate pixels with data.
func openSectionWrapper(prefix string, section models.Section, opts ComposeOptions) string {
	sectionType := strings.TrimSpace(strings.ToLower(section.Type))
	background := SectionBackground(section)

	classes := []string{
		fmt.Sprintf("%s__section", prefix),
		fmt.Sprintf("%s__section--%s", prefix, sectionType),
		fmt.Sprintf("%s__section--bg-%s", prefix, background),
	}

	var sb strings.Builder
	sb.WriteString(`<section class="` + strings.Join(classes, " ") + `"`)
	sb.WriteString(` id="section-` + template.HTMLEscapeString(section.Key) + `"`)

	if opts.Editing {
		sb.WriteString(` data-document-id="` + template.HTMLEscapeString(opts.DocumentID) + `"`)
		sb.WriteString(` data-section-key="` + template.HTMLEscapeString(section.Key) + `"`)
		sb.WriteString(` data-section-path="` + template.HTMLEscapeString(SectionPath(section.Key)) + `"`)
	}

	sb.WriteString(`>`)
	return sb.String()
}

// SectionPath expresses "field sections, entry whose key equals k" as a
// stable path string understood by the editing overlay.
func SectionPath(key string) string {
	return fmt.Sprintf(`sections[key=="%s"]`, key)
}

func appendScripts(existing []string, additions []string) []string {
	for _, script := range additions {
		script = strings.TrimSpace(script)
		if script == "" {
			continue
		}
		duplicate := false
		for _, have := range existing {
			if have == script {
				duplicate = true
				break
			}
		}
		if !duplicate {
			existing = append(existing, script)
		}
	}
	return existing
}
