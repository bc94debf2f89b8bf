package sections

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

// RegisterContact registers the contact section renderer. The form posts to
// the contact API endpoint; the section only renders the surrounding block
// and the contact methods configured by the editor.
func RegisterContact(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&SectionDescriptor{
		Renderer: renderContactSection,
		Metadata: SectionMetadata{
			Type:        "contact",
			Name:        "Contact",
			Description: "Contact methods alongside an enquiry form",
			Category:    "support",
			Icon:        "phone",
			Schema: map[string]interface{}{
				"title": map[string]interface{}{
					"type":    "string",
					"default": "Get in touch",
				},
				"email": map[string]interface{}{
					"type":        "string",
					"placeholder": "sales@example.com",
				},
				"phone": map[string]interface{}{
					"type":        "string",
					"placeholder": "+39 030 000 0000",
				},
				"location": map[string]interface{}{
					"type":        "string",
					"placeholder": "City, country",
				},
				"show_request_type": map[string]interface{}{
					"type":    "boolean",
					"default": true,
				},
			},
		},
	})
}

func renderContactSection(ctx RenderContext, prefix string, section models.Section) (string, []string) {
	settings := section.Settings

	title := settingString(settings, "title")
	if strings.TrimSpace(title) == "" {
		title = "Get in touch"
	}
	email := settingString(settings, "email")
	phone := settingString(settings, "phone")
	location := settingString(settings, "location")
	showRequestType := settingBool(settings, "show_request_type", true)

	contactClass := fmt.Sprintf("%s__contact", prefix)
	titleClass := fmt.Sprintf("%s__contact-title", prefix)
	methodsClass := fmt.Sprintf("%s__contact-methods", prefix)
	methodClass := fmt.Sprintf("%s__contact-method", prefix)
	formClass := fmt.Sprintf("%s__contact-form", prefix)
	fieldClass := fmt.Sprintf("%s__contact-field", prefix)
	submitClass := fmt.Sprintf("%s__contact-submit", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + contactClass + `">`)
	sb.WriteString(`<h2 class="` + titleClass + `">` + ctx.SanitizeHTML(title) + `</h2>`)

	if email != "" || phone != "" || location != "" {
		sb.WriteString(`<ul class="` + methodsClass + `">`)
		if email != "" {
			sb.WriteString(`<li class="` + methodClass + `"><a href="mailto:` + template.HTMLEscapeString(email) + `">` + template.HTMLEscapeString(email) + `</a></li>`)
		}
		if phone != "" {
			sb.WriteString(`<li class="` + methodClass + `"><a href="tel:` + template.HTMLEscapeString(phone) + `">` + template.HTMLEscapeString(phone) + `</a></li>`)
		}
		if location != "" {
			sb.WriteString(`<li class="` + methodClass + `">` + template.HTMLEscapeString(location) + `</li>`)
		}
		sb.WriteString(`</ul>`)
	}

	sb.WriteString(`<form class="` + formClass + `" method="post" action="/api/contact">`)
	sb.WriteString(`<input class="` + fieldClass + `" type="text" name="name" placeholder="Name" required />`)
	sb.WriteString(`<input class="` + fieldClass + `" type="email" name="email" placeholder="Email" required />`)
	sb.WriteString(`<input class="` + fieldClass + `" type="text" name="company" placeholder="Company" />`)
	sb.WriteString(`<input class="` + fieldClass + `" type="tel" name="phone" placeholder="Phone" />`)
	if showRequestType {
		sb.WriteString(`<select class="` + fieldClass + `" name="requestType">`)
		sb.WriteString(`<option value="quote">Request a quote</option>`)
		sb.WriteString(`<option value="service">Service and spare parts</option>`)
		sb.WriteString(`<option value="other">Other</option>`)
		sb.WriteString(`</select>`)
	}
	sb.WriteString(`<textarea class="` + fieldClass + `" name="message" placeholder="Message" required></textarea>`)
	sb.WriteString(`<button class="` + submitClass + `" type="submit">Send</button>`)
	sb.WriteString(`</form>`)
	sb.WriteString(`</div>`)

	return sb.String(), []string{"/static/js/contact-form.js"}
}
