package service

import (
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/niko9090/glos-italy-website-sub000/internal/config"
	"github.com/niko9090/glos-italy-website-sub000/internal/constants"
	"github.com/niko9090/glos-italy-website-sub000/internal/models"
	"github.com/niko9090/glos-italy-website-sub000/pkg/logger"
	"github.com/niko9090/glos-italy-website-sub000/pkg/validator"
)

var (
	// ErrMissingContactFields marks a submission without name, email or message.
	ErrMissingContactFields = errors.New("name, email and message are required")
	// ErrInvalidContactEmail marks a submission whose email fails the pattern check.
	ErrInvalidContactEmail = errors.New("invalid email address")
	// ErrContactMessageTooLong marks a message exceeding the length cap.
	ErrContactMessageTooLong = errors.New("message is too long")
)

// Sender abstracts the email dependency of the contact flow.
type Sender interface {
	Enabled() bool
	Send(to, replyTo, subject, html string) error
}

// ContactService validates contact submissions and forwards them by email.
// Delivery is a best-effort side channel: once a submission passes
// validation, Submit reports success even when the email leg fails.
type ContactService struct {
	config *config.Config
	email  Sender
}

func NewContactService(cfg *config.Config, email Sender) *ContactService {
	return &ContactService{
		config: cfg,
		email:  email,
	}
}

// Submit validates the request and forwards it to the configured recipient.
// A validation failure is returned to the caller; an email failure is only
// logged.
func (s *ContactService) Submit(req models.ContactRequest) error {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	if name == "" || email == "" || message == "" {
		return ErrMissingContactFields
	}
	if !validator.ValidateEmail(email) {
		return ErrInvalidContactEmail
	}
	if len(message) > constants.MaxContactMessageLength {
		return ErrContactMessageTooLong
	}

	if s.email == nil || !s.email.Enabled() {
		logger.Warn("Contact submission received but email is not configured", map[string]interface{}{
			"name":  name,
			"email": email,
		})
		return nil
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = constants.DefaultContactSubject
	}

	to := ""
	if s.config != nil {
		to = s.config.ContactTo
	}

	if err := s.email.Send(to, email, subject, buildContactBody(req)); err != nil {
		logger.Error(err, "Failed to forward contact submission", map[string]interface{}{
			"email": email,
		})
	}

	return nil
}

func buildContactBody(req models.ContactRequest) string {
	escape := template.HTMLEscapeString

	var sb strings.Builder
	sb.WriteString("<h2>New website enquiry</h2>")
	sb.WriteString("<table>")
	writeRow := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		sb.WriteString(fmt.Sprintf("<tr><td><strong>%s</strong></td><td>%s</td></tr>", label, escape(value)))
	}
	writeRow("Name", req.Name)
	writeRow("Email", req.Email)
	writeRow("Phone", req.Phone)
	writeRow("Company", req.Company)
	writeRow("Request type", req.RequestType)
	sb.WriteString("</table>")
	sb.WriteString("<p>" + strings.ReplaceAll(escape(req.Message), "\n", "<br/>") + "</p>")
	return sb.String()
}
