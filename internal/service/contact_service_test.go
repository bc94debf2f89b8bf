package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/niko9090/glos-italy-website-sub000/internal/config"
	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

type fakeSender struct {
	enabled bool
	failure error

	to      string
	replyTo string
	subject string
	body    string
	sent    int
}

func (s *fakeSender) Enabled() bool { return s.enabled }

func (s *fakeSender) Send(to, replyTo, subject, html string) error {
	s.sent++
	s.to = to
	s.replyTo = replyTo
	s.subject = subject
	s.body = html
	return s.failure
}

func contactConfig() *config.Config {
	return &config.Config{ContactTo: "sales@glositaly.com"}
}

func validSubmission() models.ContactRequest {
	return models.ContactRequest{
		Name:    "Mario Rossi",
		Email:   "mario@example.com",
		Message: "I need a quote for a deburring line.",
	}
}

func TestContactSubmit_MissingFields(t *testing.T) {
	svc := NewContactService(contactConfig(), &fakeSender{enabled: true})

	cases := []models.ContactRequest{
		{Email: "mario@example.com", Message: "hello"},
		{Name: "Mario", Message: "hello"},
		{Name: "Mario", Email: "mario@example.com"},
		{Name: "   ", Email: "mario@example.com", Message: "hello"},
	}

	for _, req := range cases {
		if err := svc.Submit(req); !errors.Is(err, ErrMissingContactFields) {
			t.Fatalf("expected ErrMissingContactFields for %+v, got %v", req, err)
		}
	}
}

func TestContactSubmit_InvalidEmail(t *testing.T) {
	svc := NewContactService(contactConfig(), &fakeSender{enabled: true})

	for _, email := range []string{"plainaddress", "two@@example.com", "user@nodot", "@example.com", "user@"} {
		req := validSubmission()
		req.Email = email
		if err := svc.Submit(req); !errors.Is(err, ErrInvalidContactEmail) {
			t.Fatalf("expected ErrInvalidContactEmail for %q, got %v", email, err)
		}
	}
}

func TestContactSubmit_MessageTooLong(t *testing.T) {
	svc := NewContactService(contactConfig(), &fakeSender{enabled: true})

	req := validSubmission()
	req.Message = strings.Repeat("a", 8001)
	if err := svc.Submit(req); !errors.Is(err, ErrContactMessageTooLong) {
		t.Fatalf("expected ErrContactMessageTooLong, got %v", err)
	}
}

func TestContactSubmit_ForwardsToConfiguredRecipient(t *testing.T) {
	sender := &fakeSender{enabled: true}
	svc := NewContactService(contactConfig(), sender)

	req := validSubmission()
	req.Phone = "+39 030 1234567"
	if err := svc.Submit(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sender.sent != 1 {
		t.Fatalf("expected one email, got %d", sender.sent)
	}
	if sender.to != "sales@glositaly.com" {
		t.Fatalf("expected configured recipient, got %q", sender.to)
	}
	if sender.replyTo != "mario@example.com" {
		t.Fatalf("expected reply-to set to the submitter, got %q", sender.replyTo)
	}
	if !strings.Contains(sender.body, "Mario Rossi") || !strings.Contains(sender.body, "+39 030 1234567") {
		t.Fatalf("expected submission details in body, got %q", sender.body)
	}
}

func TestContactSubmit_EmailDisabledStillSucceeds(t *testing.T) {
	sender := &fakeSender{enabled: false}
	svc := NewContactService(contactConfig(), sender)

	if err := svc.Submit(validSubmission()); err != nil {
		t.Fatalf("expected success with email disabled, got %v", err)
	}
	if sender.sent != 0 {
		t.Fatalf("disabled sender must not be called, got %d sends", sender.sent)
	}
}

func TestContactSubmit_DeliveryFailureIsNotSurfaced(t *testing.T) {
	sender := &fakeSender{enabled: true, failure: errors.New("smtp down")}
	svc := NewContactService(contactConfig(), sender)

	if err := svc.Submit(validSubmission()); err != nil {
		t.Fatalf("delivery failure must not reach the caller, got %v", err)
	}
}

func TestContactSubmit_DefaultSubject(t *testing.T) {
	sender := &fakeSender{enabled: true}
	svc := NewContactService(contactConfig(), sender)

	if err := svc.Submit(validSubmission()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.subject == "" {
		t.Fatalf("expected a default subject")
	}

	req := validSubmission()
	req.Subject = "Spare parts for GL-200"
	if err := svc.Submit(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.subject != "Spare parts for GL-200" {
		t.Fatalf("expected caller subject to win, got %q", sender.subject)
	}
}

func TestContactSubmit_MessageIsEscaped(t *testing.T) {
	sender := &fakeSender{enabled: true}
	svc := NewContactService(contactConfig(), sender)

	req := validSubmission()
	req.Message = "<script>alert(1)</script>"
	if err := svc.Submit(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(sender.body, "<script>") {
		t.Fatalf("expected message to be escaped, got %q", sender.body)
	}
}
