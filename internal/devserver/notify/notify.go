// Package notify tells the site owner about new contact messages.
package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrijs2005/portfolio/internal/devserver/models"
	"github.com/dmitrijs2005/portfolio/internal/logging"
)

type Notifier interface {
	NotifyContact(ctx context.Context, c models.Contact) error
}

// LogNotifier only logs the message. It is used when mail is not configured.
type LogNotifier struct {
	logger logging.Logger
}

func NewLogNotifier(logger logging.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("module", "notify")}
}

func (n *LogNotifier) NotifyContact(ctx context.Context, c models.Contact) error {
	n.logger.Info(ctx, "new contact message", "id", c.ID, "name", c.Name, "email", c.Email)
	return nil
}

// emailSender is the part of the Resend client the notifier uses.
type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendNotifier mails every contact message to a fixed address.
type ResendNotifier struct {
	emails emailSender
	from   string
	to     string
}

func NewResendNotifier(apiKey, from, to string) *ResendNotifier {
	return &ResendNotifier{
		emails: resend.NewClient(apiKey).Emails,
		from:   from,
		to:     to,
	}
}

func (n *ResendNotifier) NotifyContact(ctx context.Context, c models.Contact) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		ReplyTo: c.Email,
		Subject: "Portfolio Contact: " + subjectName(c.Name),
		Html:    contactHTML(c),
		Text:    contactText(c),
	}

	if _, err := n.emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}

func subjectName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return "Contact Form"
	}
	return name
}

// contactHTML renders the message body. Every user-supplied value is escaped.
func contactHTML(c models.Contact) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family:Arial,Helvetica,sans-serif;max-width:600px;margin:0 auto;">`)
	b.WriteString(`<h2>New Portfolio Contact</h2>`)
	field := func(label, value string) {
		fmt.Fprintf(&b, `<p><strong>%s:</strong> %s</p>`, label, html.EscapeString(value))
	}
	field("Name", c.Name)
	field("Email", c.Email)
	field("Phone", c.Phone)
	fmt.Fprintf(&b, `<div style="white-space:pre-wrap;border:1px solid #e0e0e0;padding:16px;">%s</div>`,
		html.EscapeString(c.Message))
	b.WriteString(`<p style="color:#666;font-size:12px;">This message was sent from your portfolio website.</p></div>`)
	return b.String()
}

func contactText(c models.Contact) string {
	return fmt.Sprintf("New Portfolio Contact Message\n\nName: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s\n",
		c.Name, c.Email, c.Phone, c.Message)
}
