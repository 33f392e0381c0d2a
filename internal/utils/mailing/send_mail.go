package mailing

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/gomail.v2"

	"parth-agrotech/entities"
	"parth-agrotech/internal/utils"
)

const sendTimeout = 30 * time.Second

type (
	// Notifier tells the back-office about submissions from the public site.
	// Mails go out in the background; Wait blocks until pending ones are done.
	Notifier interface {
		NotifyContactInquiry(inquiry *entities.ContactInquiry)
		NotifyFarmerRegistration(farmer *entities.Farmer)
		Wait()
	}

	MailConfig struct {
		AppURL       string
		SMTPHost     string
		SMTPPort     string
		SMTPSender   string
		SMTPEmail    string
		SMTPPassword string
		NotifyEmail  string
	}

	mailNotifier struct {
		config  MailConfig
		timeout time.Duration
		send    func(m *gomail.Message) error
		pending sync.WaitGroup
	}

	noopNotifier struct{}
)

func LoadMailConfig(config utils.Config) MailConfig {
	return MailConfig{
		AppURL:       config.AppURL,
		SMTPHost:     config.SMTPHost,
		SMTPPort:     config.SMTPPort,
		SMTPSender:   config.SMTPSenderName,
		SMTPEmail:    config.SMTPAuthEmail,
		SMTPPassword: config.SMTPAuthPassword,
		NotifyEmail:  config.NotifyEmail,
	}
}

// NewNotifier returns a notifier that mails NotifyEmail, or one that does
// nothing when SMTP or the recipient is not configured.
func NewNotifier(config MailConfig) Notifier {
	if config.SMTPHost == "" || config.NotifyEmail == "" {
		return noopNotifier{}
	}
	n := &mailNotifier{config: config, timeout: sendTimeout}
	n.send = n.dialAndSend
	return n
}

func NewNoopNotifier() Notifier { return noopNotifier{} }

func (noopNotifier) NotifyContactInquiry(*entities.ContactInquiry) {}

func (noopNotifier) NotifyFarmerRegistration(*entities.Farmer) {}

func (noopNotifier) Wait() {}

func (n *mailNotifier) NotifyContactInquiry(inquiry *entities.ContactInquiry) {
	subject := fmt.Sprintf("New %s inquiry from %s", inquiry.Type, inquiry.Name)
	n.deliver(subject, ContactInquiryBody(inquiry, n.config.AppURL))
}

func (n *mailNotifier) NotifyFarmerRegistration(farmer *entities.Farmer) {
	subject := fmt.Sprintf("New farmer registration: %s (%s)", farmer.Name, farmer.Village)
	n.deliver(subject, FarmerRegistrationBody(farmer, n.config.AppURL))
}

func (n *mailNotifier) Wait() { n.pending.Wait() }

// deliver sends in the background and never fails the caller; a lost
// notification is only logged.
func (n *mailNotifier) deliver(subject, body string) {
	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", n.config.SMTPEmail, n.config.SMTPSender)
	mailer.SetHeader("To", n.config.NotifyEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	n.pending.Add(1)
	go func() {
		defer n.pending.Done()
		if err := n.sendWithin(mailer); err != nil {
			slog.Error("could not send notification mail", "subject", subject, "err", err)
		}
	}()
}

// sendWithin gives up waiting after n.timeout. gomail cannot cancel a dial,
// so a stuck send keeps its goroutine until the dialer times out.
func (n *mailNotifier) sendWithin(mailer *gomail.Message) error {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- n.send(mailer) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *mailNotifier) dialAndSend(mailer *gomail.Message) error {
	port, err := strconv.Atoi(n.config.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		n.config.SMTPHost,
		port,
		n.config.SMTPEmail,
		n.config.SMTPPassword,
	)
	return dialer.DialAndSend(mailer)
}

func ContactInquiryBody(inquiry *entities.ContactInquiry, appURL string) string {
	var b strings.Builder
	b.WriteString("<h2>New contact inquiry</h2><ul>")
	row(&b, "Name", inquiry.Name)
	row(&b, "Phone", inquiry.Phone)
	if inquiry.Email != "" {
		row(&b, "Email", inquiry.Email)
	}
	row(&b, "Type", string(inquiry.Type))
	b.WriteString("</ul><p>")
	b.WriteString(html.EscapeString(inquiry.Message))
	b.WriteString("</p>")
	adminLink(&b, appURL)
	return b.String()
}

func FarmerRegistrationBody(farmer *entities.Farmer, appURL string) string {
	var b strings.Builder
	b.WriteString("<h2>New farmer registration</h2><ul>")
	row(&b, "Name", farmer.Name)
	row(&b, "Phone", farmer.Phone)
	row(&b, "Village", farmer.Village)
	row(&b, "District", farmer.District)
	row(&b, "Farm size (acres)", strconv.FormatFloat(farmer.FarmSize, 'f', -1, 64))
	row(&b, "Potato variety", farmer.PotatoVariety)
	b.WriteString("</ul>")
	adminLink(&b, appURL)
	return b.String()
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<li><b>%s:</b> %s</li>", label, html.EscapeString(value))
}

func adminLink(b *strings.Builder, appURL string) {
	if appURL == "" {
		return
	}
	fmt.Fprintf(b, `<p><a href="%s/admin">Open the admin panel</a></p>`, html.EscapeString(strings.TrimRight(appURL, "/")))
}
