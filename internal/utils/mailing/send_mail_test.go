package mailing

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"parth-agrotech/entities"
)

func newTestNotifier() *mailNotifier {
	return NewNotifier(MailConfig{
		SMTPHost:    "smtp.example.com",
		SMTPPort:    "587",
		SMTPEmail:   "noreply@parthagro.example",
		SMTPSender:  "Parth Agrotech",
		NotifyEmail: "ops@parthagro.example",
	}).(*mailNotifier)
}

func TestNewNotifierWithoutSMTPIsNoop(t *testing.T) {
	_, ok := NewNotifier(MailConfig{NotifyEmail: "ops@example.com"}).(noopNotifier)
	assert.True(t, ok)
	_, ok = NewNotifier(MailConfig{SMTPHost: "smtp.example.com"}).(noopNotifier)
	assert.True(t, ok)
}

func TestNotifierSendsToInbox(t *testing.T) {
	var (
		mu   sync.Mutex
		sent []*gomail.Message
	)
	n := newTestNotifier()
	n.send = func(m *gomail.Message) error {
		mu.Lock()
		defer mu.Unlock()
		sent = append(sent, m)
		return nil
	}

	n.NotifyContactInquiry(&entities.ContactInquiry{
		Name: "Priya", Phone: "9", Type: entities.InquiryTypeInvestor, Message: "hello",
	})
	n.Wait()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"ops@parthagro.example"}, sent[0].GetHeader("To"))
	assert.Equal(t, []string{"New investor inquiry from Priya"}, sent[0].GetHeader("Subject"))

	n.send = func(*gomail.Message) error { return errors.New("smtp down") }
	n.NotifyFarmerRegistration(&entities.Farmer{Name: "Ramesh"})
	n.Wait()
}

func TestSlowSMTPDoesNotBlockCaller(t *testing.T) {
	release := make(chan struct{})
	n := newTestNotifier()
	n.timeout = 50 * time.Millisecond
	n.send = func(*gomail.Message) error {
		<-release
		return nil
	}
	defer close(release)

	start := time.Now()
	n.NotifyFarmerRegistration(&entities.Farmer{Name: "Ramesh"})
	assert.Less(t, time.Since(start), 50*time.Millisecond)

	waited := make(chan struct{})
	go func() {
		n.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Fatal("pending mail not abandoned after the send timeout")
	}
}

func TestBodiesEscapeUserInput(t *testing.T) {
	body := ContactInquiryBody(&entities.ContactInquiry{
		Name:    "<script>",
		Phone:   "9",
		Type:    entities.InquiryTypeOther,
		Message: "a & b",
	}, "https://parthagro.example/")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "a &amp; b")
	assert.Contains(t, body, `href="https://parthagro.example/admin"`)
	assert.NotContains(t, body, "Email")

	body = FarmerRegistrationBody(&entities.Farmer{Name: "Ramesh", FarmSize: 4.5}, "")
	assert.Contains(t, body, "4.5")
	assert.NotContains(t, body, "href")
}
