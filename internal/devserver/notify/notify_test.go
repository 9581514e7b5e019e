package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/portfolio/internal/devserver/models"
	"github.com/dmitrijs2005/portfolio/internal/logging"
)

type fakeSender struct {
	got *resend.SendEmailRequest
	err error
}

func (f *fakeSender) SendWithContext(_ context.Context, p *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.got = p
	if f.err != nil {
		return nil, f.err
	}
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func TestResendNotifier_NotifyContact(t *testing.T) {
	fs := &fakeSender{}
	n := &ResendNotifier{emails: fs, from: "from@example.com", to: "owner@example.com"}

	err := n.NotifyContact(context.Background(), models.Contact{
		Name:    "Ann\n Lee",
		Email:   "ann@example.com",
		Phone:   "123",
		Message: "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	require.NotNil(t, fs.got)

	assert.Equal(t, "from@example.com", fs.got.From)
	assert.Equal(t, []string{"owner@example.com"}, fs.got.To)
	assert.Equal(t, "Portfolio Contact: Ann Lee", fs.got.Subject)
	assert.NotContains(t, fs.got.Html, "<script>")
	assert.Contains(t, fs.got.Html, "&lt;script&gt;")
	assert.Contains(t, fs.got.Text, "<script>alert(1)</script>")
}

func TestResendNotifier_Error(t *testing.T) {
	fs := &fakeSender{err: errors.New("quota exceeded")}
	n := &ResendNotifier{emails: fs, from: "f", to: "t"}

	err := n.NotifyContact(context.Background(), models.Contact{})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.err)
	assert.Equal(t, "Portfolio Contact: Contact Form", fs.got.Subject)
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(logging.New("info", &buf))

	require.NoError(t, n.NotifyContact(context.Background(), models.Contact{ID: 3, Name: "Ann"}))
	assert.Contains(t, buf.String(), "new contact message")
	assert.Contains(t, buf.String(), "id=3")
}

func TestNewResendNotifier(t *testing.T) {
	n := NewResendNotifier("re_test", "from@example.com", "to@example.com")
	assert.NotNil(t, n.emails)
}
