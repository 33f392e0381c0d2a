package contact_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parth-agrotech/domain"
	"parth-agrotech/entities"
	"parth-agrotech/internal/testutil"
	"parth-agrotech/pkg/contact"
)

type recordingNotifier struct {
	inquiries []*entities.ContactInquiry
}

func (n *recordingNotifier) NotifyContactInquiry(inquiry *entities.ContactInquiry) {
	n.inquiries = append(n.inquiries, inquiry)
}

func (n *recordingNotifier) NotifyFarmerRegistration(*entities.Farmer) {}

func (n *recordingNotifier) Wait() {}

func TestSubmitInquiry(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	svc := contact.NewContactService(contact.NewContactRepository(testutil.NewTestDB(t)), notifier)

	inquiry, err := svc.SubmitInquiry(ctx, domain.CreateContactInquiryRequest{
		Name:    "Priya",
		Phone:   "9123456780",
		Type:    entities.InquiryTypeInvestor,
		Message: "Interested in the Deesa expansion",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.InquiryStatusNew, inquiry.Status)
	assert.Empty(t, inquiry.Email)
	require.Len(t, notifier.inquiries, 1)

	list, err := svc.GetInquiries(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, inquiry.ID, list[0].ID)
}

func TestInquiryStatusAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := contact.NewContactService(contact.NewContactRepository(testutil.NewTestDB(t)), &recordingNotifier{})

	inquiry, err := svc.SubmitInquiry(ctx, domain.CreateContactInquiryRequest{
		Name:    "Vikram",
		Phone:   "9000011111",
		Email:   "vikram@example.com",
		Type:    entities.InquiryTypeFactory,
		Message: "Need 200 tons monthly",
	})
	require.NoError(t, err)

	contacted, err := svc.UpdateInquiryStatus(ctx, inquiry.ID.String(), entities.InquiryStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, entities.InquiryStatusContacted, contacted.Status)

	message := "Need 250 tons monthly"
	edited, err := svc.UpdateInquiry(ctx, inquiry.ID.String(), domain.UpdateContactInquiryRequest{Message: &message})
	require.NoError(t, err)
	assert.Equal(t, message, edited.Message)
	assert.Equal(t, entities.InquiryStatusContacted, edited.Status)

	_, err = svc.UpdateInquiryStatus(ctx, uuid.NewString(), entities.InquiryStatusClosed)
	assert.ErrorIs(t, err, domain.ErrInquiryNotFound)

	require.NoError(t, svc.DeleteInquiry(ctx, inquiry.ID.String()))
	assert.ErrorIs(t, svc.DeleteInquiry(ctx, inquiry.ID.String()), domain.ErrInquiryNotFound)
}
