package registry

import (
	"regexp"
	"testing"

	"github.com/certhub/certhub/pkg/kvstore"
	"github.com/certhub/certhub/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeEvents struct {
	events map[string]models.Event
}

func (f *fakeEvents) FindById(eventId string) (models.Event, bool) {
	event, ok := f.events[eventId]
	return event, ok
}

type fakeRecipients struct {
	accounts []models.Account
}

func (f *fakeRecipients) FindById(accountId string) (models.Account, bool) {
	for _, account := range f.accounts {
		if account.Id == accountId {
			return account, true
		}
	}
	return models.Account{}, false
}

func (f *fakeRecipients) FirstWithRole(role models.Role) (models.Account, bool) {
	for _, account := range f.accounts {
		if account.Role == role {
			return account, true
		}
	}
	return models.Account{}, false
}

type recordingArchiver struct {
	archived []models.Certificate
	err      error
}

func (a *recordingArchiver) Archive(certificate models.Certificate, recipient models.Account) error {
	a.archived = append(a.archived, certificate)
	return a.err
}

func newTestRegistry(t *testing.T, autopick bool) (*Registry, kvstore.Store) {
	t.Helper()
	store := kvstore.NewMemory()
	events := &fakeEvents{events: map[string]models.Event{
		"ev-1": {Id: "ev-1", Title: "Workshop", EventDate: "2025-01-01"},
	}}
	recipients := &fakeRecipients{accounts: []models.Account{
		{Id: "adm-1", Email: "a@x.com", Role: models.RoleAdmin},
		{Id: "usr-1", Email: "b@x.com", Role: models.RoleUser},
		{Id: "usr-2", Email: "c@x.com", Role: models.RoleUser},
	}}

	r, err := NewRegistry(store, events, recipients, autopick)
	require.NoError(t, err)
	return r, store
}

func TestIssueUnknownEvent(t *testing.T) {
	r, _ := newTestRegistry(t, false)

	_, err := r.Issue("no-such-event", "usr-1")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Empty(t, r.List())
}

func TestIssueUnknownRecipient(t *testing.T) {
	r, _ := newTestRegistry(t, false)

	_, err := r.Issue("ev-1", "no-such-account")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestIssueRequiresRecipientWithoutAutopick(t *testing.T) {
	r, _ := newTestRegistry(t, false)

	_, err := r.Issue("ev-1", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrNoEligibleRecipient)
}

func TestIssueSetsCertificateFields(t *testing.T) {
	r, _ := newTestRegistry(t, false)

	certificate, err := r.Issue("ev-1", "usr-1")
	require.NoError(t, err)
	assert.NotEmpty(t, certificate.Id)
	assert.Equal(t, "ev-1", certificate.EventId)
	assert.Equal(t, "usr-1", certificate.UserId)
	assert.Equal(t, "Workshop", certificate.EventTitle)
	assert.True(t, certificate.Verified)
	assert.Equal(t, models.DeliveryPending, certificate.DeliveryStatus)
	assert.False(t, certificate.IssuedAt.IsZero())
}

func TestCertificateNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^CERT-\d+-[0-9A-Z]{9}$`)

	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, NewCertificateNumber())
	}
}

func TestIssueThenVerifyRoundTrip(t *testing.T) {
	r, _ := newTestRegistry(t, false)

	issued, err := r.Issue("ev-1", "usr-1")
	require.NoError(t, err)

	verified, err := r.VerifyByNumber(issued.CertificateNumber)
	require.NoError(t, err)
	assert.Equal(t, issued, verified)
}

func TestVerifyTrimsWhitespace(t *testing.T) {
	r, _ := newTestRegistry(t, false)

	issued, err := r.Issue("ev-1", "usr-1")
	require.NoError(t, err)

	verified, err := r.VerifyByNumber("  " + issued.CertificateNumber + " ")
	require.NoError(t, err)
	assert.Equal(t, issued.Id, verified.Id)
}

func TestVerifyUnknownNumber(t *testing.T) {
	r, _ := newTestRegistry(t, false)

	_, err := r.VerifyByNumber("CERT-0-XXXXXXXXX")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateDeliveryStatus(t *testing.T) {
	r, _ := newTestRegistry(t, false)

	issued, err := r.Issue("ev-1", "usr-1")
	require.NoError(t, err)

	updated, err := r.UpdateDeliveryStatus(issued.Id, models.DeliveryDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryDelivered, updated.DeliveryStatus)

	// the public lookup reflects the change
	verified, err := r.VerifyByNumber(issued.CertificateNumber)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryDelivered, verified.DeliveryStatus)

	// no transition graph: back to pending is accepted
	updated, err = r.UpdateDeliveryStatus(issued.Id, models.DeliveryPending)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryPending, updated.DeliveryStatus)
}

func TestUpdateDeliveryStatusRejectsUnknownValue(t *testing.T) {
	r, _ := newTestRegistry(t, false)

	issued, err := r.Issue("ev-1", "usr-1")
	require.NoError(t, err)

	_, err = r.UpdateDeliveryStatus(issued.Id, "lost")
	assert.Error(t, err)
}

func TestUpdateDeliveryStatusUnknownCertificate(t *testing.T) {
	r, _ := newTestRegistry(t, false)

	_, err := r.UpdateDeliveryStatus("no-such-id", models.DeliverySent)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListForAccount(t *testing.T) {
	r, _ := newTestRegistry(t, false)

	first, err := r.Issue("ev-1", "usr-1")
	require.NoError(t, err)
	_, err = r.Issue("ev-1", "usr-2")
	require.NoError(t, err)
	second, err := r.Issue("ev-1", "usr-1")
	require.NoError(t, err)

	own := r.ListForAccount("usr-1")
	require.Len(t, own, 2)
	assert.Equal(t, first.Id, own[0].Id)
	assert.Equal(t, second.Id, own[1].Id)

	assert.Empty(t, r.ListForAccount("adm-1"))
}

func TestDeleteForEventRemovesExactlyMatching(t *testing.T) {
	r, _ := newTestRegistry(t, false)
	r.events.(*fakeEvents).events["ev-2"] = models.Event{Id: "ev-2", Title: "Summit"}

	_, err := r.Issue("ev-1", "usr-1")
	require.NoError(t, err)
	kept, err := r.Issue("ev-2", "usr-1")
	require.NoError(t, err)
	_, err = r.Issue("ev-1", "usr-2")
	require.NoError(t, err)

	require.NoError(t, r.DeleteForEvent("ev-1"))

	remaining := r.List()
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.Id, remaining[0].Id)

	// no matches is a no-op
	require.NoError(t, r.DeleteForEvent("ev-1"))
	assert.Len(t, r.List(), 1)
}

func TestAutopickIssuesToFirstUserAccount(t *testing.T) {
	r, _ := newTestRegistry(t, true)

	certificate, err := r.Issue("ev-1", "")
	require.NoError(t, err)
	assert.Equal(t, "usr-1", certificate.UserId)
}

func TestAutopickNoEligibleRecipient(t *testing.T) {
	store := kvstore.NewMemory()
	events := &fakeEvents{events: map[string]models.Event{"ev-1": {Id: "ev-1", Title: "Workshop"}}}
	recipients := &fakeRecipients{accounts: []models.Account{{Id: "adm-1", Role: models.RoleAdmin}}}
	r, err := NewRegistry(store, events, recipients, true)
	require.NoError(t, err)

	_, err = r.Issue("ev-1", "")
	assert.ErrorIs(t, err, models.ErrNoEligibleRecipient)
}

func TestArchiverFailureDoesNotFailIssuance(t *testing.T) {
	r, _ := newTestRegistry(t, false)
	archiver := &recordingArchiver{err: assert.AnError}
	r.SetArchiver(archiver)

	certificate, err := r.Issue("ev-1", "usr-1")
	require.NoError(t, err)
	require.Len(t, archiver.archived, 1)
	assert.Equal(t, certificate.Id, archiver.archived[0].Id)
}

func TestRegistryReloadsFromStore(t *testing.T) {
	r, store := newTestRegistry(t, false)

	issued, err := r.Issue("ev-1", "usr-1")
	require.NoError(t, err)

	reloaded, err := NewRegistry(store, r.events, r.recipients, false)
	require.NoError(t, err)

	verified, err := reloaded.VerifyByNumber(issued.CertificateNumber)
	require.NoError(t, err)
	assert.Equal(t, issued.Id, verified.Id)
	assert.Equal(t, issued.EventTitle, verified.EventTitle)
	assert.True(t, issued.IssuedAt.Equal(verified.IssuedAt))
}
