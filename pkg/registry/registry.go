// Package registry is the collection of issued certificates: issuance,
// delivery tracking, per-account listing, and the public verify-by-number
// lookup.
package registry

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/certhub/certhub/pkg/kvstore"
	"github.com/certhub/certhub/pkg/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EventResolver resolves the owning event at issuance time.
type EventResolver interface {
	FindById(eventId string) (models.Event, bool)
}

// Recipients resolves recipient accounts. The directory implements it.
type Recipients interface {
	FindById(accountId string) (models.Account, bool)
	FirstWithRole(role models.Role) (models.Account, bool)
}

// Archiver stores a rendered copy of an issued certificate somewhere
// external. Archive failures never fail issuance.
type Archiver interface {
	Archive(certificate models.Certificate, recipient models.Account) error
}

type Registry struct {
	mu           sync.RWMutex
	store        kvstore.Store
	events       EventResolver
	recipients   Recipients
	archiver     Archiver
	autopick     bool
	certificates []models.Certificate
}

func NewRegistry(store kvstore.Store, events EventResolver, recipients Recipients, autopick bool) (*Registry, error) {
	r := &Registry{
		store:      store,
		events:     events,
		recipients: recipients,
		autopick:   autopick,
	}

	raw, ok, err := store.Get(kvstore.KeyCertificates)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(raw, &r.certificates); err != nil {
			return nil, fmt.Errorf("loading certificates: %w", err)
		}
	}

	return r, nil
}

func (r *Registry) SetArchiver(archiver Archiver) {
	r.archiver = archiver
}

// Issue creates a certificate for the event. An empty recipient id is only
// accepted in auto-pick mode, where the first user-role account in directory
// order gets the certificate.
func (r *Registry) Issue(eventId, recipientId string) (models.Certificate, error) {
	event, ok := r.events.FindById(eventId)
	if !ok {
		return models.Certificate{}, models.ErrNotFound
	}

	var recipient models.Account
	if recipientId == "" {
		if !r.autopick {
			return models.Certificate{}, fmt.Errorf("recipient account id is required")
		}
		recipient, ok = r.recipients.FirstWithRole(models.RoleUser)
		if !ok {
			return models.Certificate{}, models.ErrNoEligibleRecipient
		}
	} else {
		recipient, ok = r.recipients.FindById(recipientId)
		if !ok {
			return models.Certificate{}, models.ErrNotFound
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	number := NewCertificateNumber()
	for r.numberTaken(number) {
		number = NewCertificateNumber()
	}

	certificate := models.Certificate{
		Id:                uuid.New().String(),
		EventId:           event.Id,
		UserId:            recipient.Id,
		CertificateNumber: number,
		IssuedAt:          time.Now().UTC(),
		Verified:          true,
		DeliveryStatus:    models.DeliveryPending,
		EventTitle:        event.Title,
	}

	updated := append(append([]models.Certificate{}, r.certificates...), certificate)
	if err := r.persist(updated); err != nil {
		return models.Certificate{}, err
	}
	r.certificates = updated

	if r.archiver != nil {
		if err := r.archiver.Archive(certificate, recipient); err != nil {
			logrus.Warnf("could not archive certificate %s: %v", certificate.CertificateNumber, err)
		}
	}

	logrus.Infof("issued certificate %s for %s to %s", certificate.CertificateNumber, event.Title, recipient.Email)
	return certificate, nil
}

// UpdateDeliveryStatus sets the delivery status. Any of pending, sent or
// delivered is accepted; no transition graph is enforced.
func (r *Registry) UpdateDeliveryStatus(certificateId string, status models.DeliveryStatus) (models.Certificate, error) {
	if !status.IsValid() {
		return models.Certificate{}, fmt.Errorf("unknown delivery status %q", status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	index := -1
	for i := range r.certificates {
		if r.certificates[i].Id == certificateId {
			index = i
			break
		}
	}
	if index < 0 {
		return models.Certificate{}, models.ErrNotFound
	}

	updated := append([]models.Certificate{}, r.certificates...)
	updated[index].DeliveryStatus = status
	if err := r.persist(updated); err != nil {
		return models.Certificate{}, err
	}
	r.certificates = updated

	return updated[index], nil
}

// VerifyByNumber is the public lookup keyed by the human-facing certificate
// number. It requires no session.
func (r *Registry) VerifyByNumber(certificateNumber string) (models.Certificate, error) {
	number := strings.TrimSpace(certificateNumber)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, certificate := range r.certificates {
		if certificate.CertificateNumber == number {
			return certificate, nil
		}
	}
	return models.Certificate{}, models.ErrNotFound
}

// ListForAccount returns the certificates issued to the account, in storage
// order.
func (r *Registry) ListForAccount(accountId string) []models.Certificate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Certificate
	for _, certificate := range r.certificates {
		if certificate.UserId == accountId {
			out = append(out, certificate)
		}
	}
	return out
}

// List returns every certificate, in storage order.
func (r *Registry) List() []models.Certificate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.Certificate{}, r.certificates...)
}

// DeleteForEvent removes every certificate referencing the event. The
// catalog calls this when an event is deleted.
func (r *Registry) DeleteForEvent(eventId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var kept []models.Certificate
	for _, certificate := range r.certificates {
		if certificate.EventId != eventId {
			kept = append(kept, certificate)
		}
	}
	if len(kept) == len(r.certificates) {
		return nil
	}

	if err := r.persist(kept); err != nil {
		return err
	}
	r.certificates = kept
	return nil
}

func (r *Registry) numberTaken(number string) bool {
	for _, certificate := range r.certificates {
		if certificate.CertificateNumber == number {
			return true
		}
	}
	return false
}

func (r *Registry) persist(certificates []models.Certificate) error {
	raw, err := json.Marshal(certificates)
	if err != nil {
		return err
	}
	return r.store.Set(kvstore.KeyCertificates, raw)
}
