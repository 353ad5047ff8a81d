// Package directory manages the set of registered accounts and their
// credentials. Credentials are a plaintext lookup table keyed by email; that
// is the documented contract for this demonstration system, not an oversight
// to patch here.
package directory

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/certhub/certhub/pkg/kvstore"
	"github.com/certhub/certhub/pkg/models"
	"github.com/certhub/certhub/pkg/session"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Directory struct {
	mu          sync.RWMutex
	store       kvstore.Store
	sessions    *session.Manager
	accounts    []models.Account
	credentials models.Credentials
}

func NewDirectory(store kvstore.Store, sessions *session.Manager) (*Directory, error) {
	d := &Directory{
		store:       store,
		sessions:    sessions,
		credentials: models.Credentials{},
	}

	raw, ok, err := store.Get(kvstore.KeyAccounts)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(raw, &d.accounts); err != nil {
			return nil, fmt.Errorf("loading accounts: %w", err)
		}
	}

	raw, ok, err = store.Get(kvstore.KeyCredentials)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(raw, &d.credentials); err != nil {
			return nil, fmt.Errorf("loading credentials: %w", err)
		}
	}

	return d, nil
}

// Register creates an account plus its credential and signs it in. Email
// comparison is exact string equality.
func (d *Directory) Register(email, password, fullName string, role models.Role) (models.Account, error) {
	if role == "" {
		role = models.RoleUser
	}
	if !role.IsValid() {
		return models.Account{}, fmt.Errorf("unknown role %q", role)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.accounts {
		if existing.Email == email {
			return models.Account{}, models.ErrDuplicateEmail
		}
	}

	account := models.Account{
		Id:        uuid.New().String(),
		Email:     email,
		FullName:  fullName,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	updated := append(append([]models.Account{}, d.accounts...), account)
	if err := d.persistAccounts(updated); err != nil {
		return models.Account{}, err
	}
	d.accounts = updated

	d.credentials[email] = password
	if err := d.persistCredentials(); err != nil {
		return models.Account{}, err
	}

	if err := d.sessions.SetCurrent(account); err != nil {
		return models.Account{}, err
	}

	logrus.Infof("registered account %s (%s)", account.Email, account.Role)
	return account, nil
}

// Authenticate checks the credential table and signs the account in. A
// missing account and a wrong password are indistinguishable to the caller.
func (d *Directory) Authenticate(email, password string) (models.Account, error) {
	d.mu.RLock()
	var found *models.Account
	for i := range d.accounts {
		if d.accounts[i].Email == email {
			found = &d.accounts[i]
			break
		}
	}

	if found == nil || d.credentials[email] != password {
		d.mu.RUnlock()
		return models.Account{}, models.ErrInvalidCredentials
	}
	account := *found
	d.mu.RUnlock()

	if err := d.sessions.SetCurrent(account); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// UpdateDisplayName changes an account's full name. It requires an active
// session and refreshes the session's cached copy when it names the same
// account.
func (d *Directory) UpdateDisplayName(accountId, fullName string) (models.Account, error) {
	current, ok := d.sessions.Current()
	if !ok {
		return models.Account{}, models.ErrNotAuthenticated
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	index := -1
	for i := range d.accounts {
		if d.accounts[i].Id == accountId {
			index = i
			break
		}
	}
	if index < 0 {
		return models.Account{}, models.ErrNotFound
	}

	updated := append([]models.Account{}, d.accounts...)
	updated[index].FullName = fullName
	if err := d.persistAccounts(updated); err != nil {
		return models.Account{}, err
	}
	d.accounts = updated

	account := updated[index]
	if current.Id == account.Id {
		if err := d.sessions.SetCurrent(account); err != nil {
			return models.Account{}, err
		}
	}

	return account, nil
}

// List returns all accounts in directory order.
func (d *Directory) List() []models.Account {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return append([]models.Account{}, d.accounts...)
}

func (d *Directory) FindById(accountId string) (models.Account, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, account := range d.accounts {
		if account.Id == accountId {
			return account, true
		}
	}
	return models.Account{}, false
}

// FirstWithRole returns the first account with the given role in directory
// order. It backs the legacy auto-pick issuance mode.
func (d *Directory) FirstWithRole(role models.Role) (models.Account, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, account := range d.accounts {
		if account.Role == role {
			return account, true
		}
	}
	return models.Account{}, false
}

func (d *Directory) persistAccounts(accounts []models.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return d.store.Set(kvstore.KeyAccounts, raw)
}

func (d *Directory) persistCredentials() error {
	raw, err := json.Marshal(d.credentials)
	if err != nil {
		return err
	}
	return d.store.Set(kvstore.KeyCredentials, raw)
}
