// Package session tracks the currently authenticated account for the running
// process. There is at most one active account at a time; the snapshot is
// persisted so a restart resumes the session.
package session

import (
	"encoding/json"
	"sync"

	"github.com/certhub/certhub/pkg/kvstore"
	"github.com/certhub/certhub/pkg/models"
	"github.com/sirupsen/logrus"
)

type Manager struct {
	mu      sync.RWMutex
	store   kvstore.Store
	current *models.Account
}

func NewManager(store kvstore.Store) *Manager {
	return &Manager{store: store}
}

// Restore loads the persisted snapshot, if any. A snapshot referencing an
// account the validate callback no longer knows about is discarded.
func (m *Manager) Restore(validate func(accountId string) bool) error {
	raw, ok, err := m.store.Get(kvstore.KeySession)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	var account models.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		logrus.Warnf("discarding malformed session snapshot: %v", err)
		return m.store.Remove(kvstore.KeySession)
	}

	if validate != nil && !validate(account.Id) {
		logrus.Warnf("discarding session for unknown account %s", account.Id)
		return m.store.Remove(kvstore.KeySession)
	}

	m.mu.Lock()
	m.current = &account
	m.mu.Unlock()
	return nil
}

// Current returns the authenticated account, or false when anonymous.
func (m *Manager) Current() (models.Account, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return models.Account{}, false
	}
	return *m.current, true
}

// SetCurrent transitions to Authenticated and persists the snapshot.
func (m *Manager) SetCurrent(account models.Account) error {
	raw, err := json.Marshal(&account)
	if err != nil {
		return err
	}
	if err := m.store.Set(kvstore.KeySession, raw); err != nil {
		return err
	}

	m.mu.Lock()
	m.current = &account
	m.mu.Unlock()
	return nil
}

// Clear transitions to Anonymous and removes the persisted snapshot.
func (m *Manager) Clear() error {
	if err := m.store.Remove(kvstore.KeySession); err != nil {
		return err
	}

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	return nil
}
