// Package kvstore provides the persistence boundary for certhub: a flat
// mapping from string keys to serialized JSON values. Each top-level
// collection (accounts, credentials, session, events, certificates) lives
// under one stable key and is rewritten whole on every mutation.
package kvstore

// Keys for the persisted collections. The layout matches the original
// browser-local storage dump so existing data is loadable.
const (
	KeyAccounts     = "accounts"
	KeyCredentials  = "credentials"
	KeySession      = "current_session"
	KeyEvents       = "events"
	KeyCertificates = "certificates"
)

type Store interface {
	// Get returns the raw value for key; the second return is false if the
	// key is absent.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Remove(key string) error
}
