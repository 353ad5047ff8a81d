package kvstore

import "sync"

// Memory is an in-process Store. It backs demo mode and tests.
type Memory struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{records: map[string][]byte{}}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.records[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.records[key] = stored
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, key)
	return nil
}
