package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Local storage keys. The draft and the two editing markers are essential:
// losing them loses unsaved user work or the ability to resume an
// interrupted session. Everything else can be refetched from the server.
const (
	DraftKey       = "cardfolio.draft"
	CollectionKey  = "cardfolio.collection"
	EditingCardKey = "cardfolio.editing_card"
	CreatingNewKey = "cardfolio.creating_new"
)

func isEssentialKey(key string) bool {
	switch key {
	case DraftKey, EditingCardKey, CreatingNewKey:
		return true
	}
	return false
}

type localFileStorage struct {
	path     string
	quota    int64
	inMemory bool

	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

// NewLocalStorage opens (or creates) the client's local storage file at
// path with the given byte quota. An empty path or ":memory:" yields a
// volatile in-memory store, used in tests.
func NewLocalStorage(path string, quota int64) (LocalStorage, error) {
	inMemory := path == "" || path == ":memory:"
	s := &localFileStorage{
		path:     path,
		quota:    quota,
		inMemory: inMemory,
		entries:  make(map[string]json.RawMessage),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *localFileStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var entries map[string]json.RawMessage
	if err = json.Unmarshal(data, &entries); err != nil {
		// A corrupt file must not brick the client: the entries it held
		// are all recoverable or re-enterable, so start fresh.
		return nil
	}
	if entries != nil {
		s.entries = entries
	}

	return nil
}

func (s *localFileStorage) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	payload, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}

	return nil
}

// serializedSize reports the byte size the current entries would occupy on
// disk. Caller must hold at least the read lock.
func (s *localFileStorage) serializedSize() int64 {
	payload, err := json.Marshal(s.entries)
	if err != nil {
		return 0
	}
	return int64(len(payload))
}

func (s *localFileStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocalKeyNotFound, key)
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *localFileStorage) Set(key string, value []byte) error {
	if !json.Valid(value) {
		// Values are embedded verbatim into the storage JSON document, so
		// arbitrary bytes are stored as a JSON string.
		encoded, err := json.Marshal(string(value))
		if err != nil {
			return fmt.Errorf("encode local storage value: %w", err)
		}
		value = encoded
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, hadPrevious := s.entries[key]
	s.entries[key] = json.RawMessage(value)

	if s.quota > 0 && s.serializedSize() > s.quota {
		// roll back, leave the store as it was
		if hadPrevious {
			s.entries[key] = previous
		} else {
			delete(s.entries, key)
		}
		return fmt.Errorf("%w: key %s", ErrLocalQuotaExceeded, key)
	}

	return s.persist()
}

func (s *localFileStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return nil
	}

	delete(s.entries, key)
	return s.persist()
}

func (s *localFileStorage) Size() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.serializedSize()
}

func (s *localFileStorage) ClearNonEssential() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.serializedSize()

	for key := range s.entries {
		if !isEssentialKey(key) {
			delete(s.entries, key)
		}
	}

	reclaimed := before - s.serializedSize()
	if err := s.persist(); err != nil {
		return 0, err
	}

	return reclaimed, nil
}

func (s *localFileStorage) Flush() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persist()
}
