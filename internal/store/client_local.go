package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/matu-sky/qrcode1/models"
)

// localStateStorage is the file-backed implementation of [LocalStateStorage]
// used by the terminal client. State lives in a single JSON document that is
// rewritten atomically-enough for a single-user desktop tool; an empty path
// keeps everything in memory (useful in tests).
type localStateStorage struct {
	path     string
	inMemory bool

	mu      sync.RWMutex
	drafts  map[string]models.MenuDocument
	session *models.LocalSession
}

type localPersistedState struct {
	Drafts  map[string]models.MenuDocument `json:"drafts"`
	Session *models.LocalSession           `json:"session,omitempty"`
}

// NewLocalStateStorage opens (or initialises) the client state file at path.
// The special values "" and ":memory:" select a non-persistent store.
func NewLocalStateStorage(path string) (LocalStateStorage, error) {
	inMemory := path == "" || path == ":memory:"
	s := &localStateStorage{
		path:     path,
		inMemory: inMemory,
		drafts:   make(map[string]models.MenuDocument),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *localStateStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local state file: %w", err)
	}

	var st localPersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode local state file: %w", err)
	}

	if st.Drafts == nil {
		st.Drafts = make(map[string]models.MenuDocument)
	}

	s.drafts = st.Drafts
	s.session = st.Session

	return nil
}

func (s *localStateStorage) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local state dir: %w", err)
		}
	}

	state := localPersistedState{Drafts: s.drafts, Session: s.session}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local state: %w", err)
	}

	// 0600: the file holds a bearer token
	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write local state file: %w", err)
	}

	return nil
}

// SaveSession caches the signed-in user's token.
func (s *localStateStorage) SaveSession(userID int64, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = &models.LocalSession{UserID: userID, Token: token, At: time.Now()}
	return s.persist()
}

// Session returns the cached session or [ErrLocalSessionNotFound].
func (s *localStateStorage) Session() (models.LocalSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	return *s.session, nil
}

// ClearSession forgets the cached token, e.g. after the server rejects it.
func (s *localStateStorage) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	return s.persist()
}

// SaveDraft stores a locally edited menu document under key. The key is the
// server record UUID for saved menus, or a client-chosen name for menus that
// have never been uploaded.
func (s *localStateStorage) SaveDraft(key string, document models.MenuDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts[key] = document
	return s.persist()
}

// Draft returns the stored draft under key, if any.
func (s *localStateStorage) Draft(key string) (models.MenuDocument, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	document, ok := s.drafts[key]
	return document, ok
}

// Drafts returns a copy of all stored drafts keyed by record id or name.
func (s *localStateStorage) Drafts() map[string]models.MenuDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]models.MenuDocument, len(s.drafts))
	for k, v := range s.drafts {
		out[k] = v
	}
	return out
}

// DeleteDraft removes the draft under key. Deleting a missing key is a no-op.
func (s *localStateStorage) DeleteDraft(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, key)
	return s.persist()
}
