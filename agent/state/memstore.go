package state

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// MapStore is an in-process Store for single-binary runs and tests.
// States are stored as JSON so callers never share a live pointer with
// the store.
type MapStore struct {
	mu     sync.RWMutex
	states map[string][]byte
}

var _ Store = (*MapStore)(nil)

func NewMapStore() *MapStore {
	return &MapStore{states: make(map[string][]byte, 4)}
}

func (s *MapStore) Load(_ context.Context, sessionID string) (*SessionState, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}

	s.mu.RLock()
	payload, ok := s.states[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrStateNotFound
	}

	var st SessionState
	if err := json.Unmarshal(payload, &st); err != nil {
		return nil, fmt.Errorf("unmarshal session state: %w", err)
	}
	st.EnsureMaps()
	return &st, nil
}

func (s *MapStore) Save(_ context.Context, st *SessionState) error {
	if st == nil {
		return ErrNilSessionState
	}
	if strings.TrimSpace(st.SessionID) == "" {
		return ErrInvalidSession
	}

	payload, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}

	s.mu.Lock()
	s.states[st.SessionID] = payload
	s.mu.Unlock()
	return nil
}

func (s *MapStore) Delete(_ context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrInvalidSession
	}
	s.mu.Lock()
	delete(s.states, sessionID)
	s.mu.Unlock()
	return nil
}
