package state

import (
	"errors"
	"fmt"
	"time"

	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
)

// Chat channels carried by one session. Each holds an independent
// append-only history.
const (
	ChannelWeb      = "web"
	ChannelWhatsApp = "whatsapp"
	ChannelTelecall = "telecalling"
)

var channelGreetings = map[string]string{
	ChannelWeb:      "Namaste 🙏 rate aur quantity batayiye.",
	ChannelWhatsApp: "Hello 👋 WhatsApp pe deal finalize karte hain.",
	ChannelTelecall: "📞 Namaskar, main Agro AI bol raha hoon.",
}

var (
	ErrNilSessionState = errors.New("session state is nil")
	ErrInvalidSession  = errors.New("session id is empty")
	ErrUnknownChannel  = errors.New("unknown chat channel")
)

// MemoryEntry is the last quantity and offer the assistant has already
// been told for one customer/product pair. Nil means never mentioned.
type MemoryEntry struct {
	Quantity *int `json:"quantity,omitempty"`
	Offer    *int `json:"offer,omitempty"`
}

// SessionState is the whole mutable state of one user session: chat
// histories per channel plus the memory map consulted before re-asking
// for information. It is owned by the caller and passed explicitly; the
// design assumes a single writer per session.
type SessionState struct {
	SessionID string `json:"session_id"`

	Channels map[string][]contractx.Turn       `json:"channels,omitempty"`
	Known    map[string]map[string]MemoryEntry `json:"known,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewSessionState creates a session with each channel seeded by its
// greeting turn.
func NewSessionState(sessionID string, now time.Time) *SessionState {
	s := &SessionState{
		SessionID: sessionID,
		Channels:  make(map[string][]contractx.Turn, len(channelGreetings)),
		Known:     make(map[string]map[string]MemoryEntry, 4),
		UpdatedAt: now.UTC(),
	}
	for channel, greeting := range channelGreetings {
		s.Channels[channel] = []contractx.Turn{{Role: contractx.RoleAssistant, Text: greeting}}
	}
	return s
}

func (s *SessionState) Touch(now time.Time) {
	s.UpdatedAt = now.UTC()
}

// EnsureMaps makes sure the nested maps exist after a JSON round-trip.
func (s *SessionState) EnsureMaps() {
	if s.Channels == nil {
		s.Channels = make(map[string][]contractx.Turn, len(channelGreetings))
	}
	if s.Known == nil {
		s.Known = make(map[string]map[string]MemoryEntry, 4)
	}
}

// AppendTurn appends to a channel history. Histories are append-only;
// there is no way to rewrite or drop a recorded turn.
func (s *SessionState) AppendTurn(channel string, turn contractx.Turn) error {
	if s == nil {
		return ErrNilSessionState
	}
	if _, ok := channelGreetings[channel]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
	}
	s.EnsureMaps()
	s.Channels[channel] = append(s.Channels[channel], turn)
	return nil
}

// History returns the full turn sequence for a channel.
func (s *SessionState) History(channel string) []contractx.Turn {
	if s == nil || s.Channels == nil {
		return nil
	}
	return s.Channels[channel]
}

// RecentTurns returns the last n turns of a channel, oldest first.
func (s *SessionState) RecentTurns(channel string, n int) []contractx.Turn {
	history := s.History(channel)
	if n <= 0 || len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

// RecordKnown merges an observation into the memory map. Only fields
// present in the call overwrite stored values; absent fields keep their
// prior value, so a later offer never erases an earlier quantity.
// Replaying the same call leaves the entry unchanged.
func (s *SessionState) RecordKnown(customerKey, productName string, quantity, offer *int) error {
	if s == nil {
		return ErrNilSessionState
	}
	if customerKey == "" || productName == "" {
		return fmt.Errorf("%w: customer and product keys are required", contractx.ErrValidation)
	}
	s.EnsureMaps()

	byProduct, ok := s.Known[customerKey]
	if !ok {
		byProduct = make(map[string]MemoryEntry, 2)
		s.Known[customerKey] = byProduct
	}

	entry := byProduct[productName]
	if quantity != nil {
		q := *quantity
		entry.Quantity = &q
	}
	if offer != nil {
		o := *offer
		entry.Offer = &o
	}
	byProduct[productName] = entry
	return nil
}

// KnownEntry reads the memory map.
func (s *SessionState) KnownEntry(customerKey, productName string) (MemoryEntry, bool) {
	if s == nil || s.Known == nil {
		return MemoryEntry{}, false
	}
	byProduct, ok := s.Known[customerKey]
	if !ok {
		return MemoryEntry{}, false
	}
	entry, ok := byProduct[productName]
	return entry, ok
}

// Channels are fixed, so a loaded state can be checked cheaply.
func (s *SessionState) Validate() error {
	if s == nil {
		return ErrNilSessionState
	}
	if s.SessionID == "" {
		return ErrInvalidSession
	}
	for channel := range s.Channels {
		if _, ok := channelGreetings[channel]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
		}
	}
	return nil
}

// ChannelNames lists the supported chat channels.
func ChannelNames() []string {
	return []string{ChannelWeb, ChannelWhatsApp, ChannelTelecall}
}
