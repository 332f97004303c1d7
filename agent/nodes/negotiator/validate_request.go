package negotiatornode

import (
	"errors"
	"strings"
	"time"

	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
	statex "github.com/agrovaani/negotiation-agent/agent/state"
)

var (
	ErrInvalidMessage = errors.New("message is empty")
	ErrInvalidSession = errors.New("session id is empty")
)

type GraphInput struct {
	SessionID    string
	Channel      string
	CustomerName string
	ProductName  string
	Text         string
}

type GraphOutput struct {
	Reply   string
	Context contractx.TurnContext
}

// GraphState is threaded through the per-turn pipeline; each node fills
// in its slice of it.
type GraphState struct {
	SessionID    string
	Channel      string
	CustomerName string
	ProductName  string
	Text         string
	Now          time.Time

	Session  *statex.SessionState
	Customer contractx.Customer
	Product  contractx.Product

	Offer   contractx.Offer
	TurnCtx contractx.TurnContext
	Reply   string
}

func ValidateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrInvalidMessage
	}

	channel := strings.TrimSpace(in.Channel)
	if channel == "" {
		channel = statex.ChannelWeb
	}

	return &GraphState{
		SessionID:    sessionID,
		Channel:      channel,
		CustomerName: strings.TrimSpace(in.CustomerName),
		ProductName:  strings.TrimSpace(in.ProductName),
		Text:         text,
		Now:          nowFn().UTC(),
	}, nil
}
