// Package negotiator wires the per-turn pipeline: extraction, pricing
// decision, psychology tagging, session memory, and reply generation.
package negotiator

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"

	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
	nodex "github.com/agrovaani/negotiation-agent/agent/nodes/negotiator"
	statex "github.com/agrovaani/negotiation-agent/agent/state"
)

var (
	ErrInvalidMessage = nodex.ErrInvalidMessage
	ErrInvalidSession = nodex.ErrInvalidSession
)

// TurnRequest is one customer message addressed to a (customer, product)
// pair on one chat channel of a session.
type TurnRequest struct {
	SessionID    string
	Channel      string
	CustomerName string
	ProductName  string
	Text         string
}

// TurnResult carries the assistant reply plus the full decision trace for
// diagnostic display.
type TurnResult struct {
	Reply   string
	Context contractx.TurnContext
}

type Negotiator struct {
	store     statex.Store
	catalog   contractx.Catalog
	generator contractx.ReplyGenerator

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	now func() time.Time
}

func New(store statex.Store, catalog contractx.Catalog, generator contractx.ReplyGenerator) (*Negotiator, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	if catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if generator == nil {
		return nil, errors.New("reply generator is required")
	}

	n := &Negotiator{
		store:     store,
		catalog:   catalog,
		generator: generator,
		now:       time.Now,
	}

	graphRunner, err := n.compileHandleTurnGraph(context.Background())
	if err != nil {
		return nil, err
	}
	n.graphRunner = graphRunner

	return n, nil
}

// HandleTurn runs one chat turn through the pipeline.
func (n *Negotiator) HandleTurn(ctx context.Context, req TurnRequest) (TurnResult, error) {
	out, err := n.graphRunner.Invoke(ctx, nodex.GraphInput{
		SessionID:    req.SessionID,
		Channel:      req.Channel,
		CustomerName: req.CustomerName,
		ProductName:  req.ProductName,
		Text:         req.Text,
	})
	if err != nil {
		return TurnResult{}, err
	}

	log.Debug().
		Str("session_id", req.SessionID).
		Str("channel", req.Channel).
		Str("product", req.ProductName).
		Str("decision", string(out.Context.Decision)).
		Int("target_price", out.Context.Reasoning.TargetPrice).
		Msg("turn handled")

	return TurnResult{Reply: out.Reply, Context: out.Context}, nil
}
