package negotiatornode

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
)

const recentTurnWindow = 10

// AppendCustomerTurn records the incoming message before generation so
// the model sees it as the latest user turn.
func AppendCustomerTurn(in *GraphState) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}
	if err := in.Session.AppendTurn(in.Channel, contractx.Turn{
		Role: contractx.RoleCustomer,
		Text: in.Text,
	}); err != nil {
		return nil, err
	}
	return in, nil
}

// GenerateReply invokes the external reply generator. A failure here
// aborts the pipeline before anything is saved, so a failed reply never
// corrupts chat history or session memory.
func GenerateReply(ctx context.Context, in *GraphState, generator contractx.ReplyGenerator) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	recent := in.Session.RecentTurns(in.Channel, recentTurnWindow)
	text, err := generator.Generate(ctx, in.TurnCtx, recent)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: generator returned empty reply", contractx.ErrModelInvoke)
	}

	in.Reply = text
	return in, nil
}

func AppendAssistantTurn(in *GraphState) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}
	if err := in.Session.AppendTurn(in.Channel, contractx.Turn{
		Role: contractx.RoleAssistant,
		Text: in.Reply,
	}); err != nil {
		return nil, err
	}
	return in, nil
}
