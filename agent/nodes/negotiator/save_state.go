package negotiatornode

import (
	"context"
	"fmt"

	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
	statex "github.com/agrovaani/negotiation-agent/agent/state"
)

func ValidateAndSaveState(ctx context.Context, in *GraphState, store statex.Store) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	in.Session.Touch(in.Now)
	if err := in.Session.Validate(); err != nil {
		return nil, fmt.Errorf("state validation failed: %w", err)
	}
	if err := store.Save(ctx, in.Session); err != nil {
		return nil, err
	}
	return in, nil
}

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if in.Reply == "" {
		return GraphOutput{}, fmt.Errorf("%w: reply is empty", contractx.ErrValidation)
	}
	return GraphOutput{
		Reply:   in.Reply,
		Context: in.TurnCtx,
	}, nil
}
