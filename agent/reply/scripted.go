package reply

import (
	"context"
	"fmt"

	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
)

// ScriptedGenerator produces canned replies from the decision alone, for
// runs without model credentials. The wording is plain on purpose; the
// persona lives in the model-backed generator.
type ScriptedGenerator struct{}

var _ contractx.ReplyGenerator = ScriptedGenerator{}

func (ScriptedGenerator) Generate(
	_ context.Context,
	turnCtx contractx.TurnContext,
	_ []contractx.Turn,
) (string, error) {
	switch turnCtx.Decision {
	case contractx.DecisionAccept:
		return fmt.Sprintf("Done, %s at your price. Shall I book the order?", turnCtx.ProductName), nil
	case contractx.DecisionCounter:
		return fmt.Sprintf("That rate is tough for %s. I can do ₹%d, best I can offer.",
			turnCtx.ProductName, turnCtx.Reasoning.TargetPrice), nil
	case contractx.DecisionWalkAway:
		return fmt.Sprintf("Below ₹%d on %s I would be selling at a loss. Let me know if you reconsider.",
			turnCtx.Reasoning.Floor, turnCtx.ProductName), nil
	default:
		return fmt.Sprintf("What price and quantity of %s are you looking at?", turnCtx.ProductName), nil
	}
}
