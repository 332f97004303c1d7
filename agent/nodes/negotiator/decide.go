package negotiatornode

import (
	"fmt"

	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
	negotiatex "github.com/agrovaani/negotiation-agent/agent/negotiate"
)

// Decide runs the pricing engine and the psychology tagger and assembles
// the per-turn context bundle.
func Decide(in *GraphState) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	decision, reasoning := negotiatex.Decide(in.Customer, in.Product, in.ProductName, in.Offer)
	tags := negotiatex.Tags(in.Customer, in.Product)

	in.TurnCtx = contractx.TurnContext{
		Customer:    in.Customer,
		Product:     in.Product,
		ProductName: in.ProductName,
		Offer:       in.Offer,
		Decision:    decision,
		Reasoning:   reasoning,
		Tags:        tags,
	}
	return in, nil
}
