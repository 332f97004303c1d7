package negotiatornode

import (
	"fmt"

	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
	extractx "github.com/agrovaani/negotiation-agent/agent/extract"
)

// ExtractOffer never fails on a miss: an absent price or quantity just
// leaves the offer fields unset and the engine decides ASK.
func ExtractOffer(in *GraphState) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	var offer contractx.Offer
	if price, ok := extractx.Price(in.Text); ok {
		offer.Price = price
		offer.HasPrice = true
	}
	if qty, ok := extractx.Quantity(in.Text); ok {
		offer.Qty = qty
		offer.HasQty = true
	}

	in.Offer = offer
	return in, nil
}
