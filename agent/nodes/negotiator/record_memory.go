package negotiatornode

import (
	"fmt"

	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
)

// RecordMemory merges what this turn revealed into the session memory
// map, then copies the merged entry into the turn context so the reply
// generator does not re-ask for it.
func RecordMemory(in *GraphState) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	var qty, offer *int
	if in.Offer.HasQty {
		qty = &in.Offer.Qty
	}
	if in.Offer.HasPrice {
		offer = &in.Offer.Price
	}
	if err := in.Session.RecordKnown(in.CustomerName, in.ProductName, qty, offer); err != nil {
		return nil, err
	}

	if entry, ok := in.Session.KnownEntry(in.CustomerName, in.ProductName); ok {
		in.TurnCtx.KnownQty = entry.Quantity
		in.TurnCtx.KnownOffer = entry.Offer
	}
	return in, nil
}
