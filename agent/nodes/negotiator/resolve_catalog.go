package negotiatornode

import (
	"fmt"

	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
)

func ResolveCatalog(in *GraphState, catalog contractx.Catalog) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	customer, ok := catalog.Customer(in.CustomerName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", contractx.ErrUnknownCustomer, in.CustomerName)
	}
	product, ok := catalog.Product(in.ProductName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", contractx.ErrUnknownProduct, in.ProductName)
	}

	in.Customer = customer
	in.Product = product
	return in, nil
}
