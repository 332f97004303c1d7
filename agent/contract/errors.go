package contract

import "errors"

var (
	ErrModelInvoke      = errors.New("model invoke failed")
	ErrValidation       = errors.New("validation failed")
	ErrUnknownCustomer  = errors.New("customer not in catalog")
	ErrUnknownProduct   = errors.New("product not in catalog")
	ErrCatalogViolation = errors.New("catalog invariant violated")
)
