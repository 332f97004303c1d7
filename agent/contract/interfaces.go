package contract

import "context"

// ReplyGenerator is the external language-model collaborator. It receives
// the per-turn context and the last few role-tagged turns and returns the
// assistant's natural-language reply. It may fail or be slow; callers must
// not record anything when it errors.
type ReplyGenerator interface {
	Generate(ctx context.Context, turnCtx TurnContext, recent []Turn) (string, error)
}

// Catalog is the read-only reference data surface: customers and products
// loaded once at startup.
type Catalog interface {
	Customer(name string) (Customer, bool)
	Product(name string) (Product, bool)
	CustomerNames() []string
	ProductNames() []string
}
