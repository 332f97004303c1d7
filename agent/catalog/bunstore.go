package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
)

// PostgresConfig configures the optional database-backed catalog source.
// When DSN is empty the caller falls back to the embedded seed.
type PostgresConfig struct {
	DSN     string        `envconfig:"DSN" split_words:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

type customerRow struct {
	bun.BaseModel `bun:"table:customers"`
	contractx.Customer
}

type productRow struct {
	bun.BaseModel `bun:"table:products"`
	contractx.Product
}

// PostgresStore reads the customer and product reference data from
// Postgres. It is a load-once source; the in-memory Catalog it produces is
// the read surface for the rest of the process.
type PostgresStore struct {
	db *bun.DB
}

func NewPostgresStore(cfg PostgresConfig) (*PostgresStore, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("%w: postgres dsn is required", contractx.ErrValidation)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(timeout),
	))
	return &PostgresStore{db: bun.NewDB(sqldb, pgdialect.New())}, nil
}

// Load fetches all customers and products and builds a validated Catalog.
func (s *PostgresStore) Load(ctx context.Context) (*Catalog, error) {
	var customers []customerRow
	if err := s.db.NewSelect().Model(&customers).Scan(ctx); err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}

	var products []productRow
	if err := s.db.NewSelect().Model(&products).Scan(ctx); err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	cs := make([]contractx.Customer, 0, len(customers))
	for _, row := range customers {
		cs = append(cs, row.Customer)
	}
	ps := make([]contractx.Product, 0, len(products))
	for _, row := range products {
		ps = append(ps, row.Product)
	}
	return New(cs, ps)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
