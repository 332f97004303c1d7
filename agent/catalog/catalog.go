package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
)

//go:embed data/catalog.yaml
var seedRaw []byte

// Catalog holds the static customer and product reference data. It is
// built once at startup and read-only afterwards.
type Catalog struct {
	customers map[string]contractx.Customer
	products  map[string]contractx.Product
}

var _ contractx.Catalog = (*Catalog)(nil)

type document struct {
	Customers []contractx.Customer `yaml:"customers"`
	Products  []contractx.Product  `yaml:"products"`
}

// LoadSeed parses the embedded seed catalog.
func LoadSeed() (*Catalog, error) {
	return Parse(seedRaw)
}

// MustLoadSeed panics on a malformed embed; the seed ships with the binary.
func MustLoadSeed() *Catalog {
	c, err := LoadSeed()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes a YAML catalog document and validates it.
func Parse(raw []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Customers, doc.Products)
}

// New builds a Catalog from already-decoded rows.
func New(customers []contractx.Customer, products []contractx.Product) (*Catalog, error) {
	c := &Catalog{
		customers: make(map[string]contractx.Customer, len(customers)),
		products:  make(map[string]contractx.Product, len(products)),
	}

	for _, p := range products {
		if err := validateProduct(p); err != nil {
			return nil, err
		}
		c.products[p.Name] = p
	}
	for _, cu := range customers {
		if cu.Name == "" {
			return nil, fmt.Errorf("%w: customer with empty name", contractx.ErrCatalogViolation)
		}
		if cu.PurchaseHistory == nil {
			cu.PurchaseHistory = map[string]contractx.PurchaseRecord{}
		}
		c.customers[cu.Name] = cu
	}
	return c, nil
}

func validateProduct(p contractx.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: product with empty name", contractx.ErrCatalogViolation)
	}
	if p.Cost >= p.Floor || p.Floor > p.Ideal {
		return fmt.Errorf("%w: product %s requires cost < floor <= ideal (cost=%d floor=%d ideal=%d)",
			contractx.ErrCatalogViolation, p.Name, p.Cost, p.Floor, p.Ideal)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: product %s has negative stock", contractx.ErrCatalogViolation, p.Name)
	}
	return nil
}

func (c *Catalog) Customer(name string) (contractx.Customer, bool) {
	cu, ok := c.customers[name]
	return cu, ok
}

func (c *Catalog) Product(name string) (contractx.Product, bool) {
	p, ok := c.products[name]
	return p, ok
}

func (c *Catalog) CustomerNames() []string {
	names := make([]string, 0, len(c.customers))
	for name := range c.customers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) ProductNames() []string {
	names := make([]string, 0, len(c.products))
	for name := range c.products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
