package contract

// Product is static reference data. Prices are whole currency units (INR).
// Invariant: Cost < Floor <= Ideal.
type Product struct {
	Name      string `json:"name" yaml:"name" bun:"name,pk"`
	Cost      int    `json:"cost" yaml:"cost" bun:"cost"`
	Ideal     int    `json:"ideal" yaml:"ideal" bun:"ideal"`
	Floor     int    `json:"floor" yaml:"floor" bun:"floor"`
	Stock     int    `json:"stock" yaml:"stock" bun:"stock"`
	Condition string `json:"condition" yaml:"condition" bun:"condition"`
}

// PurchaseRecord is the last known deal for a customer on one product.
type PurchaseRecord struct {
	Price int `json:"price" yaml:"price" bun:"price"`
	Qty   int `json:"qty" yaml:"qty" bun:"qty"`
}

type CustomerType string

const (
	CustomerRegular CustomerType = "Regular"
	CustomerNew     CustomerType = "New"
	CustomerBulk    CustomerType = "Bulk"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Customer is static reference data, read-only for the session lifetime.
type Customer struct {
	Name            string                    `json:"name" yaml:"name" bun:"name,pk"`
	Type            CustomerType              `json:"type" yaml:"type" bun:"type"`
	Risk            RiskLevel                 `json:"risk" yaml:"risk" bun:"risk"`
	Language        string                    `json:"language" yaml:"language" bun:"language"`
	PurchaseHistory map[string]PurchaseRecord `json:"purchase_history" yaml:"purchase_history" bun:"purchase_history,type:jsonb"`
}

// Offer is what the extractor pulled out of one customer turn. Price and
// Qty are each optional; HasPrice/HasQty distinguish zero from absent.
type Offer struct {
	Price    int  `json:"price,omitempty"`
	HasPrice bool `json:"has_price"`
	Qty      int  `json:"qty,omitempty"`
	HasQty   bool `json:"has_qty"`
}

type Decision string

const (
	DecisionAsk      Decision = "ASK"
	DecisionAccept   Decision = "ACCEPT"
	DecisionCounter  Decision = "COUNTER"
	DecisionWalkAway Decision = "WALK_AWAY"
)

// Reasoning is the full pricing trace for one turn. It is populated for
// every decision, including ASK.
type Reasoning struct {
	LastPrice      int `json:"last_price"`
	LastQty        int `json:"last_qty"`
	TargetPrice    int `json:"target_price"`
	Floor          int `json:"floor"`
	Cost           int `json:"cost"`
	ExpectedMargin int `json:"expected_margin"`
}

type Role string

const (
	RoleCustomer  Role = "customer"
	RoleAssistant Role = "assistant"
)

// Turn is one chat message. Histories are append-only.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// TurnContext is the immutable per-turn bundle handed to the reply
// generator and to any diagnostic display.
type TurnContext struct {
	Customer    Customer  `json:"customer"`
	Product     Product   `json:"product"`
	ProductName string    `json:"product_name"`
	Offer       Offer     `json:"offer"`
	Decision    Decision  `json:"decision"`
	Reasoning   Reasoning `json:"reasoning"`
	Tags        []string  `json:"psychology"`

	// Last values recorded in session memory for this customer/product
	// pair, so the reply generator does not re-ask for them. Nil when the
	// customer has never said them.
	KnownQty   *int `json:"known_qty,omitempty"`
	KnownOffer *int `json:"known_offer,omitempty"`
}
