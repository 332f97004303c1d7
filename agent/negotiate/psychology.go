package negotiate

import contractx "github.com/agrovaani/negotiation-agent/agent/contract"

const (
	TagRelationship = "Relationship Leverage"
	TagRisk         = "Risk Protection"
	TagScarcity     = "Scarcity Pressure"
)

const scarcityStockThreshold = 50

// Tags derives the qualitative leverage signals for a customer/product
// pair. Rules are independent and unioned; the result may be empty.
func Tags(customer contractx.Customer, product contractx.Product) []string {
	var tags []string
	if customer.Type == contractx.CustomerRegular {
		tags = append(tags, TagRelationship)
	}
	if customer.Risk == contractx.RiskHigh {
		tags = append(tags, TagRisk)
	}
	if product.Stock < scarcityStockThreshold {
		tags = append(tags, TagScarcity)
	}
	return tags
}
