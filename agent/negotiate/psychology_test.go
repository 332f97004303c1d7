package negotiate

import (
	"testing"

	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
)

func TestTags(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		customer contractx.Customer
		product  contractx.Product
		want     []string
	}{
		{
			name:     "regular low-risk, healthy stock",
			customer: contractx.Customer{Type: contractx.CustomerRegular, Risk: contractx.RiskLow},
			product:  contractx.Product{Stock: 120},
			want:     []string{TagRelationship},
		},
		{
			name:     "new high-risk, scarce stock",
			customer: contractx.Customer{Type: contractx.CustomerNew, Risk: contractx.RiskHigh},
			product:  contractx.Product{Stock: 35},
			want:     []string{TagRisk, TagScarcity},
		},
		{
			name:     "all three",
			customer: contractx.Customer{Type: contractx.CustomerRegular, Risk: contractx.RiskHigh},
			product:  contractx.Product{Stock: 10},
			want:     []string{TagRelationship, TagRisk, TagScarcity},
		},
		{
			name:     "none",
			customer: contractx.Customer{Type: contractx.CustomerBulk, Risk: contractx.RiskMedium},
			product:  contractx.Product{Stock: 200},
			want:     nil,
		},
		{
			name:     "stock at threshold is not scarce",
			customer: contractx.Customer{Type: contractx.CustomerBulk, Risk: contractx.RiskMedium},
			product:  contractx.Product{Stock: 50},
			want:     nil,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Tags(tc.customer, tc.product)
			if len(got) != len(tc.want) {
				t.Fatalf("Tags() = %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("Tags() = %v, want %v", got, tc.want)
				}
			}
		})
	}
}
