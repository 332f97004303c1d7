package prompt

import (
	"strings"
	"testing"

	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
)

func TestRenderNegotiator(t *testing.T) {
	t.Parallel()

	qty := 20
	turnCtx := contractx.TurnContext{
		Customer:    contractx.Customer{Name: "Ramesh Traders", Type: contractx.CustomerRegular},
		Product:     contractx.Product{Name: "Urea", Cost: 75, Floor: 80, Ideal: 92},
		ProductName: "Urea",
		Decision:    contractx.DecisionCounter,
		Reasoning:   contractx.Reasoning{LastPrice: 82, LastQty: 20, TargetPrice: 84, Floor: 80, Cost: 75, ExpectedMargin: 9},
		Tags:        []string{"Relationship Leverage"},
		KnownQty:    &qty,
	}

	got, err := RenderNegotiator(turnCtx)
	if err != nil {
		t.Fatalf("RenderNegotiator() error = %v", err)
	}

	for _, want := range []string{
		"Product: Urea",
		"Customer Type: Regular",
		"Last Price: ₹82",
		"Target Price: ₹84",
		"Floor: ₹80",
		"Psychology Tags: Relationship Leverage",
		"Quantity already given by customer: 20",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Offer already given") {
		t.Fatalf("prompt should omit unknown offer:\n%s", got)
	}
}

func TestRenderNegotiatorEmptyTags(t *testing.T) {
	t.Parallel()

	got, err := RenderNegotiator(contractx.TurnContext{ProductName: "DAP"})
	if err != nil {
		t.Fatalf("RenderNegotiator() error = %v", err)
	}
	if !strings.Contains(got, "Psychology Tags:") {
		t.Fatalf("prompt missing tags line:\n%s", got)
	}
}
