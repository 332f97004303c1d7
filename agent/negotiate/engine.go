// Package negotiate holds the deterministic pricing decision engine and
// the psychology tagger. Both are pure functions over catalog shapes and
// are safe for any number of concurrent callers.
package negotiate

import (
	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
)

// Decide computes the decision and the full pricing trace for one turn.
//
// The target price is max(lastPrice+2, floor, cost+5), reduced by exactly
// one unit when the asked quantity strictly exceeds the last bought
// quantity. Missing purchase history defaults lastPrice to the ideal price
// and lastQty to zero. Total: never errors, reasoning is always populated.
func Decide(
	customer contractx.Customer,
	product contractx.Product,
	productName string,
	offer contractx.Offer,
) (contractx.Decision, contractx.Reasoning) {
	lastPrice := product.Ideal
	lastQty := 0
	if rec, ok := customer.PurchaseHistory[productName]; ok {
		lastPrice = rec.Price
		lastQty = rec.Qty
	}

	target := maxOf(lastPrice+2, product.Floor, product.Cost+5)
	if offer.HasQty && offer.Qty > lastQty {
		target--
	}

	reasoning := contractx.Reasoning{
		LastPrice:      lastPrice,
		LastQty:        lastQty,
		TargetPrice:    target,
		Floor:          product.Floor,
		Cost:           product.Cost,
		ExpectedMargin: target - product.Cost,
	}

	switch {
	case !offer.HasPrice:
		return contractx.DecisionAsk, reasoning
	case offer.Price >= target:
		return contractx.DecisionAccept, reasoning
	case offer.Price >= product.Floor:
		return contractx.DecisionCounter, reasoning
	default:
		return contractx.DecisionWalkAway, reasoning
	}
}

func maxOf(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
