// Package pricing holds the stateless price and delivery formulas.
package pricing

// PercentExpenses returns the expense share of the sale price, in percent.
// Formula: expenses / (expenses + profit) × 100, where expenses = cost - profit.
// Returns 0 when the denominator is not positive (avoids division by zero
// for zero-priced input).
func PercentExpenses(costPrice, profit float64) float64 {
	expenses := costPrice - profit
	if expenses+profit > 0 {
		return expenses / (expenses + profit) * 100
	}
	return 0
}

// PercentProfit returns the profit share of the sale price, in percent.
func PercentProfit(costPrice, profit float64) float64 {
	if costPrice > 0 {
		return profit / costPrice * 100
	}
	return 0
}

// DeliveryCost returns the flat delivery fee for a given order weight.
// Heavier orders are cheaper to deliver per the original tariff:
// 5 kg and up → 100, 3 kg and up → 150, everything lighter → 200.
// Suppressing the fee entirely (delivery disabled, empty order) is the
// caller's decision.
func DeliveryCost(weightKg float64) int {
	switch {
	case weightKg >= 5:
		return 100
	case weightKg >= 3:
		return 150
	default:
		return 200
	}
}
