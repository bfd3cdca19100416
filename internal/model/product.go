package model

// DeletedProductLabel replaces the product name on historical order items
// when the product is removed from the catalog. Orders themselves are never
// deleted and their monetary totals stay untouched.
const DeletedProductLabel = "DELETED PRODUCT"

// Product is one catalog entry. CostPrice is the sale price per kg; Profit
// is the absolute profit per kg contained in that price. The remaining
// fields are derived at write time and stored for display.
type Product struct {
	Name            string  `json:"name"`
	CostPrice       float64 `json:"cost_price"`
	Profit          float64 `json:"profit"`
	Expenses        float64 `json:"expenses"`
	PercentExpenses float64 `json:"percent_expenses"`
	PercentProfit   float64 `json:"percent_profit"`
}
