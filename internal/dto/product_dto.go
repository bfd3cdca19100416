package dto

// Numeric fields arrive as raw form text (the client sends what the user
// typed, comma decimals included) and are parsed by internal/validate.

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name      string `json:"name"       validate:"required"`
	CostPrice string `json:"cost_price" validate:"required"`
	Profit    string `json:"profit"     validate:"required"`
}

// UpdateProductRequest may rename the product; the current name comes from
// the URL path.
type UpdateProductRequest struct {
	Name      string `json:"name"       validate:"required"`
	CostPrice string `json:"cost_price" validate:"required"`
	Profit    string `json:"profit"     validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	Name            string  `json:"name"`
	CostPrice       float64 `json:"cost_price"`
	Profit          float64 `json:"profit"`
	Expenses        float64 `json:"expenses"`
	PercentExpenses float64 `json:"percent_expenses"`
	PercentProfit   float64 `json:"percent_profit"`
}
