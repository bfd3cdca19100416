package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ReplenishStockRequest struct {
	Product  string `json:"product"  validate:"required"`
	Quantity string `json:"quantity" validate:"required"`
	Price    string `json:"price"    validate:"required"`
}

// AdjustStockRequest sets the balance absolutely (manual correction).
// Zero quantity and zero price are allowed.
type AdjustStockRequest struct {
	Product      string `json:"product"       validate:"required"`
	Quantity     string `json:"quantity"      validate:"required"`
	AveragePrice string `json:"average_price" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type StockItemResponse struct {
	Product         string  `json:"product"`
	CurrentQuantity float64 `json:"current_quantity"`
	AveragePrice    float64 `json:"average_price"`
	TotalValue      float64 `json:"total_value"`
}

type StockOperationResponse struct {
	Date         string  `json:"date"`
	Operation    string  `json:"operation"`
	Quantity     float64 `json:"quantity"`
	PricePerKg   float64 `json:"price_per_kg"`
	TotalAmount  float64 `json:"total_amount"`
	BalanceAfter float64 `json:"balance_after"`
}
