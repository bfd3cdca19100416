package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// OrderItemRequest is one cart line. The same product may appear in several
// lines; availability is checked against the aggregate.
type OrderItemRequest struct {
	Product  string `json:"product"  validate:"required"`
	Quantity string `json:"quantity" validate:"required"`
}

type PlaceOrderRequest struct {
	Items    []OrderItemRequest `json:"items"    validate:"required,min=1,dive"`
	Delivery bool               `json:"delivery"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderItemResponse struct {
	Product   string  `json:"product"`
	Quantity  float64 `json:"quantity"`
	CostPrice float64 `json:"cost_price"`
	Total     float64 `json:"total"`
}

type OrderResponse struct {
	Number       int                 `json:"number"`
	Date         string              `json:"date"`
	Items        []OrderItemResponse `json:"items"`
	Subtotal     float64             `json:"subtotal"`
	DeliveryCost float64             `json:"delivery_cost"`
	Total        float64             `json:"total"`
}
