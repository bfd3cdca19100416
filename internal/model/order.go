package model

// OrderItem is one line of a saved order. CostPrice is a snapshot of the
// product's unit price at order time; Total = Quantity × CostPrice.
type OrderItem struct {
	Product   string  `json:"product"`
	Quantity  float64 `json:"quantity"`
	CostPrice float64 `json:"cost_price"`
	Total     float64 `json:"total"`
}

// Order is immutable once saved. Numbers are sequential from 1 within a
// profile and never reused; Date is a calendar date without time.
type Order struct {
	Number       int         `json:"number"`
	Date         string      `json:"date"`
	Items        []OrderItem `json:"items"`
	Subtotal     float64     `json:"subtotal"`
	DeliveryCost float64     `json:"delivery_cost"`
	Total        float64     `json:"total"`
}

// DailyStats is the per-date rollup maintained on every saved order.
// DeliveryCount and DeliverySum only grow for orders that opted into
// delivery; TotalRevenue includes delivery fees.
type DailyStats struct {
	OrdersCount   int     `json:"orders_count"`
	DeliveryCount int     `json:"delivery_count"`
	DeliverySum   float64 `json:"delivery_sum"`
	TotalRevenue  float64 `json:"total_revenue"`
}

func NewDailyStats() *DailyStats {
	return &DailyStats{}
}
