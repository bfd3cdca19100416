package dto

// ─── Filter ──────────────────────────────────────────────────────────────────

// SalesReportFilter selects orders by inclusive date range and optionally by
// a single product. Dates are strict YYYY-MM-DD.
type SalesReportFilter struct {
	From    string `form:"from"`
	To      string `form:"to"`
	Product string `form:"product"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// SalesReportRow aggregates one product on one day. ProfitShare and
// ExpenseShare split the revenue by the product's current percentages.
type SalesReportRow struct {
	Date         string  `json:"date"`
	Product      string  `json:"product"`
	Quantity     float64 `json:"quantity"`
	Revenue      float64 `json:"revenue"`
	ProfitShare  float64 `json:"profit_share"`
	ExpenseShare float64 `json:"expense_share"`
}

type SalesReportTotals struct {
	Quantity     float64 `json:"quantity"`
	Revenue      float64 `json:"revenue"`
	ProfitShare  float64 `json:"profit_share"`
	ExpenseShare float64 `json:"expense_share"`
}

type SalesReportResponse struct {
	Rows   []SalesReportRow  `json:"rows"`
	Totals SalesReportTotals `json:"totals"`
}

type DailyStatsResponse struct {
	Date          string  `json:"date"`
	OrdersCount   int     `json:"orders_count"`
	DeliveryCount int     `json:"delivery_count"`
	DeliverySum   float64 `json:"delivery_sum"`
	TotalRevenue  float64 `json:"total_revenue"`
}
