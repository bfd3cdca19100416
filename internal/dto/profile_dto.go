package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProfileRequest struct {
	Name string `json:"name" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProfileSummary struct {
	Name          string `json:"name"`
	ProductsCount int    `json:"products_count"`
	OrdersCount   int    `json:"orders_count"`
}
