package model

import "strings"

// ProfileDocument is the entire persisted state of one profile (an isolated
// named workspace). The whole document is loaded into memory, mutated in
// place by the services, and flushed on every mutating operation.
type ProfileDocument struct {
	Products        []*Product             `json:"products"`
	Stock           map[string]*StockEntry `json:"stock"`
	Orders          []*Order               `json:"orders"`
	DailyStats      map[string]*DailyStats `json:"daily_stats"`
	NextOrderNumber int                    `json:"next_order_number"`
}

// NewProfileDocument returns an empty document with the order counter at 1.
func NewProfileDocument() *ProfileDocument {
	return &ProfileDocument{
		Products:        []*Product{},
		Stock:           map[string]*StockEntry{},
		Orders:          []*Order{},
		DailyStats:      map[string]*DailyStats{},
		NextOrderNumber: 1,
	}
}

// Normalize fills in fields that may be absent in documents written by older
// app versions. The stored JSON had no schema enforcement, so nil maps and a
// zero order counter are possible on load.
func (d *ProfileDocument) Normalize() {
	if d.Products == nil {
		d.Products = []*Product{}
	}
	if d.Stock == nil {
		d.Stock = map[string]*StockEntry{}
	}
	if d.Orders == nil {
		d.Orders = []*Order{}
	}
	if d.DailyStats == nil {
		d.DailyStats = map[string]*DailyStats{}
	}
	if d.NextOrderNumber < 1 {
		d.NextOrderNumber = 1
	}
}

// FindProduct returns the product with the exact given name, or nil.
func (d *ProfileDocument) FindProduct(name string) *Product {
	for _, p := range d.Products {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// FindProductFold returns the product matching name case-insensitively, or nil.
// Catalog uniqueness is case-insensitive.
func (d *ProfileDocument) FindProductFold(name string) *Product {
	for _, p := range d.Products {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// EnsureStock returns the stock entry for name, creating a zeroed one if the
// product has never been stocked.
func (d *ProfileDocument) EnsureStock(name string) *StockEntry {
	if e, ok := d.Stock[name]; ok {
		return e
	}
	e := NewStockEntry()
	d.Stock[name] = e
	return e
}
