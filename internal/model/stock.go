package model

import (
	"time"

	"lavkapos/internal/apierror"
)

// Stock operation kinds recorded in the ledger history.
const (
	OpReplenish = "replenish"
	OpConsume   = "consume"
	OpAdjust    = "adjust"
)

// OperationTimeLayout is the timestamp format of ledger history entries.
const OperationTimeLayout = "2006-01-02 15:04:05"

// QuantityEpsilon is the tolerance used when comparing stock quantities.
// Quantities are accumulated floats (kg), so an order for exactly the
// remaining stock may differ from it by rounding noise; treating such a
// request as insufficient would be a spurious rejection.
const QuantityEpsilon = 1e-9

// StockOperation is one immutable ledger entry. Quantity is a signed delta:
// positive for replenishment, negative for consumption, and the signed
// change for adjustments. BalanceAfter is a checkpoint of the quantity on
// hand right after the operation — it cannot be reconstructed by summing
// deltas because an adjustment sets the balance absolutely.
type StockOperation struct {
	Date         string  `json:"date"`
	Quantity     float64 `json:"quantity"`
	PricePerKg   float64 `json:"price_per_kg"`
	Operation    string  `json:"operation"`
	TotalAmount  float64 `json:"total_amount"`
	BalanceAfter float64 `json:"balance_after"`
}

// StockEntry is the ledger of one product: quantity on hand (kg), aggregate
// cost basis of that quantity, and the append-only operation history.
// CurrentQuantity stays >= 0 after every committed operation.
type StockEntry struct {
	CurrentQuantity float64          `json:"current_quantity"`
	TotalValue      float64          `json:"total_value"`
	History         []StockOperation `json:"history"`
}

func NewStockEntry() *StockEntry {
	return &StockEntry{History: []StockOperation{}}
}

// AveragePrice is the average purchase price per kg of the quantity on hand,
// or 0 when the entry is empty.
func (e *StockEntry) AveragePrice() float64 {
	if e.CurrentQuantity > 0 {
		return e.TotalValue / e.CurrentQuantity
	}
	return 0
}

// Replenish adds qty kg bought at unitPrice per kg. Inputs are assumed
// validated (both positive); replenishment itself cannot fail.
func (e *StockEntry) Replenish(qty, unitPrice float64, at time.Time) StockOperation {
	e.CurrentQuantity += qty
	e.TotalValue += qty * unitPrice
	op := StockOperation{
		Date:         at.Format(OperationTimeLayout),
		Quantity:     qty,
		PricePerKg:   unitPrice,
		Operation:    OpReplenish,
		TotalAmount:  qty * unitPrice,
		BalanceAfter: e.CurrentQuantity,
	}
	e.History = append(e.History, op)
	return op
}

// Consume removes qty kg from the entry. The remaining value is reduced
// proportionally at the pre-consumption average price rather than tracked
// independently. Fails with InsufficientStock when qty exceeds the balance
// beyond QuantityEpsilon; no mutation happens on failure.
func (e *StockEntry) Consume(qty float64, at time.Time) (StockOperation, error) {
	if qty > e.CurrentQuantity+QuantityEpsilon {
		return StockOperation{}, apierror.E(apierror.InsufficientStock,
			"insufficient stock: required %.2f kg, available %.2f kg", qty, e.CurrentQuantity)
	}
	avg := e.AveragePrice()
	e.CurrentQuantity -= qty
	if e.CurrentQuantity < 0 {
		// Can only happen inside the tolerance window.
		e.CurrentQuantity = 0
	}
	e.TotalValue = e.CurrentQuantity * avg
	op := StockOperation{
		Date:         at.Format(OperationTimeLayout),
		Quantity:     -qty,
		PricePerKg:   avg,
		Operation:    OpConsume,
		TotalAmount:  qty * avg,
		BalanceAfter: e.CurrentQuantity,
	}
	e.History = append(e.History, op)
	return op, nil
}

// Adjust sets the balance absolutely to newQty kg valued at newAvgPrice per
// kg — a manual correction, not a delta. The history entry records the
// signed quantity change for display.
func (e *StockEntry) Adjust(newQty, newAvgPrice float64, at time.Time) (StockOperation, error) {
	if newQty < 0 {
		return StockOperation{}, apierror.E(apierror.InvalidInput, "quantity cannot be negative")
	}
	if newAvgPrice < 0 {
		return StockOperation{}, apierror.E(apierror.InvalidInput, "purchase price cannot be negative")
	}
	delta := newQty - e.CurrentQuantity
	e.CurrentQuantity = newQty
	e.TotalValue = newQty * newAvgPrice
	op := StockOperation{
		Date:         at.Format(OperationTimeLayout),
		Quantity:     delta,
		PricePerKg:   newAvgPrice,
		Operation:    OpAdjust,
		TotalAmount:  newQty * newAvgPrice,
		BalanceAfter: newQty,
	}
	e.History = append(e.History, op)
	return op, nil
}
