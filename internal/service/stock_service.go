package service

import (
	"sort"
	"time"

	"lavkapos/internal/apierror"
	"lavkapos/internal/dto"
	"lavkapos/internal/model"
	"lavkapos/internal/repository"
	"lavkapos/internal/validate"
)

// StockService defines the business logic contract for the warehouse ledger.
type StockService interface {
	Warehouse(profile string) ([]dto.StockItemResponse, error)
	Replenish(profile string, req dto.ReplenishStockRequest) (*dto.StockOperationResponse, error)
	Adjust(profile string, req dto.AdjustStockRequest) (*dto.StockOperationResponse, error)
	History(profile, product string) ([]dto.StockOperationResponse, error)
}

type stockService struct {
	repo repository.ProfileRepository
	now  func() time.Time
}

func NewStockService(repo repository.ProfileRepository) StockService {
	return newStockService(repo, time.Now)
}

func newStockService(repo repository.ProfileRepository, now func() time.Time) *stockService {
	return &stockService{repo: repo, now: now}
}

func (s *stockService) Warehouse(profile string) ([]dto.StockItemResponse, error) {
	var out []dto.StockItemResponse
	err := s.repo.View(profile, func(doc *model.ProfileDocument) error {
		out = make([]dto.StockItemResponse, 0, len(doc.Stock))
		for name, entry := range doc.Stock {
			out = append(out, dto.StockItemResponse{
				Product:         name,
				CurrentQuantity: entry.CurrentQuantity,
				AveragePrice:    entry.AveragePrice(),
				TotalValue:      entry.TotalValue,
			})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Product < out[j].Product })
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *stockService) Replenish(profile string, req dto.ReplenishStockRequest) (*dto.StockOperationResponse, error) {
	name, err := validate.NonEmpty(req.Product, "Product name")
	if err != nil {
		return nil, err
	}
	qty, err := validate.PositiveFloat(req.Quantity, "Quantity")
	if err != nil {
		return nil, err
	}
	price, err := validate.PositiveFloat(req.Price, "Purchase price")
	if err != nil {
		return nil, err
	}

	var resp *dto.StockOperationResponse
	err = s.repo.Update(profile, func(doc *model.ProfileDocument) error {
		if doc.FindProduct(name) == nil {
			return apierror.E(apierror.NotFound, "product %q not found", name)
		}
		op := doc.EnsureStock(name).Replenish(qty, price, s.now())
		resp = operationToResponse(op)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *stockService) Adjust(profile string, req dto.AdjustStockRequest) (*dto.StockOperationResponse, error) {
	name, err := validate.NonEmpty(req.Product, "Product name")
	if err != nil {
		return nil, err
	}
	// Absolute correction: zero is a legal target for both fields, so the
	// positive-only parser does not apply; Adjust rejects negatives itself.
	qty, err := validate.Float(req.Quantity, "Quantity")
	if err != nil {
		return nil, err
	}
	avg, err := validate.Float(req.AveragePrice, "Purchase price")
	if err != nil {
		return nil, err
	}
	// Reject negatives before touching the document so a failed correction
	// cannot leave behind a lazily created stock entry.
	if qty < 0 {
		return nil, apierror.E(apierror.InvalidInput, "quantity cannot be negative")
	}
	if avg < 0 {
		return nil, apierror.E(apierror.InvalidInput, "purchase price cannot be negative")
	}

	var resp *dto.StockOperationResponse
	err = s.repo.Update(profile, func(doc *model.ProfileDocument) error {
		if doc.FindProduct(name) == nil {
			return apierror.E(apierror.NotFound, "product %q not found", name)
		}
		op, err := doc.EnsureStock(name).Adjust(qty, avg, s.now())
		if err != nil {
			return err
		}
		resp = operationToResponse(op)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *stockService) History(profile, product string) ([]dto.StockOperationResponse, error) {
	var out []dto.StockOperationResponse
	err := s.repo.View(profile, func(doc *model.ProfileDocument) error {
		entry, ok := doc.Stock[product]
		if !ok {
			return apierror.E(apierror.NotFound, "product %q not found", product)
		}
		out = make([]dto.StockOperationResponse, 0, len(entry.History))
		for _, op := range entry.History {
			out = append(out, *operationToResponse(op))
		}
		// History is append-only but timestamps can skew (manual clock
		// changes on the device); sort by date, stable so same-second
		// operations keep insertion order, then flip to newest first.
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func operationToResponse(op model.StockOperation) *dto.StockOperationResponse {
	return &dto.StockOperationResponse{
		Date:         op.Date,
		Operation:    op.Operation,
		Quantity:     op.Quantity,
		PricePerKg:   op.PricePerKg,
		TotalAmount:  op.TotalAmount,
		BalanceAfter: op.BalanceAfter,
	}
}
