package service

import (
	"lavkapos/internal/apierror"
	"lavkapos/internal/dto"
	"lavkapos/internal/model"
	"lavkapos/internal/pricing"
	"lavkapos/internal/repository"
	"lavkapos/internal/validate"
)

// CatalogService defines the business logic contract for the product catalog.
type CatalogService interface {
	Create(profile string, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(profile, name string, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(profile, name string) error
	List(profile string) ([]dto.ProductResponse, error)
}

type catalogService struct {
	repo repository.ProfileRepository
}

func NewCatalogService(repo repository.ProfileRepository) CatalogService {
	return &catalogService{repo: repo}
}

// parseProductFields validates the raw form fields shared by create and
// update: name non-empty, cost and profit positive numbers, profit not
// exceeding the sale price.
func parseProductFields(rawName, rawCost, rawProfit string) (name string, cost, profit float64, err error) {
	if name, err = validate.NonEmpty(rawName, "Product name"); err != nil {
		return
	}
	if cost, err = validate.PositiveFloat(rawCost, "Cost price"); err != nil {
		return
	}
	if profit, err = validate.PositiveFloat(rawProfit, "Profit"); err != nil {
		return
	}
	if profit > cost {
		err = apierror.E(apierror.InvalidInput, "profit cannot exceed cost price")
	}
	return
}

func buildProduct(name string, cost, profit float64) *model.Product {
	return &model.Product{
		Name:            name,
		CostPrice:       cost,
		Profit:          profit,
		Expenses:        cost - profit,
		PercentExpenses: pricing.PercentExpenses(cost, profit),
		PercentProfit:   pricing.PercentProfit(cost, profit),
	}
}

func (s *catalogService) Create(profile string, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name, cost, profit, err := parseProductFields(req.Name, req.CostPrice, req.Profit)
	if err != nil {
		return nil, err
	}

	var resp *dto.ProductResponse
	err = s.repo.Update(profile, func(doc *model.ProfileDocument) error {
		if doc.FindProductFold(name) != nil {
			return apierror.E(apierror.DuplicateName, "product %q already exists", name)
		}
		p := buildProduct(name, cost, profit)
		doc.Products = append(doc.Products, p)
		doc.EnsureStock(name)
		resp = productToResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *catalogService) Update(profile, oldName string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	newName, cost, profit, err := parseProductFields(req.Name, req.CostPrice, req.Profit)
	if err != nil {
		return nil, err
	}

	var resp *dto.ProductResponse
	err = s.repo.Update(profile, func(doc *model.ProfileDocument) error {
		p := doc.FindProduct(oldName)
		if p == nil {
			return apierror.E(apierror.NotFound, "product %q not found", oldName)
		}
		if other := doc.FindProductFold(newName); other != nil && other != p {
			return apierror.E(apierror.DuplicateName, "product %q already exists", newName)
		}

		p.Name = newName
		p.CostPrice = cost
		p.Profit = profit
		p.Expenses = cost - profit
		p.PercentExpenses = pricing.PercentExpenses(cost, profit)
		p.PercentProfit = pricing.PercentProfit(cost, profit)

		// Renames cascade: the stock map is re-keyed and historical order
		// items are rewritten so history stays browsable under the current
		// name. Monetary figures on old orders are untouched.
		if oldName != newName {
			if entry, ok := doc.Stock[oldName]; ok {
				doc.Stock[newName] = entry
				delete(doc.Stock, oldName)
			}
			rewriteOrderItems(doc, oldName, newName)
		}
		resp = productToResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *catalogService) Delete(profile, name string) error {
	return s.repo.Update(profile, func(doc *model.ProfileDocument) error {
		idx := -1
		for i, p := range doc.Products {
			if p.Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return apierror.E(apierror.NotFound, "product %q not found", name)
		}
		doc.Products = append(doc.Products[:idx], doc.Products[idx+1:]...)
		delete(doc.Stock, name)
		// Orders are never deleted or recomputed; the line items just lose
		// their catalog reference.
		rewriteOrderItems(doc, name, model.DeletedProductLabel)
		return nil
	})
}

func (s *catalogService) List(profile string) ([]dto.ProductResponse, error) {
	var out []dto.ProductResponse
	err := s.repo.View(profile, func(doc *model.ProfileDocument) error {
		out = make([]dto.ProductResponse, 0, len(doc.Products))
		for _, p := range doc.Products {
			out = append(out, *productToResponse(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func rewriteOrderItems(doc *model.ProfileDocument, from, to string) {
	for _, o := range doc.Orders {
		for i := range o.Items {
			if o.Items[i].Product == from {
				o.Items[i].Product = to
			}
		}
	}
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Name:            p.Name,
		CostPrice:       p.CostPrice,
		Profit:          p.Profit,
		Expenses:        p.Expenses,
		PercentExpenses: p.PercentExpenses,
		PercentProfit:   p.PercentProfit,
	}
}
