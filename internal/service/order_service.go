package service

import (
	"sort"
	"time"

	"lavkapos/internal/apierror"
	"lavkapos/internal/dto"
	"lavkapos/internal/infra"
	"lavkapos/internal/model"
	"lavkapos/internal/pricing"
	"lavkapos/internal/repository"
	"lavkapos/internal/validate"
)

// OrderService validates and commits fully assembled orders. Cart building
// is a client concern; Place receives the complete candidate order.
type OrderService interface {
	Place(profile string, req dto.PlaceOrderRequest) (*dto.OrderResponse, error)
	List(profile string) ([]dto.OrderResponse, error)
	Get(profile string, number int) (*dto.OrderResponse, error)
	Receipt(profile string, number int) ([]byte, error)
}

type orderService struct {
	repo repository.ProfileRepository
	now  func() time.Time
}

func NewOrderService(repo repository.ProfileRepository) OrderService {
	return newOrderService(repo, time.Now)
}

func newOrderService(repo repository.ProfileRepository, now func() time.Time) *orderService {
	return &orderService{repo: repo, now: now}
}

// Place commits an order all-or-nothing:
//  1. availability pre-check for every product (aggregated across cart
//     lines) — runs fully before any mutation;
//  2. line totals snapshot the current catalog price;
//  3. delivery fee by total weight when delivery was requested;
//  4. stock consumption (cannot fail after the pre-check);
//  5. order append, daily stats rollup, counter bump;
//  6. one persisted write covering the whole effect.
func (s *orderService) Place(profile string, req dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, apierror.E(apierror.InvalidInput, "add items to the order")
	}

	type cartLine struct {
		product string
		qty     float64
	}
	lines := make([]cartLine, 0, len(req.Items))
	for _, item := range req.Items {
		name, err := validate.NonEmpty(item.Product, "Product name")
		if err != nil {
			return nil, err
		}
		qty, err := validate.PositiveFloat(item.Quantity, "Quantity")
		if err != nil {
			return nil, err
		}
		lines = append(lines, cartLine{product: name, qty: qty})
	}

	var resp *dto.OrderResponse
	err := s.repo.Update(profile, func(doc *model.ProfileDocument) error {
		// 1. Pre-flight: aggregate required quantity per distinct product
		// and check all of them against the ledger before mutating anything.
		required := map[string]float64{}
		for _, l := range lines {
			if doc.FindProduct(l.product) == nil {
				return apierror.E(apierror.NotFound, "product %q not found", l.product)
			}
			required[l.product] += l.qty
		}
		names := make([]string, 0, len(required))
		for name := range required {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			available := 0.0
			if entry, ok := doc.Stock[name]; ok {
				available = entry.CurrentQuantity
			}
			if required[name] > available+model.QuantityEpsilon {
				return apierror.E(apierror.InsufficientStock,
					"insufficient %s: required %.2f kg, available %.2f kg",
					name, required[name], available)
			}
		}

		// 2–4. Totals from current catalog prices.
		now := s.now()
		order := &model.Order{
			Number: doc.NextOrderNumber,
			Date:   now.Format(validate.DateLayout),
			Items:  make([]model.OrderItem, 0, len(lines)),
		}
		totalWeight := 0.0
		for _, l := range lines {
			p := doc.FindProduct(l.product)
			lineTotal := l.qty * p.CostPrice
			order.Items = append(order.Items, model.OrderItem{
				Product:   l.product,
				Quantity:  l.qty,
				CostPrice: p.CostPrice,
				Total:     lineTotal,
			})
			order.Subtotal += lineTotal
			totalWeight += l.qty
		}
		if req.Delivery && totalWeight > 0 {
			order.DeliveryCost = float64(pricing.DeliveryCost(totalWeight))
		}
		order.Total = order.Subtotal + order.DeliveryCost

		// 5. Consume stock per cart line; the pre-check guarantees success.
		// EnsureStock covers old documents where a catalog product has no
		// ledger entry yet (such a line only passes the pre-check when the
		// requested quantity is within the tolerance of zero).
		for _, l := range lines {
			if _, err := doc.EnsureStock(l.product).Consume(l.qty, now); err != nil {
				return err
			}
		}

		// 6–8. Append order, roll up the day, advance the counter.
		doc.Orders = append(doc.Orders, order)
		stats, ok := doc.DailyStats[order.Date]
		if !ok {
			stats = model.NewDailyStats()
			doc.DailyStats[order.Date] = stats
		}
		stats.OrdersCount++
		if req.Delivery {
			stats.DeliveryCount++
			stats.DeliverySum += order.DeliveryCost
		}
		stats.TotalRevenue += order.Total
		doc.NextOrderNumber = order.Number + 1

		resp = orderToResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// List returns saved orders, newest first.
func (s *orderService) List(profile string) ([]dto.OrderResponse, error) {
	var out []dto.OrderResponse
	err := s.repo.View(profile, func(doc *model.ProfileDocument) error {
		out = make([]dto.OrderResponse, 0, len(doc.Orders))
		for i := len(doc.Orders) - 1; i >= 0; i-- {
			out = append(out, *orderToResponse(doc.Orders[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *orderService) Get(profile string, number int) (*dto.OrderResponse, error) {
	var resp *dto.OrderResponse
	err := s.repo.View(profile, func(doc *model.ProfileDocument) error {
		for _, o := range doc.Orders {
			if o.Number == number {
				resp = orderToResponse(o)
				return nil
			}
		}
		return apierror.E(apierror.NotFound, "order #%d not found", number)
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Receipt renders the PDF receipt for a saved order.
func (s *orderService) Receipt(profile string, number int) ([]byte, error) {
	var raw []byte
	err := s.repo.View(profile, func(doc *model.ProfileDocument) error {
		for _, o := range doc.Orders {
			if o.Number == number {
				var err error
				raw, err = infra.GenerateOrderReceipt(profile, o)
				return err
			}
		}
		return apierror.E(apierror.NotFound, "order #%d not found", number)
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func orderToResponse(o *model.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItemResponse{
			Product:   item.Product,
			Quantity:  item.Quantity,
			CostPrice: item.CostPrice,
			Total:     item.Total,
		})
	}
	return &dto.OrderResponse{
		Number:       o.Number,
		Date:         o.Date,
		Items:        items,
		Subtotal:     o.Subtotal,
		DeliveryCost: o.DeliveryCost,
		Total:        o.Total,
	}
}
