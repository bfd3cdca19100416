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

// ReportService produces the read-only analytics views: per-day-per-product
// sales breakdown and the daily rollup listing.
type ReportService interface {
	Sales(profile string, filter dto.SalesReportFilter) (*dto.SalesReportResponse, error)
	Daily(profile string) ([]dto.DailyStatsResponse, error)
}

type reportService struct {
	repo repository.ProfileRepository
}

func NewReportService(repo repository.ProfileRepository) ReportService {
	return &reportService{repo: repo}
}

// Sales aggregates order items by (date, product) over an inclusive date
// range, optionally narrowed to one product. Profit and expense shares are
// derived from the product's *current* percentages — a product edited after
// the sale reports under its latest split.
func (s *reportService) Sales(profile string, filter dto.SalesReportFilter) (*dto.SalesReportResponse, error) {
	from, err := validate.ISODate(filter.From)
	if err != nil {
		return nil, apierror.E(apierror.InvalidInput, "invalid \"from\" date (expected YYYY-MM-DD)")
	}
	to, err := validate.ISODate(filter.To)
	if err != nil {
		return nil, apierror.E(apierror.InvalidInput, "invalid \"to\" date (expected YYYY-MM-DD)")
	}
	if from.After(to) {
		return nil, apierror.E(apierror.InvalidInput, "\"from\" date cannot be after \"to\" date")
	}

	type bucket struct {
		qty float64
		sum float64
	}
	resp := &dto.SalesReportResponse{Rows: []dto.SalesReportRow{}}

	err = s.repo.View(profile, func(doc *model.ProfileDocument) error {
		perDay := map[string]map[string]*bucket{}
		for _, order := range doc.Orders {
			orderDate, err := time.Parse(validate.DateLayout, order.Date)
			if err != nil || orderDate.Before(from) || orderDate.After(to) {
				continue
			}
			for _, item := range order.Items {
				if filter.Product != "" && item.Product != filter.Product {
					continue
				}
				products, ok := perDay[order.Date]
				if !ok {
					products = map[string]*bucket{}
					perDay[order.Date] = products
				}
				b, ok := products[item.Product]
				if !ok {
					b = &bucket{}
					products[item.Product] = b
				}
				b.qty += item.Quantity
				b.sum += item.Total
			}
		}

		dates := make([]string, 0, len(perDay))
		for date := range perDay {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		for _, date := range dates {
			names := make([]string, 0, len(perDay[date]))
			for name := range perDay[date] {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				b := perDay[date][name]
				row := dto.SalesReportRow{
					Date:     date,
					Product:  name,
					Quantity: b.qty,
					Revenue:  b.sum,
				}
				// Deleted products keep zero shares: their split is unknown.
				if p := doc.FindProduct(name); p != nil {
					row.ProfitShare = b.sum * p.PercentProfit / 100
					row.ExpenseShare = b.sum * p.PercentExpenses / 100
				}
				resp.Rows = append(resp.Rows, row)
				resp.Totals.Quantity += row.Quantity
				resp.Totals.Revenue += row.Revenue
				resp.Totals.ProfitShare += row.ProfitShare
				resp.Totals.ExpenseShare += row.ExpenseShare
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Daily lists the per-date rollups, newest first.
func (s *reportService) Daily(profile string) ([]dto.DailyStatsResponse, error) {
	var out []dto.DailyStatsResponse
	err := s.repo.View(profile, func(doc *model.ProfileDocument) error {
		out = make([]dto.DailyStatsResponse, 0, len(doc.DailyStats))
		for date, stats := range doc.DailyStats {
			out = append(out, dto.DailyStatsResponse{
				Date:          date,
				OrdersCount:   stats.OrdersCount,
				DeliveryCount: stats.DeliveryCount,
				DeliverySum:   stats.DeliverySum,
				TotalRevenue:  stats.TotalRevenue,
			})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
