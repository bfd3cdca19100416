package service

import (
	"testing"
	"time"

	"lavkapos/internal/apierror"
	"lavkapos/internal/dto"
	"lavkapos/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedSales builds two days of trade:
//
//	2024-03-09: 2 kg apples, then 1 kg apples + 3 kg pears (one order each)
//	2024-03-10: 4 kg pears
//
// Apples: cost 100, profit 20 (20%/80%). Pears: cost 50, profit 25 (50%/50%).
func seedSales(t *testing.T) repository.ProfileRepository {
	t.Helper()
	repo := newTestRepo(t)
	catalog := NewCatalogService(repo)
	stock := newStockService(repo, testClock)

	for _, p := range []dto.CreateProductRequest{
		{Name: "Apples", CostPrice: "100", Profit: "20"},
		{Name: "Pears", CostPrice: "50", Profit: "25"},
	} {
		_, err := catalog.Create(testProfile, p)
		require.NoError(t, err)
	}
	for _, r := range []dto.ReplenishStockRequest{
		{Product: "Apples", Quantity: "20", Price: "60"},
		{Product: "Pears", Quantity: "20", Price: "30"},
	} {
		_, err := stock.Replenish(testProfile, r)
		require.NoError(t, err)
	}

	place := func(day time.Time, items ...dto.OrderItemRequest) {
		t.Helper()
		orders := newOrderService(repo, func() time.Time { return day })
		_, err := orders.Place(testProfile, dto.PlaceOrderRequest{Items: items})
		require.NoError(t, err)
	}
	day1 := testClock()
	day2 := day1.Add(24 * time.Hour)
	place(day1, dto.OrderItemRequest{Product: "Apples", Quantity: "2"})
	place(day1,
		dto.OrderItemRequest{Product: "Apples", Quantity: "1"},
		dto.OrderItemRequest{Product: "Pears", Quantity: "3"})
	place(day2, dto.OrderItemRequest{Product: "Pears", Quantity: "4"})
	return repo
}

func TestSalesReportAggregation(t *testing.T) {
	svc := NewReportService(seedSales(t))

	resp, err := svc.Sales(testProfile, dto.SalesReportFilter{From: "2024-03-09", To: "2024-03-10"})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 3)

	// Rows come date-ascending, products alphabetical within a day. The two
	// apple orders of the first day collapse into one row.
	apples := resp.Rows[0]
	assert.Equal(t, "2024-03-09", apples.Date)
	assert.Equal(t, "Apples", apples.Product)
	assert.Equal(t, 3.0, apples.Quantity)
	assert.Equal(t, 300.0, apples.Revenue)
	assert.InDelta(t, 60.0, apples.ProfitShare, 1e-9)
	assert.InDelta(t, 240.0, apples.ExpenseShare, 1e-9)

	pearsDay1 := resp.Rows[1]
	assert.Equal(t, "2024-03-09", pearsDay1.Date)
	assert.Equal(t, "Pears", pearsDay1.Product)
	assert.Equal(t, 150.0, pearsDay1.Revenue)
	assert.InDelta(t, 75.0, pearsDay1.ProfitShare, 1e-9)

	pearsDay2 := resp.Rows[2]
	assert.Equal(t, "2024-03-10", pearsDay2.Date)
	assert.Equal(t, 200.0, pearsDay2.Revenue)

	assert.Equal(t, 10.0, resp.Totals.Quantity)
	assert.Equal(t, 650.0, resp.Totals.Revenue)
	assert.InDelta(t, 60+75+100, resp.Totals.ProfitShare, 1e-9)
	assert.InDelta(t, 240+75+100, resp.Totals.ExpenseShare, 1e-9)
}

func TestSalesReportDateRangeFilter(t *testing.T) {
	svc := NewReportService(seedSales(t))

	resp, err := svc.Sales(testProfile, dto.SalesReportFilter{From: "2024-03-10", To: "2024-03-10"})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "Pears", resp.Rows[0].Product)
	assert.Equal(t, 200.0, resp.Totals.Revenue)

	// A range with no trade yields an empty, zeroed report.
	resp, err = svc.Sales(testProfile, dto.SalesReportFilter{From: "2024-01-01", To: "2024-01-31"})
	require.NoError(t, err)
	assert.Empty(t, resp.Rows)
	assert.Equal(t, 0.0, resp.Totals.Revenue)
}

func TestSalesReportProductFilter(t *testing.T) {
	svc := NewReportService(seedSales(t))

	resp, err := svc.Sales(testProfile, dto.SalesReportFilter{
		From: "2024-03-09", To: "2024-03-10", Product: "Pears",
	})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)
	for _, row := range resp.Rows {
		assert.Equal(t, "Pears", row.Product)
	}
	assert.Equal(t, 350.0, resp.Totals.Revenue)
}

func TestSalesReportInvalidRange(t *testing.T) {
	svc := NewReportService(seedSales(t))

	for _, filter := range []dto.SalesReportFilter{
		{From: "", To: "2024-03-10"},
		{From: "2024-03-09", To: "10.03.2024"},
		{From: "2024-03-10", To: "2024-03-09"},
	} {
		_, err := svc.Sales(testProfile, filter)
		require.Error(t, err, "filter %+v", filter)
		assert.Equal(t, apierror.InvalidInput, apierror.KindOf(err))
	}
}

func TestSalesReportDeletedProductKeepsZeroShares(t *testing.T) {
	repo := seedSales(t)
	require.NoError(t, NewCatalogService(repo).Delete(testProfile, "Pears"))

	resp, err := NewReportService(repo).Sales(testProfile, dto.SalesReportFilter{
		From: "2024-03-09", To: "2024-03-10",
	})
	require.NoError(t, err)

	// Tombstoned items still report revenue, but their split is unknown.
	var found bool
	for _, row := range resp.Rows {
		if row.Product == "DELETED PRODUCT" {
			found = true
			assert.NotZero(t, row.Revenue)
			assert.Equal(t, 0.0, row.ProfitShare)
			assert.Equal(t, 0.0, row.ExpenseShare)
		}
	}
	assert.True(t, found)
}

func TestDailyStatsListing(t *testing.T) {
	svc := NewReportService(seedSales(t))

	days, err := svc.Daily(testProfile)
	require.NoError(t, err)
	require.Len(t, days, 2)

	// Newest first
	assert.Equal(t, "2024-03-10", days[0].Date)
	assert.Equal(t, 1, days[0].OrdersCount)
	assert.Equal(t, 200.0, days[0].TotalRevenue)

	assert.Equal(t, "2024-03-09", days[1].Date)
	assert.Equal(t, 2, days[1].OrdersCount)
	assert.Equal(t, 0, days[1].DeliveryCount)
	assert.Equal(t, 450.0, days[1].TotalRevenue)
}
