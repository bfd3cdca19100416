package service

import (
	"testing"
	"time"

	"lavkapos/internal/apierror"
	"lavkapos/internal/dto"
	"lavkapos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, catalog CatalogService, name string) {
	t.Helper()
	_, err := catalog.Create(testProfile, dto.CreateProductRequest{
		Name: name, CostPrice: "100", Profit: "20",
	})
	require.NoError(t, err)
}

func TestReplenishStock(t *testing.T) {
	repo := newTestRepo(t)
	seedProduct(t, NewCatalogService(repo), "Apples")
	svc := newStockService(repo, testClock)

	resp, err := svc.Replenish(testProfile, dto.ReplenishStockRequest{
		Product: "Apples", Quantity: "10", Price: "50",
	})
	require.NoError(t, err)

	assert.Equal(t, model.OpReplenish, resp.Operation)
	assert.Equal(t, 10.0, resp.Quantity)
	assert.Equal(t, 50.0, resp.PricePerKg)
	assert.Equal(t, 500.0, resp.TotalAmount)
	assert.Equal(t, 10.0, resp.BalanceAfter)
	assert.Equal(t, "2024-03-09 14:30:00", resp.Date)

	items, err := svc.Warehouse(testProfile)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 50.0, items[0].AveragePrice)
	assert.Equal(t, 500.0, items[0].TotalValue)
}

func TestReplenishUnknownProduct(t *testing.T) {
	svc := newStockService(newTestRepo(t), testClock)

	_, err := svc.Replenish(testProfile, dto.ReplenishStockRequest{
		Product: "Ghost", Quantity: "1", Price: "10",
	})
	require.Error(t, err)
	assert.Equal(t, apierror.NotFound, apierror.KindOf(err))
}

func TestReplenishValidation(t *testing.T) {
	repo := newTestRepo(t)
	seedProduct(t, NewCatalogService(repo), "Apples")
	svc := newStockService(repo, testClock)

	for _, req := range []dto.ReplenishStockRequest{
		{Product: "Apples", Quantity: "0", Price: "10"},
		{Product: "Apples", Quantity: "-2", Price: "10"},
		{Product: "Apples", Quantity: "2", Price: "nope"},
		{Product: "  ", Quantity: "2", Price: "10"},
	} {
		_, err := svc.Replenish(testProfile, req)
		require.Error(t, err, "request %+v", req)
		assert.Equal(t, apierror.InvalidInput, apierror.KindOf(err))
	}
}

func TestAdjustStock(t *testing.T) {
	repo := newTestRepo(t)
	seedProduct(t, NewCatalogService(repo), "Apples")
	svc := newStockService(repo, testClock)

	_, err := svc.Replenish(testProfile, dto.ReplenishStockRequest{Product: "Apples", Quantity: "10", Price: "50"})
	require.NoError(t, err)

	resp, err := svc.Adjust(testProfile, dto.AdjustStockRequest{
		Product: "Apples", Quantity: "4", AveragePrice: "80",
	})
	require.NoError(t, err)

	assert.Equal(t, model.OpAdjust, resp.Operation)
	assert.Equal(t, -6.0, resp.Quantity)
	assert.Equal(t, 4.0, resp.BalanceAfter)

	items, err := svc.Warehouse(testProfile)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 4.0, items[0].CurrentQuantity)
	assert.Equal(t, 320.0, items[0].TotalValue)
}

func TestAdjustRejectsNegativeTargets(t *testing.T) {
	repo := newTestRepo(t)
	seedProduct(t, NewCatalogService(repo), "Apples")
	svc := newStockService(repo, testClock)

	_, err := svc.Adjust(testProfile, dto.AdjustStockRequest{Product: "Apples", Quantity: "-1", AveragePrice: "10"})
	require.Error(t, err)
	assert.Equal(t, apierror.InvalidInput, apierror.KindOf(err))

	_, err = svc.Adjust(testProfile, dto.AdjustStockRequest{Product: "Apples", Quantity: "1", AveragePrice: "-10"})
	require.Error(t, err)
	assert.Equal(t, apierror.InvalidInput, apierror.KindOf(err))
}

func TestStockHistoryNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	seedProduct(t, NewCatalogService(repo), "Apples")

	tick := testClock()
	svc := newStockService(repo, func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	})

	_, err := svc.Replenish(testProfile, dto.ReplenishStockRequest{Product: "Apples", Quantity: "10", Price: "50"})
	require.NoError(t, err)
	_, err = svc.Adjust(testProfile, dto.AdjustStockRequest{Product: "Apples", Quantity: "8", AveragePrice: "50"})
	require.NoError(t, err)
	_, err = svc.Replenish(testProfile, dto.ReplenishStockRequest{Product: "Apples", Quantity: "2", Price: "60"})
	require.NoError(t, err)

	history, err := svc.History(testProfile, "Apples")
	require.NoError(t, err)
	require.Len(t, history, 3)

	assert.Equal(t, model.OpReplenish, history[0].Operation)
	assert.Equal(t, 2.0, history[0].Quantity)
	assert.Equal(t, model.OpAdjust, history[1].Operation)
	assert.Equal(t, model.OpReplenish, history[2].Operation)
	assert.Equal(t, 10.0, history[2].Quantity)

	for i := 1; i < len(history); i++ {
		assert.GreaterOrEqual(t, history[i-1].Date, history[i].Date)
	}
}

func TestStockHistoryUnknownProduct(t *testing.T) {
	svc := newStockService(newTestRepo(t), testClock)
	_, err := svc.History(testProfile, "Ghost")
	require.Error(t, err)
	assert.Equal(t, apierror.NotFound, apierror.KindOf(err))
}
