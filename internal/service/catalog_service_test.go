package service

import (
	"testing"
	"time"

	"lavkapos/internal/apierror"
	"lavkapos/internal/dto"
	"lavkapos/internal/model"
	"lavkapos/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProfile = "shop"

func newTestRepo(t *testing.T) repository.ProfileRepository {
	t.Helper()
	repo, err := repository.NewProfileRepository(t.TempDir(), 7)
	require.NoError(t, err)
	return repo
}

func testClock() time.Time {
	return time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)
}

func TestCreateProduct(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewCatalogService(repo)

	resp, err := svc.Create(testProfile, dto.CreateProductRequest{
		Name: " Apples ", CostPrice: "100", Profit: "20",
	})
	require.NoError(t, err)

	assert.Equal(t, "Apples", resp.Name)
	assert.Equal(t, 100.0, resp.CostPrice)
	assert.Equal(t, 20.0, resp.Profit)
	assert.Equal(t, 80.0, resp.Expenses)
	assert.Equal(t, 20.0, resp.PercentProfit)
	assert.Equal(t, 80.0, resp.PercentExpenses)

	// A zeroed stock entry appears alongside the product
	err = repo.View(testProfile, func(doc *model.ProfileDocument) error {
		entry, ok := doc.Stock["Apples"]
		require.True(t, ok)
		assert.Equal(t, 0.0, entry.CurrentQuantity)
		return nil
	})
	require.NoError(t, err)
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewCatalogService(newTestRepo(t))

	tests := []struct {
		name string
		req  dto.CreateProductRequest
	}{
		{"empty name", dto.CreateProductRequest{Name: "  ", CostPrice: "100", Profit: "20"}},
		{"bad cost", dto.CreateProductRequest{Name: "Apples", CostPrice: "abc", Profit: "20"}},
		{"zero cost", dto.CreateProductRequest{Name: "Apples", CostPrice: "0", Profit: "20"}},
		{"zero profit", dto.CreateProductRequest{Name: "Apples", CostPrice: "100", Profit: "0"}},
		{"profit above cost", dto.CreateProductRequest{Name: "Apples", CostPrice: "100", Profit: "150"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(testProfile, tt.req)
			require.Error(t, err)
			assert.Equal(t, apierror.InvalidInput, apierror.KindOf(err))
		})
	}
}

func TestCreateProductDuplicateIsCaseInsensitive(t *testing.T) {
	svc := NewCatalogService(newTestRepo(t))

	_, err := svc.Create(testProfile, dto.CreateProductRequest{Name: "Apples", CostPrice: "100", Profit: "20"})
	require.NoError(t, err)

	_, err = svc.Create(testProfile, dto.CreateProductRequest{Name: "APPLES", CostPrice: "90", Profit: "10"})
	require.Error(t, err)
	assert.Equal(t, apierror.DuplicateName, apierror.KindOf(err))
}

func TestRenameCascades(t *testing.T) {
	repo := newTestRepo(t)
	catalog := NewCatalogService(repo)
	stock := newStockService(repo, testClock)
	orders := newOrderService(repo, testClock)

	_, err := catalog.Create(testProfile, dto.CreateProductRequest{Name: "Apples", CostPrice: "100", Profit: "20"})
	require.NoError(t, err)
	_, err = stock.Replenish(testProfile, dto.ReplenishStockRequest{Product: "Apples", Quantity: "10", Price: "50"})
	require.NoError(t, err)
	_, err = orders.Place(testProfile, dto.PlaceOrderRequest{
		Items: []dto.OrderItemRequest{{Product: "Apples", Quantity: "2"}},
	})
	require.NoError(t, err)

	_, err = catalog.Update(testProfile, "Apples", dto.UpdateProductRequest{
		Name: "Green apples", CostPrice: "110", Profit: "30",
	})
	require.NoError(t, err)

	err = repo.View(testProfile, func(doc *model.ProfileDocument) error {
		// Stock entry re-keyed, balance intact
		_, oldKey := doc.Stock["Apples"]
		assert.False(t, oldKey)
		entry, ok := doc.Stock["Green apples"]
		require.True(t, ok)
		assert.Equal(t, 8.0, entry.CurrentQuantity)

		// Historical order items follow the rename, prices untouched
		require.Len(t, doc.Orders, 1)
		assert.Equal(t, "Green apples", doc.Orders[0].Items[0].Product)
		assert.Equal(t, 100.0, doc.Orders[0].Items[0].CostPrice)
		return nil
	})
	require.NoError(t, err)
}

func TestRenameDuplicateCheckExcludesSelf(t *testing.T) {
	svc := NewCatalogService(newTestRepo(t))

	_, err := svc.Create(testProfile, dto.CreateProductRequest{Name: "Apples", CostPrice: "100", Profit: "20"})
	require.NoError(t, err)
	_, err = svc.Create(testProfile, dto.CreateProductRequest{Name: "Pears", CostPrice: "90", Profit: "10"})
	require.NoError(t, err)

	// Re-saving under its own name (different case) is not a collision
	_, err = svc.Update(testProfile, "Apples", dto.UpdateProductRequest{Name: "APPLES", CostPrice: "100", Profit: "20"})
	require.NoError(t, err)

	// Taking another product's name is
	_, err = svc.Update(testProfile, "Pears", dto.UpdateProductRequest{Name: "apples", CostPrice: "90", Profit: "10"})
	require.Error(t, err)
	assert.Equal(t, apierror.DuplicateName, apierror.KindOf(err))
}

func TestDeleteProductTombstonesOrders(t *testing.T) {
	repo := newTestRepo(t)
	catalog := NewCatalogService(repo)
	stock := newStockService(repo, testClock)
	orders := newOrderService(repo, testClock)

	_, err := catalog.Create(testProfile, dto.CreateProductRequest{Name: "Apples", CostPrice: "100", Profit: "20"})
	require.NoError(t, err)
	_, err = stock.Replenish(testProfile, dto.ReplenishStockRequest{Product: "Apples", Quantity: "5", Price: "40"})
	require.NoError(t, err)
	placed, err := orders.Place(testProfile, dto.PlaceOrderRequest{
		Items: []dto.OrderItemRequest{{Product: "Apples", Quantity: "1"}},
	})
	require.NoError(t, err)

	require.NoError(t, catalog.Delete(testProfile, "Apples"))

	err = repo.View(testProfile, func(doc *model.ProfileDocument) error {
		assert.Empty(t, doc.Products)
		assert.NotContains(t, doc.Stock, "Apples")

		// The order survives with a tombstone label and its original totals
		require.Len(t, doc.Orders, 1)
		assert.Equal(t, model.DeletedProductLabel, doc.Orders[0].Items[0].Product)
		assert.Equal(t, placed.Total, doc.Orders[0].Total)
		return nil
	})
	require.NoError(t, err)
}

func TestDeleteMissingProduct(t *testing.T) {
	svc := NewCatalogService(newTestRepo(t))
	err := svc.Delete(testProfile, "Ghost")
	require.Error(t, err)
	assert.Equal(t, apierror.NotFound, apierror.KindOf(err))
}
