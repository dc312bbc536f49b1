package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service { return NewService(NewMemoryRepository()) }

func TestGetProduct(t *testing.T) {
	svc := newTestService()

	p, err := svc.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Minimalist Wooden Chair", p.Title)
	assert.Equal(t, "249.99", p.Price.String())
	require.NotNil(t, p.IsEco)
	assert.True(t, *p.IsEco)
}

func TestGetProductNotFound(t *testing.T) {
	svc := newTestService()
	_, err := svc.GetProduct(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListProducts(t *testing.T) {
	svc := newTestService()
	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 8)
}

func TestListByCategory(t *testing.T) {
	svc := newTestService()
	products, err := svc.ListByCategory(context.Background(), "Bathroom")
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "Bathroom", p.Category)
	}
}

func TestListByCollection(t *testing.T) {
	tests := []struct {
		collection string
		wantCount  int
	}{
		{"eco-friendly", 6},
		{"new-arrivals", 4},
		{"home-office", 4},
		{"premium", 3},
		{"unknown", 8},
	}
	svc := newTestService()
	for _, tt := range tests {
		t.Run(tt.collection, func(t *testing.T) {
			products, err := svc.ListByCollection(context.Background(), tt.collection)
			require.NoError(t, err)
			assert.Len(t, products, tt.wantCount)
		})
	}
}

func TestListByCollectionEcoOnly(t *testing.T) {
	svc := newTestService()
	products, err := svc.ListByCollection(context.Background(), "eco-friendly")
	require.NoError(t, err)
	for _, p := range products {
		require.NotNil(t, p.IsEco)
		assert.True(t, *p.IsEco)
	}
}
