package impl

import (
	"context"
	"testing"

	"ecomshop/internal/domain/entity"
	domainerrors "ecomshop/internal/domain/errors"
	"ecomshop/internal/domain/repository"
	mockRepo "ecomshop/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_ListProducts_Pagination(t *testing.T) {
	tests := []struct {
		name             string
		page             int
		limit            int
		total            int64
		wantOffset       int
		wantLimit        int
		wantTotalQueries int
		wantHasMore      bool
	}{
		{name: "first page of seven", page: 1, limit: 3, total: 7, wantOffset: 0, wantLimit: 3, wantTotalQueries: 3, wantHasMore: true},
		{name: "middle page", page: 2, limit: 3, total: 7, wantOffset: 3, wantLimit: 3, wantTotalQueries: 3, wantHasMore: true},
		{name: "last page", page: 3, limit: 3, total: 7, wantOffset: 6, wantLimit: 3, wantTotalQueries: 3, wantHasMore: false},
		{name: "defaults applied", page: 0, limit: 0, total: 4, wantOffset: 0, wantLimit: 3, wantTotalQueries: 2, wantHasMore: true},
		{name: "exact fit", page: 2, limit: 3, total: 6, wantOffset: 3, wantLimit: 3, wantTotalQueries: 2, wantHasMore: false},
		{name: "empty catalog", page: 1, limit: 3, total: 0, wantOffset: 0, wantLimit: 3, wantTotalQueries: 0, wantHasMore: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := mockRepo.NewMockProductRepository(t)
			svc := NewProductService(productRepo, nil, newDiscardLogger())

			ctx := context.Background()
			productRepo.EXPECT().
				ListProducts(ctx, tt.wantOffset, tt.wantLimit).
				Return([]*entity.Product{}, tt.total, nil)

			output, err := svc.ListProducts(ctx, tt.page, tt.limit)

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotalQueries, output.TotalQueries)
			assert.Equal(t, tt.wantHasMore, output.HasMore)
		})
	}
}

func TestProductService_GetProduct_Success(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewProductService(productRepo, nil, newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{ID: productID, Title: "Leather Watch", Price: 12900}

	productRepo.EXPECT().FindProductByID(ctx, productID).Return(product, nil)

	got, err := svc.GetProduct(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewProductService(productRepo, nil, newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().FindProductByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := svc.GetProduct(ctx, productID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
