package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type mockCartRepo struct {
	mock.Mock
}

func (m *mockCartRepo) GetOrCreateActiveByToken(ctx context.Context, token string) (model.Cart, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *mockCartRepo) FindActiveByToken(ctx context.Context, token string) (model.Cart, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *mockCartRepo) UpdateStatus(ctx context.Context, cartID int64, status model.CartStatus) error {
	return m.Called(ctx, cartID, status).Error(0)
}

func (m *mockCartRepo) Clear(ctx context.Context, cartID int64) error {
	return m.Called(ctx, cartID).Error(0)
}

type mockCartItemRepo struct {
	mock.Mock
}

func (m *mockCartItemRepo) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *mockCartItemRepo) UpsertByCartAndProduct(ctx context.Context, cartID, productID, addQty int64, price float64, title string) error {
	return m.Called(ctx, cartID, productID, addQty, price, title).Error(0)
}

func (m *mockCartItemRepo) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	return m.Called(ctx, cartItemID, qty).Error(0)
}

func (m *mockCartItemRepo) DeleteByID(ctx context.Context, cartItemID int64) error {
	return m.Called(ctx, cartItemID).Error(0)
}

func (m *mockCartItemRepo) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartItemID)
	return args.Get(0).(model.CartItem), args.Error(1)
}

func (m *mockCartItemRepo) IsOwnedByToken(ctx context.Context, cartItemID int64, token string) (bool, error) {
	args := m.Called(ctx, cartItemID, token)
	return args.Bool(0), args.Error(1)
}

func TestAddToCart_SnapshotsPriceAndTitle(t *testing.T) {
	carts := new(mockCartRepo)
	items := new(mockCartItemRepo)
	catalog := new(mockCatalogRepo)

	carts.On("GetOrCreateActiveByToken", mock.Anything, "tok-1").Return(model.Cart{ID: 10, ClientToken: "tok-1", Status: model.CartStatusActive}, nil)
	catalog.On("FindByID", mock.Anything, int64(1)).Return(repo.CatalogProduct{ID: 1, Title: "Mascara", Price: 9.99, Stock: 5}, nil)
	items.On("ListByCartID", mock.Anything, int64(10)).Return([]model.CartItem{}, nil).Once()
	items.On("UpsertByCartAndProduct", mock.Anything, int64(10), int64(1), int64(2), 9.99, "Mascara").Return(nil)
	items.On("ListByCartID", mock.Anything, int64(10)).Return([]model.CartItem{
		{ID: 100, CartID: 10, ProductID: 1, Quantity: 2, UnitPriceSnapshot: 9.99, TitleSnapshot: "Mascara"},
	}, nil)

	u := NewCartUsecase(carts, items, catalog)

	out, err := u.AddToCart(context.Background(), "tok-1", AddCartInput{ProductID: 1, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Mascara", out.Items[0].Title)
	assert.InDelta(t, 19.98, out.Total, 1e-9)
	items.AssertExpectations(t)
}

func TestAddToCart_StockExceeded(t *testing.T) {
	carts := new(mockCartRepo)
	items := new(mockCartItemRepo)
	catalog := new(mockCatalogRepo)

	carts.On("GetOrCreateActiveByToken", mock.Anything, "tok-1").Return(model.Cart{ID: 10}, nil)
	catalog.On("FindByID", mock.Anything, int64(1)).Return(repo.CatalogProduct{ID: 1, Stock: 3}, nil)
	items.On("ListByCartID", mock.Anything, int64(10)).Return([]model.CartItem{
		{ID: 100, CartID: 10, ProductID: 1, Quantity: 2},
	}, nil)

	u := NewCartUsecase(carts, items, catalog)

	_, err := u.AddToCart(context.Background(), "tok-1", AddCartInput{ProductID: 1, Quantity: 2})
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	items.AssertNotCalled(t, "UpsertByCartAndProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	carts := new(mockCartRepo)
	items := new(mockCartItemRepo)
	catalog := new(mockCatalogRepo)

	carts.On("GetOrCreateActiveByToken", mock.Anything, "tok-1").Return(model.Cart{ID: 10}, nil)
	catalog.On("FindByID", mock.Anything, int64(404)).Return(repo.CatalogProduct{}, repo.ErrNotFound)

	u := NewCartUsecase(carts, items, catalog)

	_, err := u.AddToCart(context.Background(), "tok-1", AddCartInput{ProductID: 404, Quantity: 1})
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestUpdateCartItem_NotOwned(t *testing.T) {
	carts := new(mockCartRepo)
	items := new(mockCartItemRepo)
	catalog := new(mockCatalogRepo)

	items.On("IsOwnedByToken", mock.Anything, int64(100), "tok-2").Return(false, nil)

	u := NewCartUsecase(carts, items, catalog)

	_, err := u.UpdateCartItem(context.Background(), "tok-2", 100, UpdateCartItemInput{Quantity: 1})
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestGetCart_MissingToken(t *testing.T) {
	u := NewCartUsecase(new(mockCartRepo), new(mockCartItemRepo), new(mockCatalogRepo))

	_, err := u.GetCart(context.Background(), "")
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
}
