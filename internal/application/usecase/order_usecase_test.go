package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-admin/internal/application/dto"
	"github.com/tu-usuario/tienda-admin/internal/application/usecase"
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
)

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) Insert(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}
func (m *mockOrderRepo) InsertItems(ctx context.Context, items []entity.OrderItem) error {
	return m.Called(ctx, items).Error(0)
}
func (m *mockOrderRepo) InsertBilling(ctx context.Context, contact *entity.OrderContact) error {
	return m.Called(ctx, contact).Error(0)
}
func (m *mockOrderRepo) InsertShipping(ctx context.Context, contact *entity.OrderContact) error {
	return m.Called(ctx, contact).Error(0)
}
func (m *mockOrderRepo) GetByID(ctx context.Context, id string) (*entity.OrderWithDetails, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*entity.OrderWithDetails)
	return order, args.Error(1)
}
func (m *mockOrderRepo) List(ctx context.Context) ([]entity.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]entity.Order)
	return orders, args.Error(1)
}
func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *mockOrderRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// fakeOrderTxRunner ejecuta el callback con los mocks, sin transacción real.
type fakeOrderTxRunner struct {
	orders   *mockOrderRepo
	products *mockProductRepo
}

func (f *fakeOrderTxRunner) RunOrder(ctx context.Context, fn func(repository.OrderRepository, repository.ProductRepository) error) error {
	return fn(f.orders, f.products)
}

func orderContactInput() dto.OrderContactInput {
	return dto.OrderContactInput{
		FirstName:    "Ana",
		LastName:     "Gomez",
		Email:        "ana@tienda.dev",
		PhoneNumber:  "+57 300 000 0000",
		AddressLine1: "Calle 1 # 2-3",
		City:         "Bogotá",
		ZipCode:      "110111",
		Country:      "CO",
	}
}

// El precio del item se captura del producto en el servidor, no del cliente.
func TestOrderCreate_CapturaPrecioDelProducto(t *testing.T) {
	orders := new(mockOrderRepo)
	products := new(mockProductRepo)
	uc := usecase.NewOrderUseCase(orders, &fakeOrderTxRunner{orders: orders, products: products})

	products.On("GetByID", mock.Anything, "prod-1").Return(&entity.ProductWithDetails{
		Product: entity.Product{ID: "prod-1", Price: decimal.RequireFromString("19.90")},
	}, nil)
	orders.On("Insert", mock.Anything, mock.MatchedBy(func(o *entity.Order) bool {
		return o.ID != "" && o.Status == entity.OrderStatusPending &&
			o.DiscountType == entity.DiscountTypePercentage // default cuando no viene tipo
	})).Return(nil)
	orders.On("InsertItems", mock.Anything, mock.MatchedBy(func(items []entity.OrderItem) bool {
		return len(items) == 1 && items[0].ProductID == "prod-1" &&
			items[0].Quantity == 2 &&
			items[0].ProductPrice.Equal(decimal.RequireFromString("19.90"))
	})).Return(nil)
	orders.On("InsertBilling", mock.Anything, mock.MatchedBy(func(c *entity.OrderContact) bool {
		return c.Email == "ana@tienda.dev"
	})).Return(nil)
	orders.On("InsertShipping", mock.Anything, mock.Anything).Return(nil)

	id, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Items:    []dto.OrderItemInput{{ProductID: "prod-1", Quantity: 2}},
		Billing:  orderContactInput(),
		Shipping: orderContactInput(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	orders.AssertExpectations(t)
}

func TestOrderCreate_ProductoInexistente_RetornaErrValidation(t *testing.T) {
	orders := new(mockOrderRepo)
	products := new(mockProductRepo)
	uc := usecase.NewOrderUseCase(orders, &fakeOrderTxRunner{orders: orders, products: products})

	products.On("GetByID", mock.Anything, "fantasma").Return(nil, nil)

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Items:    []dto.OrderItemInput{{ProductID: "fantasma", Quantity: 1}},
		Billing:  orderContactInput(),
		Shipping: orderContactInput(),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	orders.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

// Los totales salen de los subtotales decimales de las líneas y el descuento.
func TestOrderGetByID_CalculaTotalesConDescuentoPorcentual(t *testing.T) {
	orders := new(mockOrderRepo)
	uc := usecase.NewOrderUseCase(orders, &fakeOrderTxRunner{orders: orders})

	orders.On("GetByID", mock.Anything, "order-1").Return(&entity.OrderWithDetails{
		Order: entity.Order{
			ID:            "order-1",
			Status:        entity.OrderStatusPending,
			DiscountType:  entity.DiscountTypePercentage,
			DiscountValue: decimal.NewFromInt(10),
		},
		Items: []entity.OrderItem{
			{Subtotal: decimal.RequireFromString("39.80")},
			{Subtotal: decimal.RequireFromString("10.20")},
		},
	}, nil)

	order, err := uc.GetByID(context.Background(), "order-1")
	require.NoError(t, err)
	assert.True(t, order.ItemsTotal().Equal(decimal.RequireFromString("50.00")), "items: %s", order.ItemsTotal())
	assert.True(t, order.DiscountTotal().Equal(decimal.RequireFromString("5.00")), "descuento: %s", order.DiscountTotal())
	assert.True(t, order.GrandTotal().Equal(decimal.RequireFromString("45.00")), "total: %s", order.GrandTotal())
}

// Un descuento fijo mayor al total de items no deja el total en negativo.
func TestOrderGetByID_DescuentoFijoMayorAlTotal_TotalCero(t *testing.T) {
	orders := new(mockOrderRepo)
	uc := usecase.NewOrderUseCase(orders, &fakeOrderTxRunner{orders: orders})

	orders.On("GetByID", mock.Anything, "order-1").Return(&entity.OrderWithDetails{
		Order: entity.Order{
			ID:            "order-1",
			DiscountType:  entity.DiscountTypeFixed,
			DiscountValue: decimal.NewFromInt(100),
		},
		Items: []entity.OrderItem{{Subtotal: decimal.RequireFromString("39.80")}},
	}, nil)

	order, err := uc.GetByID(context.Background(), "order-1")
	require.NoError(t, err)
	assert.True(t, order.DiscountTotal().Equal(decimal.NewFromInt(100)))
	assert.True(t, order.GrandTotal().IsZero())
}

func TestOrderGetByID_Inexistente_RetornaErrNotFound(t *testing.T) {
	orders := new(mockOrderRepo)
	uc := usecase.NewOrderUseCase(orders, &fakeOrderTxRunner{orders: orders})

	orders.On("GetByID", mock.Anything, "fantasma").Return(nil, nil)

	_, err := uc.GetByID(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
