package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-admin/internal/application/dto"
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
)

// OrderUseCase gestión de órdenes de compra.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
	txRunner  OrderTxRunner
}

// NewOrderUseCase construye el caso de uso de órdenes.
func NewOrderUseCase(orderRepo repository.OrderRepository, txRunner OrderTxRunner) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, txRunner: txRunner}
}

// Create inserta la orden, sus items y los datos de facturación y envío en
// una sola transacción. El precio de cada item se captura del producto al
// momento de crear; el subtotal lo calcula la columna generada.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (string, error) {
	discountType := in.DiscountType
	if discountType == "" {
		discountType = entity.DiscountTypePercentage
	}
	now := time.Now().UTC()
	order := &entity.Order{
		ID:            uuid.New().String(),
		Status:        entity.OrderStatusPending,
		DiscountType:  discountType,
		DiscountValue: in.DiscountValue,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err := uc.txRunner.RunOrder(ctx, func(orders repository.OrderRepository, products repository.ProductRepository) error {
		items := make([]entity.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			product, err := products.GetByID(ctx, it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrValidation
			}
			items = append(items, entity.OrderItem{
				ID:           uuid.New().String(),
				OrderID:      order.ID,
				ProductID:    product.ID,
				ProductPrice: product.Price,
				Quantity:     it.Quantity,
			})
		}
		if err := orders.Insert(ctx, order); err != nil {
			return err
		}
		if err := orders.InsertItems(ctx, items); err != nil {
			return err
		}
		billing := contactEntity(order.ID, in.Billing)
		if err := orders.InsertBilling(ctx, billing); err != nil {
			return err
		}
		shipping := contactEntity(order.ID, in.Shipping)
		return orders.InsertShipping(ctx, shipping)
	})
	if err != nil {
		return "", err
	}
	return order.ID, nil
}

func contactEntity(orderID string, in dto.OrderContactInput) *entity.OrderContact {
	return &entity.OrderContact{
		OrderID:      orderID,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		Company:      in.Company,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		Country:      in.Country,
	}
}

// GetByID devuelve la orden con items, contactos y totales, o ErrNotFound.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*entity.OrderWithDetails, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// List devuelve el resumen de todas las órdenes.
func (uc *OrderUseCase) List(ctx context.Context) ([]entity.Order, error) {
	return uc.orderRepo.List(ctx)
}

// UpdateStatus cambia el estado de la orden.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	return uc.orderRepo.UpdateStatus(ctx, id, status)
}

// Delete borra la orden; items y contactos caen por cascada.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	return uc.orderRepo.Delete(ctx, id)
}
