package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
)

// OrderItemInput línea del body de creación de orden. El precio se captura
// del producto en el servidor, nunca del cliente.
type OrderItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderContactInput datos de facturación o envío. Email solo aplica a facturación.
type OrderContactInput struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email,omitempty"`
	PhoneNumber  string  `json:"phone_number"`
	Company      *string `json:"company,omitempty"`
	AddressLine1 string  `json:"address_line_1"`
	AddressLine2 *string `json:"address_line_2,omitempty"`
	City         string  `json:"city"`
	State        *string `json:"state,omitempty"`
	ZipCode      string  `json:"zip_code"`
	Country      string  `json:"country"`
}

func (c OrderContactInput) complete(requireEmail bool) bool {
	if c.FirstName == "" || c.LastName == "" || c.PhoneNumber == "" ||
		c.AddressLine1 == "" || c.City == "" || c.ZipCode == "" || c.Country == "" {
		return false
	}
	if requireEmail && !validEmail(c.Email) {
		return false
	}
	return true
}

// CreateOrderRequest entrada para crear una orden con items, descuento y
// datos de facturación y envío.
type CreateOrderRequest struct {
	Items         []OrderItemInput  `json:"items"`
	DiscountType  string            `json:"discount_type,omitempty"`
	DiscountValue decimal.Decimal   `json:"discount_value"`
	Billing       OrderContactInput `json:"billing"`
	Shipping      OrderContactInput `json:"shipping"`
}

// Validate al menos un item con cantidad positiva, descuento en la enumeración
// y contactos completos.
func (r CreateOrderRequest) Validate() error {
	if len(r.Items) == 0 {
		return domain.ErrValidation
	}
	for _, it := range r.Items {
		if it.ProductID == "" || it.Quantity < 1 {
			return domain.ErrValidation
		}
	}
	if r.DiscountType != "" && !entity.ValidDiscountType(r.DiscountType) {
		return domain.ErrValidation
	}
	if r.DiscountValue.IsNegative() {
		return domain.ErrValidation
	}
	if !r.Billing.complete(true) || !r.Shipping.complete(false) {
		return domain.ErrValidation
	}
	return nil
}

// UpdateOrderStatusRequest entrada para cambiar el estado de una orden.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// Validate el estado debe pertenecer a la enumeración.
func (r UpdateOrderStatusRequest) Validate() error {
	if !entity.ValidOrderStatus(r.Status) {
		return domain.ErrValidation
	}
	return nil
}

// OrderItemResponse línea de orden con subtotal calculado en DB.
type OrderItemResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// OrderSummaryResponse salida de listado de órdenes.
type OrderSummaryResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderResponse salida de una orden con items, contactos y totales calculados.
type OrderResponse struct {
	ID            string              `json:"id"`
	Status        string              `json:"status"`
	DiscountType  string              `json:"discount_type"`
	DiscountValue decimal.Decimal     `json:"discount_value"`
	Items         []OrderItemResponse `json:"items"`
	Billing       *OrderContactInput  `json:"billing,omitempty"`
	Shipping      *OrderContactInput  `json:"shipping,omitempty"`
	ItemsTotal    decimal.Decimal     `json:"items_total"`
	DiscountTotal decimal.Decimal     `json:"total_discount"`
	GrandTotal    decimal.Decimal     `json:"grand_total"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// NewOrderResponse arma la respuesta desde la entidad, con totales calculados.
func NewOrderResponse(o *entity.OrderWithDetails) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:           it.ID,
			ProductID:    it.ProductID,
			ProductPrice: it.ProductPrice,
			Quantity:     it.Quantity,
			Subtotal:     it.Subtotal,
		})
	}
	return OrderResponse{
		ID:            o.ID,
		Status:        o.Status,
		DiscountType:  o.DiscountType,
		DiscountValue: o.DiscountValue,
		Items:         items,
		Billing:       contactResponse(o.Billing),
		Shipping:      contactResponse(o.Shipping),
		ItemsTotal:    o.ItemsTotal(),
		DiscountTotal: o.DiscountTotal(),
		GrandTotal:    o.GrandTotal(),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func contactResponse(c *entity.OrderContact) *OrderContactInput {
	if c == nil {
		return nil
	}
	return &OrderContactInput{
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		PhoneNumber:  c.PhoneNumber,
		Company:      c.Company,
		AddressLine1: c.AddressLine1,
		AddressLine2: c.AddressLine2,
		City:         c.City,
		State:        c.State,
		ZipCode:      c.ZipCode,
		Country:      c.Country,
	}
}
