package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Order.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusPaid       = "paid"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus indica si el estado pertenece a la enumeración.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusPaid,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Tipos de descuento de una orden.
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// ValidDiscountType indica si el tipo de descuento pertenece a la enumeración.
func ValidDiscountType(s string) bool {
	return s == DiscountTypePercentage || s == DiscountTypeFixed
}

// Order orden de compra. Los totales se calculan a partir de los items y el descuento.
type Order struct {
	ID                string
	Status            string // pending, processing, paid, shipped, delivered, cancelled
	IsStockSubtracted bool
	DiscountType      string // percentage, fixed
	DiscountValue     decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderItem línea de una orden. ProductPrice captura el precio al momento de crear
// la orden; Subtotal es columna generada (product_price * quantity).
type OrderItem struct {
	ID           string
	OrderID      string
	ProductID    string
	ProductPrice decimal.Decimal
	Quantity     int
	Subtotal     decimal.Decimal
}

// OrderContact datos de facturación o envío de una orden (entidad débil sobre order_id).
// Email solo aplica a facturación.
type OrderContact struct {
	OrderID      string
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	Company      *string
	AddressLine1 string
	AddressLine2 *string
	City         string
	State        *string
	ZipCode      string
	Country      string
}

// OrderWithDetails orden junto con items y datos de contacto, para respuestas de lectura.
type OrderWithDetails struct {
	Order
	Items    []OrderItem
	Billing  *OrderContact
	Shipping *OrderContact
}

// ItemsTotal suma de los subtotales de las líneas.
func (o *OrderWithDetails) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal)
	}
	return total
}

// DiscountTotal descuento aplicado: porcentaje sobre el total de items o monto fijo.
func (o *OrderWithDetails) DiscountTotal() decimal.Decimal {
	switch o.DiscountType {
	case DiscountTypePercentage:
		return o.ItemsTotal().Mul(o.DiscountValue).Div(decimal.NewFromInt(100))
	case DiscountTypeFixed:
		return o.DiscountValue
	}
	return decimal.Zero
}

// GrandTotal total de items menos descuento. Nunca negativo.
func (o *OrderWithDetails) GrandTotal() decimal.Decimal {
	total := o.ItemsTotal().Sub(o.DiscountTotal())
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}
