package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, status, is_stock_subtracted, discount_type, discount_value, created_at, updated_at`

// Insert persiste una orden nueva.
func (r *OrderRepo) Insert(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, status, is_stock_subtracted, discount_type, discount_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.Status, order.IsStockSubtracted,
		order.DiscountType, order.DiscountValue, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// InsertItems persiste las líneas de la orden. subtotal es columna generada.
func (r *OrderRepo) InsertItems(ctx context.Context, items []entity.OrderItem) error {
	const query = `
		INSERT INTO order_product_item (id, order_id, product_id, product_price, quantity)
		VALUES ($1, $2, $3, $4, $5)`
	for _, it := range items {
		if _, err := r.q.Exec(ctx, query, it.ID, it.OrderID, it.ProductID, it.ProductPrice, it.Quantity); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrValidation // producto inexistente
			}
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// InsertBilling persiste los datos de facturación de la orden.
func (r *OrderRepo) InsertBilling(ctx context.Context, contact *entity.OrderContact) error {
	query := `
		INSERT INTO order_billing_information
			(order_id, first_name, last_name, email, phone_number, company,
			 address_line_1, address_line_2, city, state, zip_code, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		contact.OrderID, contact.FirstName, contact.LastName, contact.Email,
		contact.PhoneNumber, contact.Company, contact.AddressLine1, contact.AddressLine2,
		contact.City, contact.State, contact.ZipCode, contact.Country,
	)
	if err != nil {
		return fmt.Errorf("insert billing information: %w", err)
	}
	return nil
}

// InsertShipping persiste los datos de envío de la orden.
func (r *OrderRepo) InsertShipping(ctx context.Context, contact *entity.OrderContact) error {
	query := `
		INSERT INTO order_shipping_information
			(order_id, first_name, last_name, phone_number, company,
			 address_line_1, address_line_2, city, state, zip_code, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		contact.OrderID, contact.FirstName, contact.LastName,
		contact.PhoneNumber, contact.Company, contact.AddressLine1, contact.AddressLine2,
		contact.City, contact.State, contact.ZipCode, contact.Country,
	)
	if err != nil {
		return fmt.Errorf("insert shipping information: %w", err)
	}
	return nil
}

// GetByID obtiene una orden con items, facturación y envío, o nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.OrderWithDetails, error) {
	var o entity.OrderWithDetails
	err := r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id).
		Scan(&o.ID, &o.Status, &o.IsStockSubtracted, &o.DiscountType, &o.DiscountValue, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, order_id, product_id, product_price, quantity, subtotal
		FROM order_product_item WHERE order_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductPrice, &it.Quantity, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	billing, err := r.contactOf(ctx, `
		SELECT order_id, first_name, last_name, email, phone_number, company,
		       address_line_1, address_line_2, city, state, zip_code, country
		FROM order_billing_information WHERE order_id = $1`, id, true)
	if err != nil {
		return nil, err
	}
	o.Billing = billing

	shipping, err := r.contactOf(ctx, `
		SELECT order_id, first_name, last_name, phone_number, company,
		       address_line_1, address_line_2, city, state, zip_code, country
		FROM order_shipping_information WHERE order_id = $1`, id, false)
	if err != nil {
		return nil, err
	}
	o.Shipping = shipping

	return &o, nil
}

func (r *OrderRepo) contactOf(ctx context.Context, query, orderID string, withEmail bool) (*entity.OrderContact, error) {
	var c entity.OrderContact
	row := r.q.QueryRow(ctx, query, orderID)
	var err error
	if withEmail {
		err = row.Scan(&c.OrderID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber, &c.Company,
			&c.AddressLine1, &c.AddressLine2, &c.City, &c.State, &c.ZipCode, &c.Country)
	} else {
		err = row.Scan(&c.OrderID, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.Company,
			&c.AddressLine1, &c.AddressLine2, &c.City, &c.State, &c.ZipCode, &c.Country)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order contact: %w", err)
	}
	return &c, nil
}

// List devuelve todas las órdenes, las más recientes primero.
func (r *OrderRepo) List(ctx context.Context) ([]entity.Order, error) {
	rows, err := r.q.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.Status, &o.IsStockSubtracted, &o.DiscountType, &o.DiscountValue, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la orden.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra la orden; items, facturación y envío caen por cascada.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
