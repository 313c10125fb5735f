package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
)

var _ repository.CustomerMessageRepository = (*CustomerMessageRepo)(nil)

// CustomerMessageRepo implementación del puerto CustomerMessageRepository sobre PostgreSQL.
type CustomerMessageRepo struct {
	q Querier
}

// NewCustomerMessageRepository construye el adaptador de persistencia para mensajes de clientes.
func NewCustomerMessageRepository(q Querier) *CustomerMessageRepo {
	return &CustomerMessageRepo{q: q}
}

// Insert persiste un mensaje nuevo.
func (r *CustomerMessageRepo) Insert(ctx context.Context, message *entity.CustomerMessage) error {
	query := `
		INSERT INTO customer_message (id, type, first_name, last_name, email, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		message.ID, message.Type, message.FirstName, message.LastName,
		message.Email, message.Message, message.Status,
	)
	if err != nil {
		return fmt.Errorf("insert customer message: %w", err)
	}
	return nil
}

// List devuelve todos los mensajes, los pendientes primero.
func (r *CustomerMessageRepo) List(ctx context.Context) ([]entity.CustomerMessage, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, type, first_name, last_name, email, message, status
		FROM customer_message
		ORDER BY CASE status WHEN 'pending' THEN 0 WHEN 'seen' THEN 1 ELSE 2 END, id`)
	if err != nil {
		return nil, fmt.Errorf("list customer messages: %w", err)
	}
	defer rows.Close()
	var list []entity.CustomerMessage
	for rows.Next() {
		var m entity.CustomerMessage
		if err := rows.Scan(&m.ID, &m.Type, &m.FirstName, &m.LastName, &m.Email, &m.Message, &m.Status); err != nil {
			return nil, fmt.Errorf("scan customer message: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de atención del mensaje.
func (r *CustomerMessageRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE customer_message SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update customer message status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
