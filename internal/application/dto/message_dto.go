package dto

import (
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
)

// CreateMessageRequest entrada pública para dejar un mensaje de cliente.
type CreateMessageRequest struct {
	Type      string `json:"type"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

// Validate tipo en la enumeración, email sintáctico y campos no vacíos.
func (r CreateMessageRequest) Validate() error {
	if !entity.ValidMessageType(r.Type) {
		return domain.ErrValidation
	}
	if r.FirstName == "" || r.LastName == "" || r.Message == "" {
		return domain.ErrValidation
	}
	if !validEmail(r.Email) {
		return domain.ErrValidation
	}
	return nil
}

// UpdateMessageStatusRequest entrada para marcar un mensaje como visto/resuelto.
type UpdateMessageStatusRequest struct {
	Status string `json:"status"`
}

// Validate el estado debe pertenecer a la enumeración.
func (r UpdateMessageStatusRequest) Validate() error {
	if !entity.ValidMessageStatus(r.Status) {
		return domain.ErrValidation
	}
	return nil
}

// MessageResponseItem salida de un mensaje de cliente.
type MessageResponseItem struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Status    string `json:"status"`
}

// NewMessageResponse arma la respuesta desde la entidad.
func NewMessageResponse(m *entity.CustomerMessage) MessageResponseItem {
	return MessageResponseItem{
		ID:        m.ID,
		Type:      m.Type,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Message:   m.Message,
		Status:    m.Status,
	}
}
