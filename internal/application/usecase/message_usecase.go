package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-admin/internal/application/dto"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
)

// MessageUseCase mensajes de clientes: entrada pública, gestión desde el admin.
type MessageUseCase struct {
	messageRepo repository.CustomerMessageRepository
}

// NewMessageUseCase construye el caso de uso de mensajes.
func NewMessageUseCase(messageRepo repository.CustomerMessageRepository) *MessageUseCase {
	return &MessageUseCase{messageRepo: messageRepo}
}

// Create registra un mensaje nuevo en estado pending.
func (uc *MessageUseCase) Create(ctx context.Context, in dto.CreateMessageRequest) (string, error) {
	message := &entity.CustomerMessage{
		ID:        uuid.New().String(),
		Type:      in.Type,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Message:   in.Message,
		Status:    entity.MessageStatusPending,
	}
	if err := uc.messageRepo.Insert(ctx, message); err != nil {
		return "", err
	}
	return message.ID, nil
}

// List devuelve todos los mensajes.
func (uc *MessageUseCase) List(ctx context.Context) ([]entity.CustomerMessage, error) {
	return uc.messageRepo.List(ctx)
}

// UpdateStatus marca el mensaje como pending/seen/solved.
func (uc *MessageUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	return uc.messageRepo.UpdateStatus(ctx, id, status)
}
