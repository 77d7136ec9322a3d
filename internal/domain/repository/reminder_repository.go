package repository

import (
	"context"

	"github.com/jhoicas/storesage/internal/domain/entity"
)

// ReminderRepository puerto de persistencia para recordatorios.
type ReminderRepository interface {
	List(ctx context.Context) ([]*entity.Reminder, error)
	GetByID(ctx context.Context, id string) (*entity.Reminder, error)
	Create(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error)
	Delete(ctx context.Context, id string) (bool, error)
}
