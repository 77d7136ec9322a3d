package repository

import (
	"context"
	"time"

	"github.com/jhoicas/storesage/internal/domain/entity"
)

// BorrowedItemRepository puerto de persistencia para préstamos.
type BorrowedItemRepository interface {
	List(ctx context.Context) ([]*entity.BorrowedItem, error)
	GetByID(ctx context.Context, id string) (*entity.BorrowedItem, error)
	// Create es idempotente por ID igual que ProductRepository.Create.
	Create(ctx context.Context, item *entity.BorrowedItem) (*entity.BorrowedItem, error)
	// MarkReturned pasa returned a 1. Si no hay ReturnDate se fija en at; si ya existe se conserva.
	MarkReturned(ctx context.Context, id string, at time.Time) (*entity.BorrowedItem, error)
}
