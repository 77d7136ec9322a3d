package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/storesage/internal/domain"
	"github.com/jhoicas/storesage/internal/domain/entity"
	"github.com/jhoicas/storesage/internal/domain/repository"
)

var _ repository.BorrowedItemRepository = (*BorrowedItemRepo)(nil)

// BorrowedItemRepo implementación en memoria de BorrowedItemRepository.
type BorrowedItemRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.BorrowedItem
}

// NewBorrowedItemRepository construye el repositorio vacío.
func NewBorrowedItemRepository() *BorrowedItemRepo {
	return &BorrowedItemRepo{items: make(map[string]*entity.BorrowedItem)}
}

func (r *BorrowedItemRepo) List(_ context.Context) ([]*entity.BorrowedItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.BorrowedItem, 0, len(r.items))
	for _, b := range r.items {
		list = append(list, cloneBorrowed(b))
	}
	return list, nil
}

func (r *BorrowedItemRepo) GetByID(_ context.Context, id string) (*entity.BorrowedItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneBorrowed(b), nil
}

func (r *BorrowedItemRepo) Create(_ context.Context, item *entity.BorrowedItem) (*entity.BorrowedItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.items[item.ID]; ok {
		return cloneBorrowed(existing), nil
	}
	r.items[item.ID] = cloneBorrowed(item)
	return cloneBorrowed(item), nil
}

// MarkReturned marca el préstamo como devuelto. Repetir la llamada no cambia el estado.
func (r *BorrowedItemRepo) MarkReturned(_ context.Context, id string, at time.Time) (*entity.BorrowedItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	b.Returned = entity.BorrowedReturned
	if b.ReturnDate == nil {
		b.ReturnDate = cloneTime(&at)
	}
	return cloneBorrowed(b), nil
}
