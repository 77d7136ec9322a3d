// Package memory implementa el Store en memoria del proceso. Los datos se pierden al reiniciar;
// es el driver por defecto para desarrollo y pruebas.
package memory

import (
	"context"

	"github.com/jhoicas/storesage/internal/domain/repository"
)

var _ repository.Store = (*Store)(nil)

// Store mantiene un mapa por entidad. Fiber atiende peticiones en goroutines,
// por eso cada repositorio protege su mapa con un RWMutex.
type Store struct {
	products  *ProductRepo
	borrowed  *BorrowedItemRepo
	reminders *ReminderRepo
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{
		products:  NewProductRepository(),
		borrowed:  NewBorrowedItemRepository(),
		reminders: NewReminderRepository(),
	}
}

func (s *Store) Products() repository.ProductRepository           { return s.products }
func (s *Store) BorrowedItems() repository.BorrowedItemRepository { return s.borrowed }
func (s *Store) Reminders() repository.ReminderRepository         { return s.reminders }

// Driver devuelve repository.DriverMemory.
func (s *Store) Driver() string { return repository.DriverMemory }

// Ping siempre responde: no hay backend externo.
func (s *Store) Ping(context.Context) error { return nil }

// Close no libera nada.
func (s *Store) Close() {}
