package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/storesage/internal/domain/repository"
)

var _ repository.Store = (*Store)(nil)

// Store agrupa los repositorios PostgreSQL sobre un mismo pool.
// Cada operación CRUD es una única sentencia; no se abren transacciones.
type Store struct {
	pool      *pgxpool.Pool
	products  *ProductRepo
	borrowed  *BorrowedItemRepo
	reminders *ReminderRepo
}

// NewStore construye el Store sobre el pool. El esquema debe existir (ver Migrate).
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:      pool,
		products:  NewProductRepository(pool),
		borrowed:  NewBorrowedItemRepository(pool),
		reminders: NewReminderRepository(pool),
	}
}

func (s *Store) Products() repository.ProductRepository           { return s.products }
func (s *Store) BorrowedItems() repository.BorrowedItemRepository { return s.borrowed }
func (s *Store) Reminders() repository.ReminderRepository         { return s.reminders }

// Driver devuelve repository.DriverPostgres.
func (s *Store) Driver() string { return repository.DriverPostgres }

// Ping verifica la conexión con la base de datos.
func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

// Close cierra el pool.
func (s *Store) Close() { s.pool.Close() }
