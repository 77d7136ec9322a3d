package repository

import "context"

// Drivers de almacenamiento disponibles.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Store agrupa los repositorios de las tres entidades detrás de una sola implementación
// (memoria o PostgreSQL), elegida por configuración al arrancar el proceso.
type Store interface {
	Products() ProductRepository
	BorrowedItems() BorrowedItemRepository
	Reminders() ReminderRepository
	Driver() string
	Ping(ctx context.Context) error
	Close()
}
