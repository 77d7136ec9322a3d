package entity

import "time"

// DefaultMinQuantity umbral de stock mínimo cuando el payload no lo indica.
const DefaultMinQuantity = 10

// Product representa un producto del inventario con su ubicación en estantería.
// ExpirationDate, Category y Description son opcionales (nil cuando no aplican).
type Product struct {
	ID             string
	Name           string
	Quantity       int
	ShelfNumber    string
	MinQuantity    int
	ExpirationDate *time.Time
	Category       *string
	Description    *string
}
