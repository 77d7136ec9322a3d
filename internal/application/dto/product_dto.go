package dto

import "time"

// ProductRequest entrada para crear o reemplazar un producto.
// Quantity y MinQuantity son punteros para distinguir "omitido" (default) de 0.
type ProductRequest struct {
	Name           string  `json:"name"`
	Quantity       *int    `json:"quantity"`
	ShelfNumber    string  `json:"shelfNumber"`
	MinQuantity    *int    `json:"minQuantity"`
	ExpirationDate *Date   `json:"expirationDate"`
	Category       *string `json:"category"`
	Description    *string `json:"description"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Quantity       int        `json:"quantity"`
	ShelfNumber    string     `json:"shelfNumber"`
	MinQuantity    int        `json:"minQuantity"`
	ExpirationDate *time.Time `json:"expirationDate"`
	Category       *string    `json:"category"`
	Description    *string    `json:"description"`
}

// Filtros de listado de productos.
const (
	ProductFilterAll      = "all"
	ProductFilterLowStock = "low-stock"
	ProductFilterExpiring = "expiring"
)

// ProductFilter parámetros de GET /api/products.
type ProductFilter struct {
	Query  string `query:"q"`
	Filter string `query:"filter"`
}
