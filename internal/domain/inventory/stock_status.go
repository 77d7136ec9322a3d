// Package inventory contiene los predicados de dominio sobre productos:
// stock bajo, vencimiento próximo y búsqueda por texto.
package inventory

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/jhoicas/storesage/internal/domain/entity"
)

// ExpiringSoonDays ventana (en días) para considerar un producto "por vencer".
const ExpiringSoonDays = 7

// Estados de stock.
const (
	StockOut = "out_of_stock"
	StockLow = "low_stock"
	StockIn  = "in_stock"
)

// Estados de vencimiento.
const (
	ExpirationNone         = "none"
	ExpirationExpired      = "expired"
	ExpirationExpiringSoon = "expiring_soon"
	ExpirationOK           = "ok"
)

// IsLowStock quantity <= minQuantity.
func IsLowStock(p *entity.Product) bool {
	return p.Quantity <= p.MinQuantity
}

// IsOutOfStock quantity == 0.
func IsOutOfStock(p *entity.Product) bool {
	return p.Quantity == 0
}

// StockStatus clasifica el producto: sin stock, stock bajo o en stock (en ese orden).
func StockStatus(p *entity.Product) string {
	switch {
	case IsOutOfStock(p):
		return StockOut
	case IsLowStock(p):
		return StockLow
	default:
		return StockIn
	}
}

// DaysUntilExpiration días completos entre now y la fecha de vencimiento, truncados hacia cero.
// ok es false si el producto no tiene fecha de vencimiento.
func DaysUntilExpiration(p *entity.Product, now time.Time) (days int, ok bool) {
	if p.ExpirationDate == nil {
		return 0, false
	}
	return int(p.ExpirationDate.Sub(now) / (24 * time.Hour)), true
}

// IsExpired el producto ya venció (días < 0).
func IsExpired(p *entity.Product, now time.Time) bool {
	days, ok := DaysUntilExpiration(p, now)
	return ok && days < 0
}

// IsExpiringSoon vence dentro de la ventana [0, ExpiringSoonDays].
func IsExpiringSoon(p *entity.Product, now time.Time) bool {
	days, ok := DaysUntilExpiration(p, now)
	return ok && days >= 0 && days <= ExpiringSoonDays
}

// ExpirationStatus clasifica el vencimiento del producto.
func ExpirationStatus(p *entity.Product, now time.Time) string {
	days, ok := DaysUntilExpiration(p, now)
	switch {
	case !ok:
		return ExpirationNone
	case days < 0:
		return ExpirationExpired
	case days <= ExpiringSoonDays:
		return ExpirationExpiringSoon
	default:
		return ExpirationOK
	}
}

// NeedsAttention stock bajo o vencimiento próximo (lo que muestra el dashboard).
func NeedsAttention(p *entity.Product, now time.Time) bool {
	return IsLowStock(p) || IsExpiringSoon(p, now)
}

// SuggestedOrderQty cantidad sugerida para volver al doble del mínimo. Nunca negativa.
func SuggestedOrderQty(p *entity.Product) int {
	qty := 2*p.MinQuantity - p.Quantity
	if qty < 0 {
		return 0
	}
	return qty
}

// Matches búsqueda sin distinguir mayúsculas sobre nombre, estante y categoría.
// Una consulta vacía coincide con todo.
func Matches(p *entity.Product, query string) bool {
	if query == "" {
		return true
	}
	fold := cases.Fold()
	q := fold.String(query)
	if strings.Contains(fold.String(p.Name), q) || strings.Contains(fold.String(p.ShelfNumber), q) {
		return true
	}
	return p.Category != nil && strings.Contains(fold.String(*p.Category), q)
}
