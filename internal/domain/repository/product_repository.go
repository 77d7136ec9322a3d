package repository

import (
	"context"

	"github.com/jhoicas/storesage/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	// GetByID devuelve domain.ErrNotFound si el ID no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Create inserta el producto con el ID recibido. Si el ID ya existe no sobrescribe
	// y devuelve el producto almacenado (idempotente para reimportaciones).
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	// Update reemplaza todos los campos mutables. domain.ErrNotFound si no existe.
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	// Delete indica si se eliminó algún registro.
	Delete(ctx context.Context, id string) (bool, error)
}
