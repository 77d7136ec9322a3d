package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/storesage/internal/domain"
	"github.com/jhoicas/storesage/internal/domain/entity"
	"github.com/jhoicas/storesage/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.Product
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{items: make(map[string]*entity.Product)}
}

// List devuelve todos los productos (orden no especificado).
func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		list = append(list, cloneProduct(p))
	}
	return list, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneProduct(p), nil
}

// Create inserta el producto salvo que el ID ya exista.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.items[product.ID]; ok {
		return cloneProduct(existing), nil
	}
	r.items[product.ID] = cloneProduct(product)
	return cloneProduct(product), nil
}

// Update reemplaza el producto completo.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[product.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	r.items[product.ID] = cloneProduct(product)
	return cloneProduct(product), nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}
