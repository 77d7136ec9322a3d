package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/storesage/internal/application/dto"
	"github.com/jhoicas/storesage/internal/domain"
	"github.com/jhoicas/storesage/internal/domain/entity"
	"github.com/jhoicas/storesage/internal/domain/inventory"
	"github.com/jhoicas/storesage/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos, más búsqueda y filtros de stock/vencimiento.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  Clock
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, now Clock) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: now}
}

// Create valida la entrada, aplica los valores por defecto y asigna un ID nuevo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	return uc.create(ctx, "", in)
}

// Import crea el producto respetando su ID original; si ya existe no lo modifica.
func (uc *ProductUseCase) Import(ctx context.Context, in dto.ImportProduct) (*dto.ProductResponse, error) {
	return uc.create(ctx, in.ID, in.ProductRequest)
}

func (uc *ProductUseCase) create(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	product.ID = id
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	stored, err := uc.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	return toProductResponse(stored), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update reemplaza todos los campos mutables del producto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	product.ID = id
	updated, err := uc.repo.Update(ctx, product)
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// List lista productos aplicando búsqueda por texto y filtro (all, low-stock, expiring).
func (uc *ProductUseCase) List(ctx context.Context, f dto.ProductFilter) ([]dto.ProductResponse, error) {
	filter := strings.ToLower(strings.TrimSpace(f.Filter))
	switch filter {
	case "", dto.ProductFilterAll, dto.ProductFilterLowStock, dto.ProductFilterExpiring:
	default:
		return nil, fmt.Errorf("%w: filtro desconocido %q", domain.ErrInvalidInput, f.Filter)
	}

	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	query := strings.TrimSpace(f.Query)
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if !inventory.Matches(p, query) {
			continue
		}
		if filter == dto.ProductFilterLowStock && !inventory.IsLowStock(p) {
			continue
		}
		if filter == dto.ProductFilterExpiring && !inventory.IsExpiringSoon(p, now) {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto. domain.ErrNotFound si no existía.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func productFromRequest(in dto.ProductRequest) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	shelf := strings.TrimSpace(in.ShelfNumber)
	if shelf == "" {
		return nil, fmt.Errorf("%w: shelfNumber es requerido", domain.ErrInvalidInput)
	}
	p := &entity.Product{
		Name:           name,
		ShelfNumber:    shelf,
		MinQuantity:    entity.DefaultMinQuantity,
		ExpirationDate: in.ExpirationDate.Ptr(),
		Category:       nullIfEmpty(in.Category),
		Description:    nullIfEmpty(in.Description),
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity no puede ser negativo", domain.ErrInvalidInput)
		}
		p.Quantity = *in.Quantity
	}
	if in.MinQuantity != nil {
		if *in.MinQuantity < 0 {
			return nil, fmt.Errorf("%w: minQuantity no puede ser negativo", domain.ErrInvalidInput)
		}
		p.MinQuantity = *in.MinQuantity
	}
	return p, nil
}

// nullIfEmpty normaliza "" a nil para los campos opcionales de texto.
func nullIfEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Quantity:       p.Quantity,
		ShelfNumber:    p.ShelfNumber,
		MinQuantity:    p.MinQuantity,
		ExpirationDate: p.ExpirationDate,
		Category:       p.Category,
		Description:    p.Description,
	}
}
