package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/storesage/internal/application/dto"
	"github.com/jhoicas/storesage/internal/domain"
	"github.com/jhoicas/storesage/internal/domain/entity"
	"github.com/jhoicas/storesage/internal/domain/repository"
)

// BorrowedItemUseCase préstamos de productos: alta, consulta y devolución.
type BorrowedItemUseCase struct {
	repo repository.BorrowedItemRepository
	now  Clock
}

// NewBorrowedItemUseCase construye el caso de uso.
func NewBorrowedItemUseCase(repo repository.BorrowedItemRepository, now Clock) *BorrowedItemUseCase {
	return &BorrowedItemUseCase{repo: repo, now: now}
}

// Create registra un préstamo activo con fecha de préstamo = ahora.
func (uc *BorrowedItemUseCase) Create(ctx context.Context, in dto.BorrowedItemRequest) (*dto.BorrowedItemResponse, error) {
	return uc.create(ctx, dto.ImportBorrowedItem{BorrowedItemRequest: in})
}

// Import crea el préstamo respetando ID y fecha de préstamo originales.
func (uc *BorrowedItemUseCase) Import(ctx context.Context, in dto.ImportBorrowedItem) (*dto.BorrowedItemResponse, error) {
	return uc.create(ctx, in)
}

func (uc *BorrowedItemUseCase) create(ctx context.Context, in dto.ImportBorrowedItem) (*dto.BorrowedItemResponse, error) {
	if strings.TrimSpace(in.ProductName) == "" {
		return nil, fmt.Errorf("%w: productName es requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.BorrowerName) == "" {
		return nil, fmt.Errorf("%w: borrowerName es requerido", domain.ErrInvalidInput)
	}
	if in.Quantity == nil {
		return nil, fmt.Errorf("%w: quantity es requerido", domain.ErrInvalidInput)
	}
	if *in.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity no puede ser negativo", domain.ErrInvalidInput)
	}
	returned := entity.BorrowedActive
	if in.Returned != nil {
		if *in.Returned != entity.BorrowedActive && *in.Returned != entity.BorrowedReturned {
			return nil, fmt.Errorf("%w: returned debe ser 0 o 1", domain.ErrInvalidInput)
		}
		returned = *in.Returned
	}

	item := &entity.BorrowedItem{
		ID:           in.ID,
		ProductID:    strings.TrimSpace(in.ProductID),
		ProductName:  strings.TrimSpace(in.ProductName),
		BorrowerName: strings.TrimSpace(in.BorrowerName),
		Quantity:     *in.Quantity,
		BorrowDate:   uc.now(),
		ReturnDate:   in.ReturnDate.Ptr(),
		Returned:     returned,
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.ProductID == "" {
		item.ProductID = uuid.NewString()
	}
	if t := in.BorrowDate.Ptr(); t != nil {
		item.BorrowDate = *t
	}

	stored, err := uc.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	return toBorrowedResponse(stored), nil
}

// GetByID obtiene un préstamo por ID.
func (uc *BorrowedItemUseCase) GetByID(ctx context.Context, id string) (*dto.BorrowedItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBorrowedResponse(item), nil
}

// List lista préstamos; status puede ser "", active o returned.
func (uc *BorrowedItemUseCase) List(ctx context.Context, status string) ([]dto.BorrowedItemResponse, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	switch status {
	case "", dto.BorrowedStatusActive, dto.BorrowedStatusReturned:
	default:
		return nil, fmt.Errorf("%w: status desconocido %q", domain.ErrInvalidInput, status)
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BorrowedItemResponse, 0, len(list))
	for _, b := range list {
		if status == dto.BorrowedStatusActive && b.IsReturned() {
			continue
		}
		if status == dto.BorrowedStatusReturned && !b.IsReturned() {
			continue
		}
		items = append(items, *toBorrowedResponse(b))
	}
	return items, nil
}

// MarkReturned marca el préstamo como devuelto (idempotente).
func (uc *BorrowedItemUseCase) MarkReturned(ctx context.Context, id string) (*dto.BorrowedItemResponse, error) {
	item, err := uc.repo.MarkReturned(ctx, id, uc.now())
	if err != nil {
		return nil, err
	}
	return toBorrowedResponse(item), nil
}

func toBorrowedResponse(b *entity.BorrowedItem) *dto.BorrowedItemResponse {
	if b == nil {
		return nil
	}
	return &dto.BorrowedItemResponse{
		ID:           b.ID,
		ProductID:    b.ProductID,
		ProductName:  b.ProductName,
		BorrowerName: b.BorrowerName,
		Quantity:     b.Quantity,
		BorrowDate:   b.BorrowDate,
		ReturnDate:   b.ReturnDate,
		Returned:     b.Returned,
	}
}
