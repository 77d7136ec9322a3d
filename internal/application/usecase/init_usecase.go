package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/storesage/internal/application/dto"
)

// InitUseCase importación inicial: vuelca en el almacén el contenido del espejo local de un cliente.
// Reutiliza el alta idempotente de cada entidad, así que reimportar el mismo lote no duplica registros.
type InitUseCase struct {
	products  *ProductUseCase
	borrowed  *BorrowedItemUseCase
	reminders *ReminderUseCase
}

// NewInitUseCase construye el caso de uso.
func NewInitUseCase(products *ProductUseCase, borrowed *BorrowedItemUseCase, reminders *ReminderUseCase) *InitUseCase {
	return &InitUseCase{products: products, borrowed: borrowed, reminders: reminders}
}

// Import procesa productos, luego préstamos y luego recordatorios. Se detiene en el primer error;
// lo ya creado permanece (no hay transacción que abarque el lote).
func (uc *InitUseCase) Import(ctx context.Context, in dto.ImportRequest) error {
	if in.Total() == 0 {
		return nil
	}
	for i, p := range in.Products {
		if _, err := uc.products.Import(ctx, p); err != nil {
			return fmt.Errorf("init: producto %d: %w", i, err)
		}
	}
	for i, b := range in.Borrowed {
		if _, err := uc.borrowed.Import(ctx, b); err != nil {
			return fmt.Errorf("init: préstamo %d: %w", i, err)
		}
	}
	for i, r := range in.Reminders {
		if _, err := uc.reminders.Import(ctx, r); err != nil {
			return fmt.Errorf("init: recordatorio %d: %w", i, err)
		}
	}
	return nil
}
