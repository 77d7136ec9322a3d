package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storesage/internal/application/dto"
	"github.com/jhoicas/storesage/internal/application/usecase"
	"github.com/jhoicas/storesage/internal/domain"
	"github.com/jhoicas/storesage/internal/infrastructure/memory"
)

func newBorrowedUC(now usecase.Clock) *usecase.BorrowedItemUseCase {
	return usecase.NewBorrowedItemUseCase(memory.NewBorrowedItemRepository(), now)
}

func TestBorrowedItemUseCase_Create_Defaults(t *testing.T) {
	uc := newBorrowedUC(fixedClock())

	got, err := uc.Create(context.Background(), dto.BorrowedItemRequest{
		ProductName: "Drill", BorrowerName: "Ana", Quantity: intPtr(1),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.NotEmpty(t, got.ProductID, "productId se genera si no viene")
	assert.Equal(t, 0, got.Returned)
	assert.True(t, got.BorrowDate.Equal(fixedNow))
	assert.Nil(t, got.ReturnDate)
}

func TestBorrowedItemUseCase_Create_Validaciones(t *testing.T) {
	uc := newBorrowedUC(fixedClock())
	cases := []struct {
		name string
		in   dto.BorrowedItemRequest
	}{
		{"sin producto", dto.BorrowedItemRequest{BorrowerName: "Ana", Quantity: intPtr(1)}},
		{"sin persona", dto.BorrowedItemRequest{ProductName: "Drill", Quantity: intPtr(1)}},
		{"sin cantidad", dto.BorrowedItemRequest{ProductName: "Drill", BorrowerName: "Ana"}},
		{"returned inválido", dto.BorrowedItemRequest{ProductName: "Drill", BorrowerName: "Ana", Quantity: intPtr(1), Returned: intPtr(2)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestBorrowedItemUseCase_MarkReturned_Idempotente(t *testing.T) {
	now := fixedNow
	uc := newBorrowedUC(func() time.Time { return now })
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.BorrowedItemRequest{ProductName: "Drill", BorrowerName: "Ana", Quantity: intPtr(1)})
	require.NoError(t, err)

	now = fixedNow.Add(time.Hour)
	first, err := uc.MarkReturned(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Returned)
	require.NotNil(t, first.ReturnDate)

	now = fixedNow.Add(48 * time.Hour)
	second, err := uc.MarkReturned(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Returned)
	assert.True(t, second.ReturnDate.Equal(*first.ReturnDate), "se conserva la primera fecha de devolución")

	_, err = uc.MarkReturned(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBorrowedItemUseCase_List_PorEstado(t *testing.T) {
	uc := newBorrowedUC(fixedClock())
	ctx := context.Background()

	a, err := uc.Create(ctx, dto.BorrowedItemRequest{ProductName: "Drill", BorrowerName: "Ana", Quantity: intPtr(1)})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.BorrowedItemRequest{ProductName: "Saw", BorrowerName: "Luis", Quantity: intPtr(2)})
	require.NoError(t, err)
	_, err = uc.MarkReturned(ctx, a.ID)
	require.NoError(t, err)

	active, err := uc.List(ctx, dto.BorrowedStatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Saw", active[0].ProductName)

	returned, err := uc.List(ctx, dto.BorrowedStatusReturned)
	require.NoError(t, err)
	require.Len(t, returned, 1)
	assert.Equal(t, a.ID, returned[0].ID)

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = uc.List(ctx, "perdido")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBorrowedItemUseCase_Import_ConservaFecha(t *testing.T) {
	uc := newBorrowedUC(fixedClock())
	borrowed := dto.Date{Time: time.Date(2024, 12, 24, 9, 0, 0, 0, time.UTC)}

	got, err := uc.Import(context.Background(), dto.ImportBorrowedItem{
		ID:         "b-offline",
		BorrowDate: &borrowed,
		BorrowedItemRequest: dto.BorrowedItemRequest{
			ProductID: "p1", ProductName: "Drill", BorrowerName: "Ana", Quantity: intPtr(1),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "b-offline", got.ID)
	assert.Equal(t, "p1", got.ProductID)
	assert.True(t, got.BorrowDate.Equal(borrowed.Time))
}
