// Package storetest contiene la batería de pruebas que toda implementación de
// repository.Store debe pasar (memoria y PostgreSQL comparten el mismo contrato).
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storesage/internal/domain"
	"github.com/jhoicas/storesage/internal/domain/entity"
	"github.com/jhoicas/storesage/internal/domain/repository"
)

// Factory devuelve un Store vacío para cada subtest.
type Factory func(t *testing.T) repository.Store

// Run ejecuta el contrato completo contra el Store que construye newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("ProductCreateGet", func(t *testing.T) { testProductCreateGet(t, newStore(t)) })
	t.Run("ProductCreateIdempotente", func(t *testing.T) { testProductCreateIdempotent(t, newStore(t)) })
	t.Run("ProductUpdate", func(t *testing.T) { testProductUpdate(t, newStore(t)) })
	t.Run("ProductDelete", func(t *testing.T) { testProductDelete(t, newStore(t)) })
	t.Run("BorrowedMarkReturned", func(t *testing.T) { testBorrowedMarkReturned(t, newStore(t)) })
	t.Run("BorrowedCreateIdempotente", func(t *testing.T) { testBorrowedCreateIdempotent(t, newStore(t)) })
	t.Run("ReminderCRUD", func(t *testing.T) { testReminderCRUD(t, newStore(t)) })
}

// day trunca a segundos en UTC: el driver relacional guarda texto y debe devolver el mismo instante.
func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func newProduct() *entity.Product {
	exp := day(2030, time.January, 15)
	return &entity.Product{
		ID:             uuid.NewString(),
		Name:           "Milk",
		Quantity:       5,
		ShelfNumber:    "A-1",
		MinQuantity:    10,
		ExpirationDate: &exp,
		Category:       strPtr("Dairy"),
	}
}

func testProductCreateGet(t *testing.T, s repository.Store) {
	ctx := context.Background()
	p := newProduct()

	created, err := s.Products().Create(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, p.ID, created.ID)

	got, err := s.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.Quantity, got.Quantity)
	assert.Equal(t, p.ShelfNumber, got.ShelfNumber)
	assert.Equal(t, p.MinQuantity, got.MinQuantity)
	require.NotNil(t, got.ExpirationDate)
	assert.True(t, p.ExpirationDate.Equal(*got.ExpirationDate), "la fecha debe volver como time.Time equivalente")
	assert.Equal(t, p.Category, got.Category)
	assert.Nil(t, got.Description)

	list, err := s.Products().List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = s.Products().GetByID(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testProductCreateIdempotent(t *testing.T, s repository.Store) {
	ctx := context.Background()
	p := newProduct()
	_, err := s.Products().Create(ctx, p)
	require.NoError(t, err)

	replay := *p
	replay.Name = "Otro nombre"
	stored, err := s.Products().Create(ctx, &replay)
	require.NoError(t, err, "un ID repetido no es error")
	assert.Equal(t, "Milk", stored.Name, "la fila existente no se sobrescribe")

	list, err := s.Products().List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func testProductUpdate(t *testing.T, s repository.Store) {
	ctx := context.Background()
	p := newProduct()
	_, err := s.Products().Create(ctx, p)
	require.NoError(t, err)

	upd := &entity.Product{ID: p.ID, Name: "Milk 1L", Quantity: 20, ShelfNumber: "B-2", MinQuantity: 5}
	out, err := s.Products().Update(ctx, upd)
	require.NoError(t, err)
	assert.Equal(t, "Milk 1L", out.Name)
	assert.Nil(t, out.ExpirationDate, "update reemplaza todos los campos mutables")
	assert.Nil(t, out.Category)

	_, err = s.Products().Update(ctx, &entity.Product{ID: "no-existe", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testProductDelete(t *testing.T, s repository.Store) {
	ctx := context.Background()
	p := newProduct()
	_, err := s.Products().Create(ctx, p)
	require.NoError(t, err)

	ok, err := s.Products().Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.Products().GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ok, err = s.Products().Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, ok, "borrar un ID desconocido no elimina nada")
}

func newBorrowed() *entity.BorrowedItem {
	return &entity.BorrowedItem{
		ID:           uuid.NewString(),
		ProductID:    uuid.NewString(),
		ProductName:  "Drill",
		BorrowerName: "Ana",
		Quantity:     1,
		BorrowDate:   day(2025, time.March, 1),
		Returned:     entity.BorrowedActive,
	}
}

func testBorrowedMarkReturned(t *testing.T, s repository.Store) {
	ctx := context.Background()
	b := newBorrowed()
	_, err := s.BorrowedItems().Create(ctx, b)
	require.NoError(t, err)

	first := day(2025, time.March, 5)
	out, err := s.BorrowedItems().MarkReturned(ctx, b.ID, first)
	require.NoError(t, err)
	assert.Equal(t, entity.BorrowedReturned, out.Returned)
	require.NotNil(t, out.ReturnDate)
	assert.True(t, first.Equal(*out.ReturnDate))

	out, err = s.BorrowedItems().MarkReturned(ctx, b.ID, day(2025, time.March, 9))
	require.NoError(t, err)
	assert.Equal(t, entity.BorrowedReturned, out.Returned, "devolver dos veces deja returned = 1")
	assert.True(t, first.Equal(*out.ReturnDate), "se conserva la primera fecha de devolución")
	assert.True(t, b.BorrowDate.Equal(out.BorrowDate))

	_, err = s.BorrowedItems().MarkReturned(ctx, "no-existe", first)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testBorrowedCreateIdempotent(t *testing.T, s repository.Store) {
	ctx := context.Background()
	b := newBorrowed()
	_, err := s.BorrowedItems().Create(ctx, b)
	require.NoError(t, err)
	_, err = s.BorrowedItems().Create(ctx, b)
	require.NoError(t, err)

	list, err := s.BorrowedItems().List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func testReminderCRUD(t *testing.T, s repository.Store) {
	ctx := context.Background()
	r := &entity.Reminder{
		ID:          uuid.NewString(),
		ProductName: "Rice",
		Note:        "pedir 2 sacos",
		Priority:    entity.PriorityHigh,
		CreatedAt:   day(2025, time.February, 20),
	}
	_, err := s.Reminders().Create(ctx, r)
	require.NoError(t, err)
	_, err = s.Reminders().Create(ctx, r)
	require.NoError(t, err)

	got, err := s.Reminders().GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.Note, got.Note)
	assert.Equal(t, entity.PriorityHigh, got.Priority)
	assert.True(t, r.CreatedAt.Equal(got.CreatedAt))

	list, err := s.Reminders().List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	ok, err := s.Reminders().Delete(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.Reminders().Delete(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
