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

func TestReminderUseCase_Create_PrioridadPorDefecto(t *testing.T) {
	uc := usecase.NewReminderUseCase(memory.NewReminderRepository(), fixedClock())

	got, err := uc.Create(context.Background(), dto.ReminderRequest{ProductName: "Milk", Note: "pedir 2 cajas"})
	require.NoError(t, err)
	assert.Equal(t, "medium", got.Priority)
	assert.True(t, got.CreatedAt.Equal(fixedNow))

	_, err = uc.Create(context.Background(), dto.ReminderRequest{ProductName: "Milk", Note: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.ReminderRequest{ProductName: "Milk"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReminderUseCase_ListByPriority(t *testing.T) {
	uc := usecase.NewReminderUseCase(memory.NewReminderRepository(), fixedClock())
	ctx := context.Background()
	older := dto.Date{Time: fixedNow.Add(-time.Hour)}

	for _, in := range []dto.ImportReminder{
		{ID: "r1", ReminderRequest: dto.ReminderRequest{ProductName: "A", Note: "n", Priority: "low"}},
		{ID: "r2", ReminderRequest: dto.ReminderRequest{ProductName: "B", Note: "n", Priority: "high"}},
		{ID: "r3", ReminderRequest: dto.ReminderRequest{ProductName: "C", Note: "n", Priority: "medium"}},
		{ID: "r4", CreatedAt: &older, ReminderRequest: dto.ReminderRequest{ProductName: "D", Note: "n", Priority: "high"}},
	} {
		_, err := uc.Import(ctx, in)
		require.NoError(t, err)
	}

	got, err := uc.ListByPriority(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"r4", "r2", "r3", "r1"}, ids)
}

func TestReminderUseCase_Delete(t *testing.T) {
	uc := usecase.NewReminderUseCase(memory.NewReminderRepository(), fixedClock())
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.ReminderRequest{ProductName: "Milk", Note: "n"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrNotFound)
}
