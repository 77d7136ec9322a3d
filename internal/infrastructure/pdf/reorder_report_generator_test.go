package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storesage/internal/application/dto"
)

func TestMarotoReportGenerator_GeneraPDF(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	data := dto.ReorderReportData{
		Title:       "Reporte de reposición",
		GeneratedAt: now,
		LowStock:    []dto.ReorderLine{{Name: "Milk", ShelfNumber: "A1", Quantity: 5, MinQuantity: 10, SuggestedQty: 15}},
		Expiring: []dto.ExpiringLine{
			{Name: "Milk", ShelfNumber: "A1", ExpirationDate: now.Add(72 * time.Hour), DaysToExpire: 3},
			{Name: "Yogurt", ShelfNumber: "A2", ExpirationDate: now.Add(-48 * time.Hour), DaysToExpire: -2},
		},
		Reminders: []dto.ReminderResponse{{ID: "r1", ProductName: "Milk", Note: "pedir 2 cajas", Priority: "high", CreatedAt: now}},
	}

	out, err := NewMarotoReportGenerator().GenerateReorderReport(data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestMarotoReportGenerator_SeccionesVacias(t *testing.T) {
	out, err := NewMarotoReportGenerator().GenerateReorderReport(dto.ReorderReportData{
		Title:       "Reporte de reposición",
		GeneratedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatThousands(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		999:     "999",
		25000:   "25.000",
		1000000: "1.000.000",
		-1500:   "-1.500",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatThousands(in))
	}
}

func TestPriorityLabel(t *testing.T) {
	assert.Equal(t, "Alta", priorityLabel("high"))
	assert.Equal(t, "Media", priorityLabel("medium"))
	assert.Equal(t, "Baja", priorityLabel("low"))
}
