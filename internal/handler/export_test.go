package handler

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEntriesCSV(t *testing.T) {
	details := "Monthly rent payment"
	category := "Housing"
	views := []service.EntryView{
		{
			ID:          7,
			UserID:      1,
			Amount:      decimal.RequireFromString("1200.5"),
			Details:     &details,
			Attachments: []string{"receipt1.png", "invoice.pdf"},
			Category:    &category,
			Type:        "EXPENSE",
			Title:       "Rent",
			CreatedAt:   time.Date(2025, 10, 7, 12, 30, 0, 0, time.UTC),
		},
		{
			ID:     8,
			UserID: 1,
			Amount: decimal.RequireFromString("99"),
			Type:   "INCOME",
			Title:  "Refund",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeEntriesCSV(&buf, views))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\xEF\xBB\xBF"), "output must start with a UTF-8 BOM")

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\xEF\xBB\xBF")))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, []string{
		"7", "EXPENSE", "Rent", "Housing", "1200.50",
		"Monthly rent payment", "receipt1.png; invoice.pdf", "2025-10-07 12:30",
	}, records[1])
	// optional fields render as empty cells
	assert.Equal(t, "", records[2][3])
	assert.Equal(t, "99.00", records[2][4])
}
