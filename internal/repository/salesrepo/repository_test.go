package salesrepo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"invbill/internal/domain"
	"invbill/internal/pkg/logger"
	"invbill/internal/repository/salesrepo"
)

// TestSaveThenLoad_AggregatesOnly verifica a persistência dos agregados e a
// perda intencional das linhas de item na recarga.
func TestSaveThenLoad_AggregatesOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	repo := salesrepo.NewSalesRepository(path, logger.NewLogger("error"))

	timestamp := time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local)
	sales := []domain.Sale{
		{
			ID: "sale-1",
			Items: []domain.CartItem{
				{ProductID: "P1", Name: "Widget", Quantity: 3,
					UnitPrice: decimal.RequireFromString("9.99"),
					Total:     decimal.RequireFromString("29.97")},
			},
			TotalAmount: decimal.RequireFromString("29.97"),
			Discount:    decimal.RequireFromString("5.00"),
			FinalAmount: decimal.RequireFromString("24.97"),
			Timestamp:   timestamp,
		},
	}
	assert.NoError(t, repo.SaveAll(sales))

	loaded, err := repo.LoadAll()
	assert.NoError(t, err)
	assert.Len(t, loaded, 1)

	sale := loaded[0]
	assert.True(t, sale.TotalAmount.Equal(decimal.RequireFromString("29.97")))
	assert.True(t, sale.Discount.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, sale.FinalAmount.Equal(decimal.RequireFromString("24.97")))
	assert.True(t, sale.Timestamp.Equal(timestamp))
	// Somente os agregados sobrevivem ao arquivo.
	assert.Empty(t, sale.Items)
}

// TestLoadAll_SkipsMalformedRows verifica a política de descarte silencioso
// com aviso, igual à do catálogo.
func TestLoadAll_SkipsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	raw := "datetime,total_amount,discount,final_amount\n" +
		"2026-08-29T10:00:00Z,29.97,0.00,29.97\n" +
		"not-a-date,10.00,0.00,10.00\n" +
		"2026-08-29T11:00:00Z,abc,0.00,10.00\n" +
		"2026-08-29T12:00:00Z,50.00,5.00,45.00\n"
	assert.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	repo := salesrepo.NewSalesRepository(path, logger.NewLogger("error"))
	loaded, err := repo.LoadAll()

	assert.NoError(t, err)
	assert.Len(t, loaded, 2)
	assert.True(t, loaded[0].FinalAmount.Equal(decimal.RequireFromString("29.97")))
	assert.True(t, loaded[1].FinalAmount.Equal(decimal.RequireFromString("45.00")))
}

// TestLoadAll_MissingFile verifica a primeira execução sem histórico.
func TestLoadAll_MissingFile(t *testing.T) {
	repo := salesrepo.NewSalesRepository(filepath.Join(t.TempDir(), "sales.csv"), logger.NewLogger("error"))

	loaded, err := repo.LoadAll()
	assert.NoError(t, err)
	assert.Empty(t, loaded)
}
